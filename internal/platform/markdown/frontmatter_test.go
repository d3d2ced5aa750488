package markdown_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "carbontrack/internal/platform/errors"
	"carbontrack/internal/platform/markdown"
)

func TestEncodeThenDecode(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Document{
		Meta: map[string]any{"score": 40, "goal_reached": true},
		Body: "# Relatório\n",
	}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(rendered, "---\n\n# Relatório\n") {
		t.Fatalf("expected one blank line between block and body:\n%s", rendered)
	}
	meta, body, err := markdown.Decode(rendered)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"score": 40, "goal_reached": true}, meta); diff != "" {
		t.Fatalf("frontmatter mismatch (-want +got):\n%s", diff)
	}
	if body != "# Relatório\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

type header struct {
	Version int    `yaml:"version"`
	Title   string `yaml:"title"`
}

func TestStructMetaKeepsFieldOrder(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Document{Meta: header{Version: 1, Title: "x"}, Body: "corpo"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nversion: 1\ntitle: x\n---\n") {
		t.Fatalf("unexpected block:\n%s", rendered)
	}
	var got header
	body, err := markdown.DecodeInto(rendered, &got)
	if err != nil {
		t.Fatalf("decode into: %v", err)
	}
	if diff := cmp.Diff(header{Version: 1, Title: "x"}, got); diff != "" || body != "corpo" {
		t.Fatalf("round trip mismatch %q (-want +got):\n%s", body, diff)
	}
}

func TestDecodeEdgeCases(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.Decode("plain body")
	if err != nil || len(meta) != 0 || body != "plain body" {
		t.Fatalf("expected passthrough, got %v %q %v", meta, body, err)
	}

	_, body, err = markdown.Decode("---\r\nscore: 1\r\n---\r\n\r\ncorpo\r\n")
	if err != nil || body != "corpo\n" {
		t.Fatalf("crlf document: %q %v", body, err)
	}

	if _, _, err := markdown.Decode("---\nscore: 1\n"); !errors.Is(err, markdown.ErrMalformedFrontmatter) || !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unclosed block should be malformed, got %v", err)
	}
	if _, _, err := markdown.Decode("---\nscore: [1\n---\n"); !errors.Is(err, markdown.ErrMalformedFrontmatter) {
		t.Fatalf("bad yaml should be malformed, got %v", err)
	}

	body, err = markdown.Body("---\nscore: 1\n---\n\n# Título\n")
	if err != nil || body != "# Título\n" {
		t.Fatalf("body: %q %v", body, err)
	}
}
