package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "carbontrack/internal/platform/errors"
)

const fence = "---"

// ErrMalformedFrontmatter marks a metadata block that cannot be read back.
var ErrMalformedFrontmatter = fmt.Errorf("%w: malformed frontmatter", apperrors.ErrInvalidInput)

// Document is a markdown body preceded by a YAML metadata block. Meta may be
// a map or a struct with yaml tags; struct fields keep their declared order.
type Document struct {
	Meta any
	Body string
}

// Encode writes the fenced metadata, one blank line, then the body.
func (d Document) Encode() (string, error) {
	raw, err := yaml.Marshal(d.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(fence + "\n")
	sb.Write(raw)
	sb.WriteString(fence + "\n\n")
	sb.WriteString(strings.TrimLeft(d.Body, "\n"))
	return sb.String(), nil
}

// Decode reads generic metadata and the body. Content that does not open
// with a fence is all body.
func Decode(content string) (map[string]any, string, error) {
	meta := map[string]any{}
	body, err := DecodeInto(content, &meta)
	if err != nil {
		return nil, "", err
	}
	return meta, body, nil
}

// DecodeInto unmarshals the metadata block into target and returns the body.
func DecodeInto(content string, target any) (string, error) {
	raw, body, found, err := split(content)
	if err != nil || !found {
		return body, err
	}
	if err := yaml.Unmarshal([]byte(raw), target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	return body, nil
}

// Body drops the metadata block, if any.
func Body(content string) (string, error) {
	_, body, _, err := split(content)
	return body, err
}

func split(content string) (raw, body string, found bool, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, fence+"\n") {
		return "", content, false, nil
	}
	rest := normalized[len(fence)+1:]
	consumed := 0
	for _, line := range strings.SplitAfter(rest, "\n") {
		if strings.TrimSuffix(line, "\n") == fence {
			body = strings.TrimPrefix(rest[consumed+len(line):], "\n")
			return rest[:consumed], body, true, nil
		}
		consumed += len(line)
	}
	return "", "", false, fmt.Errorf("%w: missing closing %s", ErrMalformedFrontmatter, fence)
}
