package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"carbontrack/internal/platform/config"
	apperrors "carbontrack/internal/platform/errors"
)

func TestNewAppliesDefaults(t *testing.T) {
	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.TargetFootprint != config.DefaultTargetFootprint {
		t.Fatalf("expected default target %d, got %d", config.DefaultTargetFootprint, cfg.TargetFootprint)
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg)
	}
}

func TestNewReadsFileAndEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbontrack.yaml")
	body := "target_footprint: 80\nlog_level: debug\nhistory_seed: 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CARBONTRACK_TARGET_FOOTPRINT", "65")

	cfg, err := config.New(path)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.TargetFootprint != 65 {
		t.Fatalf("expected env override 65, got %d", cfg.TargetFootprint)
	}
	if cfg.LogLevel != "debug" || cfg.HistorySeed != 7 {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.Source != path {
		t.Fatalf("expected source %s, got %s", path, cfg.Source)
	}
}

func TestNewRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbontrack.yaml")
	if err := os.WriteFile(path, []byte("target_footprint: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(path); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero target, got %v", err)
	}
	if _, err := config.New(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing explicit config file should fail")
	}
	bad := config.Config{TargetFootprint: 50, LogLevel: "loud"}
	if err := bad.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid log level error, got %v", err)
	}
}
