package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/codynn/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "DEBUG")
	t.Setenv("TEST_LOG_FORMAT", "json")
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := &logging.Config{}
	err := cfg.Finalize(&logging.Env{
		Level:     "TEST_LOG_LEVEL",
		Format:    "TEST_LOG_FORMAT",
		AddSource: "TEST_LOG_SOURCE",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if !cfg.AddSource {
		t.Error("AddSource should be true from env")
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"bad level", logging.Config{Level: "verbose"}},
		{"bad format", logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	base.Merge(&logging.Config{Format: logging.FormatJSON, Service: "codynn"})

	if base.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want preserved info", base.Level)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", base.Format)
	}
	if base.Service != "codynn" {
		t.Errorf("Service = %q, want codynn", base.Service)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{
		Level:   logging.LevelWarn,
		Format:  logging.FormatJSON,
		Service: "codynn",
	}, &buf)

	logger.Info("suppressed")
	logger.Warn("kept", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if rec["msg"] != "kept" || rec["key"] != "value" || rec["service"] != "codynn" {
		t.Errorf("record = %v", rec)
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := map[logging.Level]slog.Level{
		logging.LevelDebug: slog.LevelDebug,
		logging.LevelInfo:  slog.LevelInfo,
		logging.LevelWarn:  slog.LevelWarn,
		logging.LevelError: slog.LevelError,
		"unknown":          slog.LevelInfo,
	}
	for in, want := range tests {
		if got := in.ToSlogLevel(); got != want {
			t.Errorf("%q.ToSlogLevel() = %v, want %v", in, got, want)
		}
	}
}
