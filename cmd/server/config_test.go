package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	strutil "github.com/baditaflorin/go_strutil"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Port != DefaultPort || cfg.ReadTimeout.Duration != DefaultReadTimeout || !cfg.WarmUp {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestParseConfigFileAndFlags(t *testing.T) {
	path := writeConfig(t, `
port = 9000
read_timeout = "5s"
warm_up = false

[similarity]
threshold = 0.9
normalizer = "fold"
`)

	cfg, err := parseConfig([]string{"-config", path, "-port", "9100"})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("flag should override file port, got %d", cfg.Port)
	}
	if cfg.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("read timeout = %v, want 5s", cfg.ReadTimeout.Duration)
	}
	if cfg.WarmUp {
		t.Error("expected warm-up disabled by file")
	}
	if cfg.Similarity.Threshold != 0.9 || cfg.Similarity.Normalizer != "fold" {
		t.Errorf("unexpected similarity config %+v", cfg.Similarity)
	}
	if cfg.Similarity.Precision != 4 {
		t.Errorf("unset file values should keep defaults, got precision %d", cfg.Similarity.Precision)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}},
		{"unknown key", []string{"-config", writeConfig(t, "colour = 1\n")}},
		{"bad duration", []string{"-config", writeConfig(t, `read_timeout = "soon"`+"\n")}},
		{"bad port", []string{"-port", "0"}},
		{"bad normalizer", []string{"-normalizer", "stem"}},
		{"unknown flag", []string{"-verbose"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseConfig(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMaxPadLength(t *testing.T) {
	cfg := DefaultConfig()
	if got := maxPadLength(cfg); got != DefaultMaxRequestSize {
		t.Errorf("maxPadLength = %d, want %d", got, DefaultMaxRequestSize)
	}

	cfg.MaxRequestSize = 1 << 30
	if got := maxPadLength(cfg); got != strutil.MaxPadWidth {
		t.Errorf("maxPadLength = %d, want %d", got, strutil.MaxPadWidth)
	}
}
