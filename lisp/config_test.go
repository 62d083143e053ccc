package lisp

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("prompt: \"λ \"\nlog_level: debug\npreload:\n  - a.lisp\n  - b.lisp\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Prompt != "λ " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if cfg.ContinuationPrompt != DefaultConfig().ContinuationPrompt {
		t.Errorf("ContinuationPrompt = %q, want the default", cfg.ContinuationPrompt)
	}
	if len(cfg.Preload) != 2 || cfg.Preload[1] != "b.lisp" {
		t.Errorf("Preload = %v", cfg.Preload)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v", level, err)
	}
}

func TestParseConfigValidation(t *testing.T) {
	_, err := ParseConfig([]byte("log_level: loud\npreload: [\"\"]\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("issues = %v, want 2", verr.Issues)
	}
	if !strings.Contains(err.Error(), "log_level") {
		t.Errorf("message %q does not name log_level", err.Error())
	}

	if _, err := ParseConfig([]byte("prompt: [unclosed")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ish.yaml")
	if err := os.WriteFile(path, []byte("history_file: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HistoryPath() != "" {
		t.Errorf("HistoryPath() = %q, want none", cfg.HistoryPath())
	}

	if _, err := LoadConfig(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("missing explicit config accepted")
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Prompt != "ish> " {
		t.Errorf("Prompt = %q, want the default", cfg.Prompt)
	}
}

func TestHistoryPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	tests := []struct {
		file string
		want string
	}{
		{DefaultConfig().HistoryFile, filepath.Join(home, ".ish_history")},
		{"~", home},
		{"~/x/h", filepath.Join(home, "x", "h")},
		{"~user/x", "~user/x"},
		{"/var/h~", "/var/h~"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.HistoryFile = tt.file
		if got := cfg.HistoryPath(); got != tt.want {
			t.Errorf("HistoryPath() for %q = %q, want %q", tt.file, got, tt.want)
		}
	}
}
