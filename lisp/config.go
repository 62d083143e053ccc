package lisp

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked for in the home directory when no
// config path is given.
const DefaultConfigName = ".ish.yaml"

// Config holds the settings of an interactive session.
type Config struct {
	Prompt             string   `yaml:"prompt"`
	ContinuationPrompt string   `yaml:"continuation_prompt"`
	HistoryFile        string   `yaml:"history_file"`
	LogLevel           string   `yaml:"log_level"`
	Preload            []string `yaml:"preload"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

func DefaultConfig() Config {
	return Config{
		Prompt:             "ish> ",
		ContinuationPrompt: "...  ",
		HistoryFile:        "~/.ish_history",
		LogLevel:           "info",
	}
}

// ParseConfig reads YAML on top of the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the config at path. An empty path falls back to
// ~/.ish.yaml, and to the defaults if that doesn't exist either.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, DefaultConfigName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	slog.Debug("loaded config", slog.String("path", path))
	return cfg, nil
}

func (c Config) Validate() error {
	var issues []string
	if _, err := c.Level(); err != nil {
		issues = append(issues, fmt.Sprintf("log_level: unknown level %q", c.LogLevel))
	}
	for i, p := range c.Preload {
		if strings.TrimSpace(p) == "" {
			issues = append(issues, fmt.Sprintf("preload[%d]: empty path", i))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Level parses LogLevel; an empty level means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// HistoryPath expands a leading ~ or ~/ in HistoryFile to the home
// directory. Other users' homes (~name) are left alone. Empty means no
// history.
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	if c.HistoryFile != "~" && !strings.HasPrefix(c.HistoryFile, "~/") {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile[1:])
}
