// Package config loads deckview settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// PathEnv overrides the config file location (also used by tests).
	PathEnv = "DECKVIEW_CONFIG"
	// DeckEnv overrides the deck path.
	DeckEnv = "DECKVIEW_DECK"
	// DefaultRelPath is the config location under the user's home.
	DefaultRelPath = ".config/deckview/config.yaml"
)

// Config is the full set of viewer settings.
type Config struct {
	// Deck is a .yaml/.yml/.json path, "embedded:<name>", or empty for the default deck.
	Deck string `yaml:"deck"`
	// CellWidthPx scales terminal columns to px-equivalents for swipe detection.
	CellWidthPx float64 `yaml:"cell_width_px"`
	Animation   bool    `yaml:"animation"`
	Markdown    bool    `yaml:"markdown"`
	Mouse       bool    `yaml:"mouse"`

	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig controls the zap file logger. An empty File disables logging.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// TracingConfig controls OTLP export of session spans. An empty Endpoint disables it.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		CellWidthPx: 8,
		Animation:   true,
		Markdown:    true,
		Mouse:       true,
		Logging: LoggingConfig{
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "deckview",
			Insecure:    true,
		},
	}
}

// DefaultPath returns $DECKVIEW_CONFIG, or ~/.config/deckview/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultRelPath), nil
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(DeckEnv); v != "" {
		c.Deck = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Tracing.ServiceName = v
	}
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.CellWidthPx <= 0 {
		return fmt.Errorf("cell_width_px must be positive, got %v", c.CellWidthPx)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
