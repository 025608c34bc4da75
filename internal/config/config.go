// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means the default XDG location.
	DBPath string

	// ControlAddr is the listen address of the automation API.
	// Empty disables it.
	ControlAddr string

	// AdvanceDelay is how long a solved problem stays on screen.
	AdvanceDelay time.Duration

	// LogFile receives JSON logs. Empty discards them; the TUI owns stdout.
	LogFile  string
	LogLevel slog.Level

	// CORSOrigins are the origins allowed to call the control API.
	CORSOrigins []string
}

// DefaultAdvanceDelay matches the pause after a right answer.
const DefaultAdvanceDelay = 2 * time.Second

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	delay, err := getEnvDuration("COUNT_ADVANCE_DELAY", DefaultAdvanceDelay)
	if err != nil {
		return nil, err
	}
	level, err := getEnvLevel("COUNT_LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:       getEnv("COUNT_DB", ""),
		ControlAddr:  getEnv("COUNT_CONTROL_ADDR", ""),
		AdvanceDelay: delay,
		LogFile:      getEnv("COUNT_LOG_FILE", ""),
		LogLevel:     level,
		CORSOrigins:  getEnvList("COUNT_CORS_ORIGINS", []string{"http://localhost:*", "http://127.0.0.1:*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("COUNT_ADVANCE_DELAY must be >= 0")
	}
	if c.ControlAddr != "" && !strings.Contains(c.ControlAddr, ":") {
		return fmt.Errorf("COUNT_CONTROL_ADDR must be host:port, got %q", c.ControlAddr)
	}
	return nil
}

// ControlEnabled reports whether the automation API should be started.
func (c *Config) ControlEnabled() bool {
	return c.ControlAddr != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvLevel(key string, fallback slog.Level) (slog.Level, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
