// Package testsupport provides shared helpers for package tests: seeded
// configurations with per-test temp paths and host-file fixture builders
// that produce real compressed, encoded, masked payload blocks.
package testsupport

import (
	"path/filepath"
	"testing"

	"saveedit/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp history path per
// test and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithHistoryDisabled turns the history journal off.
func WithHistoryDisabled() ConfigOption {
	return func(c *config.Config) {
		c.History.Enabled = false
	}
}

// WithMaskChar overrides the obfuscation mask character.
func WithMaskChar(ch string) ConfigOption {
	return func(c *config.Config) {
		c.Editor.MaskChar = ch
	}
}

// WithMinEncodedRun overrides the scanner's stripped-length floor.
func WithMinEncodedRun(n int) ConfigOption {
	return func(c *config.Config) {
		c.Editor.MinEncodedRun = n
	}
}
