package config

import (
	"errors"
	"testing"
	"time"
)

// validConfig returns a Config that passes validation.
func validConfig() *Config {
	c := NewConfig()
	c.Seed = "https://web.archive.org/web/20250408214013/https://example.com/"
	c.OutputDir = "out"
	return c
}

// TestNewConfig tests that defaults are applied.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	if c.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, c.Timeout)
	}
	if c.CrawlDelay != DefaultCrawlDelay {
		t.Errorf("expected delay %v, got %v", DefaultCrawlDelay, c.CrawlDelay)
	}
	if c.UserAgent != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, c.UserAgent)
	}
	if c.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("expected max body size %d, got %d", DefaultMaxBodySize, c.MaxBodySize)
	}
	if !c.Manifest {
		t.Error("expected manifest to default on")
	}
}

// TestConfigValidate tests validation of each constraint.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"missing seed", func(c *Config) { c.Seed = "" }, ErrNoSeed},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, ErrNoOutputDir},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"negative delay", func(c *Config) { c.CrawlDelay = -time.Second }, ErrInvalidCrawlDelay},
		{"negative body size", func(c *Config) { c.MaxBodySize = -1 }, ErrInvalidMaxBodySize},
		{"short timestamp", func(c *Config) { c.Timestamp = "2025" }, ErrInvalidTimestamp},
		{"non-digit timestamp", func(c *Config) { c.Timestamp = "2025040821401x" }, ErrInvalidTimestamp},
		{"valid timestamp", func(c *Config) { c.Timestamp = "20250408214013" }, nil},
		{"json and markdown", func(c *Config) { c.JSONReport = true; c.MarkdownReport = true }, ErrConflictingReportFormats},
		{"markdown and yaml", func(c *Config) { c.MarkdownReport = true; c.YAMLReport = true }, ErrConflictingReportFormats},
		{"single format ok", func(c *Config) { c.YAMLReport = true }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tt.modify(c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
