package config

import (
	"regexp"
	"time"
)

// Default configuration values. Where the value affects observable mirror
// behavior (delay, timeout, user agent) it reproduces the reference
// crawler's settings.
const (
	// DefaultTimeout bounds each archive request. The Wayback Machine can be
	// slow under load, but 30 seconds is enough for a single resource; a
	// hung request should not stall the whole drain.
	DefaultTimeout = 30 * time.Second

	// DefaultCrawlDelay is the fixed pause after each processed address.
	// This is a politeness setting toward the archive host, not a
	// correctness requirement.
	DefaultCrawlDelay = 100 * time.Millisecond

	// DefaultUserAgent identifies wbmirror in HTTP requests. A fixed,
	// descriptive identifier lets archive operators recognize the traffic.
	DefaultUserAgent = "wbmirror/1.0 (+https://github.com/wbmirror/wbmirror)"

	// DefaultMaxBodySize limits the response body size read per resource.
	// 10MB covers documents and typical page assets while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// AppName is the application name.
	AppName = "wbmirror"
)

// timestampPattern validates an explicit snapshot timestamp override.
var timestampPattern = regexp.MustCompile(`^\d{14}$`)

// Config holds all options for one mirror run. It is populated from CLI
// flags and passed through the application via dependency injection rather
// than global state.
//
// Design decision: A single flat struct instead of nested sub-structs. The
// number of options is manageable, and nesting would add complexity without
// benefit.
type Config struct {
	// Seed is the archived address the crawl starts from. Any of the
	// accepted archive URL spellings is allowed.
	Seed string

	// OutputDir is the root directory the mirror tree is written under.
	OutputDir string

	// Timestamp optionally pins the target snapshot. When empty, the
	// timestamp is derived from the seed's capture prefix. When set, the
	// seed must still classify inside this snapshot or the run aborts.
	Timestamp string

	// Timeout is the per-request timeout for archive fetches.
	Timeout time.Duration

	// CrawlDelay is the fixed pause after each processed address.
	CrawlDelay time.Duration

	// UserAgent is the client identifier sent with every request.
	UserAgent string

	// MaxBodySize limits the response body size read per resource.
	// 0 means DefaultMaxBodySize.
	MaxBodySize int64

	// Verbose enables slog.LevelDebug output. When false, only warnings and
	// errors are logged.
	Verbose bool

	// Manifest enables writing the run manifest database into OutputDir.
	Manifest bool

	// JSONReport outputs the run summary as JSON.
	// Mutually exclusive with MarkdownReport and YAMLReport.
	JSONReport bool

	// MarkdownReport outputs the run summary as GitHub Flavored Markdown.
	// Mutually exclusive with JSONReport and YAMLReport.
	MarkdownReport bool

	// YAMLReport outputs the run summary as YAML.
	// Mutually exclusive with JSONReport and MarkdownReport.
	YAMLReport bool

	// OutputPath optionally writes the report to a file in addition to
	// stdout. Parent directories are created as needed.
	OutputPath string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		CrawlDelay:  DefaultCrawlDelay,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Manifest:    true,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Seed == "" {
		return ErrNoSeed
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.CrawlDelay < 0 {
		return ErrInvalidCrawlDelay
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.Timestamp != "" && !timestampPattern.MatchString(c.Timestamp) {
		return ErrInvalidTimestamp
	}

	// Report formats are mutually exclusive
	formats := 0
	for _, set := range []bool{c.JSONReport, c.MarkdownReport, c.YAMLReport} {
		if set {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
