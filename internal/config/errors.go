package config

import "errors"

// Configuration validation errors.
var (
	// ErrNoSeed is returned when no seed archived address was provided.
	ErrNoSeed = errors.New("seed archived URL is required")

	// ErrNoOutputDir is returned when no output directory was provided.
	ErrNoOutputDir = errors.New("output directory is required")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrInvalidCrawlDelay is returned when the politeness delay is negative.
	ErrInvalidCrawlDelay = errors.New("crawl delay must be non-negative")

	// ErrInvalidMaxBodySize is returned when the body size limit is negative.
	ErrInvalidMaxBodySize = errors.New("max body size must be non-negative")

	// ErrInvalidTimestamp is returned when an explicit snapshot timestamp is
	// not exactly 14 digits.
	ErrInvalidTimestamp = errors.New("snapshot timestamp must be exactly 14 digits")

	// ErrConflictingReportFormats is returned when more than one report
	// format flag is set.
	ErrConflictingReportFormats = errors.New("report formats are mutually exclusive")
)
