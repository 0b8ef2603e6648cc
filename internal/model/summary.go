package model

import "time"

// Summary aggregates the result of one mirror run for reporting.
type Summary struct {
	// Seed is the canonical archived address the crawl started from.
	Seed string `json:"seed" yaml:"seed"`

	// Timestamp is the 14-digit capture timestamp the run targeted.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// OutputDir is the root of the written mirror tree.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Documents is the number of HTML documents mirrored (link-rewritten).
	Documents int `json:"documents" yaml:"documents"`

	// Assets is the number of non-document resources mirrored byte-identical.
	Assets int `json:"assets" yaml:"assets"`

	// Failed is the number of addresses whose fetch failed.
	Failed int `json:"failed" yaml:"failed"`

	// Bytes is the total number of bytes written to the mirror tree.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Failures lists the archived addresses that could not be fetched.
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Mirrored returns the number of resources written to disk.
func (s *Summary) Mirrored() int {
	return s.Documents + s.Assets
}

// Total returns the number of distinct addresses processed, successful or not.
func (s *Summary) Total() int {
	return s.Mirrored() + s.Failed
}
