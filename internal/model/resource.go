package model

import (
	"strings"
	"time"
)

// ResourceStatus is the terminal state of one archived address in a run.
type ResourceStatus string

const (
	// StatusMirrored means the resource was fetched and written to disk.
	StatusMirrored ResourceStatus = "mirrored"
	// StatusFailed means the fetch failed (transport error or non-2xx
	// status). Failed addresses stay in the visited set and are never
	// retried within a run.
	StatusFailed ResourceStatus = "failed"
)

// Resource records the mirror outcome for a single archived address.
type Resource struct {
	// ArchivedURL is the canonical fully-qualified archived address.
	ArchivedURL string `json:"archived_url" yaml:"archived_url"`

	// OriginalURL is the pre-archive address recovered from ArchivedURL.
	// When recovery fails it holds the archived address itself; the local
	// path is then derived from the archive host, which is lossy but total.
	OriginalURL string `json:"original_url" yaml:"original_url"`

	// LocalPath is the filesystem destination the resource was written to.
	// Empty for failed fetches.
	LocalPath string `json:"local_path,omitempty" yaml:"local_path,omitempty"`

	// ContentType is the Content-Type label reported by the archive.
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// Size is the number of bytes written to LocalPath.
	Size int64 `json:"size" yaml:"size"`

	// Status is the terminal state of this resource.
	Status ResourceStatus `json:"status" yaml:"status"`

	// FetchedAt is when the fetch attempt was made.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// IsDocument reports whether the resource was stored as rewritten markup
// rather than raw bytes.
func (r *Resource) IsDocument() bool {
	return IsMarkup(r.ContentType)
}

// IsMarkup reports whether a Content-Type label denotes an HTML document.
// Matching is a substring check because archive responses carry parameters
// such as "text/html; charset=utf-8".
func IsMarkup(contentType string) bool {
	return strings.Contains(contentType, "text/html")
}
