package snapshot

import (
	"errors"
	"regexp"
	"strings"
)

// Snapshot errors.
var (
	// ErrInvalidTimestamp is returned when a timestamp is not 14 digits.
	ErrInvalidTimestamp = errors.New("snapshot timestamp must be exactly 14 digits")
	// ErrNotArchiveURL is returned when no snapshot timestamp can be derived
	// from an address.
	ErrNotArchiveURL = errors.New("address does not carry a Wayback snapshot prefix")
)

const (
	// Host is the archive host serving snapshot captures.
	Host = "web.archive.org"

	// PathPrefix is the URL path prefix under which captures live.
	PathPrefix = "/web/"

	// TimestampLength is the length of a capture timestamp (YYYYMMDDhhmmss).
	TimestampLength = 14
)

// archiveBase is the fully-qualified prefix shared by all archived addresses.
const archiveBase = "https://" + Host + PathPrefix

var (
	// timestampPattern validates a bare capture timestamp.
	timestampPattern = regexp.MustCompile(`^\d{14}$`)

	// archivedTimestampPattern extracts the timestamp from a fully-qualified
	// archived address.
	archivedTimestampPattern = regexp.MustCompile(`^https?://web\.archive\.org/web/(\d{14})`)

	// originalPattern recovers the pre-archive address from an archived one.
	// The lowercase run after the timestamp is a capture-mode modifier such
	// as im_ (identical/media) or cs_ (stylesheet).
	originalPattern = regexp.MustCompile(`^https?://web\.archive\.org/web/\d{14}[a-z_\-]*/(https?://.+)$`)
)

// Snapshot is an immutable value fixing the capture timestamp a mirror run
// targets. All membership checks match the timestamp digits literally.
type Snapshot struct {
	timestamp string
}

// New creates a Snapshot for the given 14-digit capture timestamp.
func New(timestamp string) (*Snapshot, error) {
	if !timestampPattern.MatchString(timestamp) {
		return nil, ErrInvalidTimestamp
	}
	return &Snapshot{timestamp: timestamp}, nil
}

// FromArchiveURL derives a Snapshot from an archived address by reading the
// timestamp out of its capture prefix. The address may use any of the
// spellings Normalize accepts. Returns ErrNotArchiveURL if no prefix is
// present, which is how a plain (non-archived) seed URL is rejected.
func FromArchiveURL(raw string) (*Snapshot, error) {
	addr := raw
	switch {
	case strings.HasPrefix(addr, "//"+Host+"/"):
		addr = "https:" + addr
	case strings.HasPrefix(addr, PathPrefix):
		addr = "https://" + Host + addr
	}

	m := archivedTimestampPattern.FindStringSubmatch(addr)
	if m == nil {
		return nil, ErrNotArchiveURL
	}
	return New(m[1])
}

// Timestamp returns the capture timestamp.
func (s *Snapshot) Timestamp() string {
	return s.timestamp
}

// Prefix returns the fully-qualified address prefix of this snapshot,
// e.g. "https://web.archive.org/web/20250408214013".
func (s *Snapshot) Prefix() string {
	return archiveBase + s.timestamp
}

// Normalize maps a raw link candidate to its canonical fully-qualified
// archived form. It accepts protocol-relative archive links, path-only
// archive links, and fully-qualified archive links; anything else (external
// URLs, mailto:/javascript: schemes, malformed strings) reports false and is
// silently dropped by callers.
//
// Normalize does not check snapshot membership; pair it with Contains.
func (s *Snapshot) Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	switch {
	case strings.HasPrefix(raw, "//"+Host+"/"):
		return "https:" + raw, true
	case strings.HasPrefix(raw, PathPrefix):
		return "https://" + Host + raw, true
	case strings.HasPrefix(raw, archiveBase):
		return raw, true
	case strings.HasPrefix(raw, s.Prefix()):
		// Already-normalized addresses carrying the exact snapshot prefix.
		// Subsumed by the archiveBase branch but kept as its own accepted
		// form so the admission rule reads the same as the membership rule.
		return raw, true
	}
	return "", false
}

// Contains reports whether addr is a fully-qualified archived address inside
// this snapshot: it must begin with the exact prefix, timestamp digits
// matched literally. An address with a capture-mode modifier still matches
// because the modifier follows the digits.
func (s *Snapshot) Contains(addr string) bool {
	return strings.HasPrefix(addr, s.Prefix())
}

// RecoverOriginal returns the pre-archive address captured inside an
// archived address, e.g.
//
//	https://web.archive.org/web/20250408214013im_/https://example.com/a.png
//
// yields "https://example.com/a.png". Reports false when addr is not an
// archived address of that shape; callers fall back to mapping the archived
// address itself, which is lossy but keeps the pipeline total.
func RecoverOriginal(addr string) (string, bool) {
	m := originalPattern.FindStringSubmatch(addr)
	if m == nil {
		return "", false
	}
	return m[1], true
}
