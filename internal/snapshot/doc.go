// Package snapshot classifies and normalizes Wayback Machine URLs against a
// single capture timestamp.
//
// A Wayback capture addresses every resource as
//
//	https://web.archive.org/web/<14-digit-timestamp><optional modifier>/<original-url>
//
// The same archived resource appears in markup under several spellings:
// fully qualified, protocol-relative (//web.archive.org/...), and path-only
// (/web/...). This package is the single admission point that folds those
// spellings into one canonical form and decides snapshot membership, so the
// rest of the pipeline never special-cases input shape.
//
// Capture-mode modifiers (im_, js_, cs_, ...) make textually distinct
// addresses that are compared by exact string equality and never folded.
package snapshot
