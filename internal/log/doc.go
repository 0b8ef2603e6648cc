// Package log provides logging utilities for wbmirror built on log/slog.
//
// The package provides TruncateHandler, an slog.Handler wrapper that caps
// oversized attribute values. Crawl logs attach archived URLs, srcset blobs,
// and CSS fragments as attributes; a single data: URI can run to hundreds of
// kilobytes and make the log unreadable.
package log
