package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// newTestLogger returns a logger whose output is captured in buf.
func newTestLogger(buf *bytes.Buffer, maxLen int) *slog.Logger {
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewTruncateHandler(inner, maxLen))
}

// TestTruncateHandler tests attribute value capping.
func TestTruncateHandler(t *testing.T) {
	t.Parallel()

	t.Run("short values pass through unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf, 64)
		logger.Info("fetched", "url", "https://web.archive.org/web/20250408214013/https://example.com/")

		out := buf.String()
		if !strings.Contains(out, "https://example.com/") {
			t.Errorf("expected full URL in output, got %q", out)
		}
		if strings.Contains(out, truncationMark) {
			t.Errorf("unexpected truncation mark in %q", out)
		}
	})

	t.Run("oversized values are capped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf, 32)
		long := "data:image/png;base64," + strings.Repeat("A", 4096)
		logger.Info("skipped", "url", long)

		out := buf.String()
		if !strings.Contains(out, truncationMark) {
			t.Errorf("expected truncation mark in %q", out)
		}
		if strings.Contains(out, strings.Repeat("A", 64)) {
			t.Error("expected long value to be cut")
		}
	})

	t.Run("multi-byte runes are not split", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf, 5)
		logger.Info("title", "value", "ああああああ")

		out := buf.String()
		if strings.Contains(out, "�") {
			t.Errorf("expected no replacement rune in %q", out)
		}
		if !strings.Contains(out, truncationMark) {
			t.Errorf("expected truncation mark in %q", out)
		}
	})

	t.Run("group attributes are capped recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf, 16)
		logger.Info("written",
			slog.Group("resource",
				slog.String("path", strings.Repeat("x", 128)),
				slog.Int("size", 42),
			),
		)

		out := buf.String()
		if !strings.Contains(out, truncationMark) {
			t.Errorf("expected truncation mark in group value, got %q", out)
		}
		if !strings.Contains(out, "size=42") {
			t.Errorf("expected non-string attrs untouched, got %q", out)
		}
	})

	t.Run("non-string values are untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf, 4)
		logger.Info("stats", "pages", 123456789)

		if !strings.Contains(buf.String(), "123456789") {
			t.Errorf("expected int attr preserved, got %q", buf.String())
		}
	})
}
