package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wbmirror/wbmirror/internal/model"
)

// summaryDurationUnit is the rounding applied to the displayed duration.
const summaryDurationUnit = 10 * time.Millisecond

// SimpleWriter outputs a human-readable text summary for terminal display.
//
// Design decision: Plain text with ASCII formatting rather than ANSI colors
// because it works in all terminals and pipes cleanly to files.
type SimpleWriter struct {
	baseWriter

	// verbose lists every failed address instead of only the count.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables listing of failed addresses.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary as text.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	var b strings.Builder

	b.WriteString("Mirror complete\n")
	b.WriteString(strings.Repeat("=", 15) + "\n")
	fmt.Fprintf(&b, "  Seed:      %s\n", summary.Seed)
	fmt.Fprintf(&b, "  Snapshot:  %s\n", summary.Timestamp)
	fmt.Fprintf(&b, "  Output:    %s\n", summary.OutputDir)
	fmt.Fprintf(&b, "  Documents: %d\n", summary.Documents)
	fmt.Fprintf(&b, "  Assets:    %d\n", summary.Assets)
	fmt.Fprintf(&b, "  Failed:    %d\n", summary.Failed)
	fmt.Fprintf(&b, "  Written:   %d bytes\n", summary.Bytes)
	fmt.Fprintf(&b, "  Duration:  %s\n", summary.Duration.Round(summaryDurationUnit))

	if w.verbose && len(summary.Failures) > 0 {
		b.WriteString("\nFailed addresses:\n")
		for _, addr := range summary.Failures {
			fmt.Fprintf(&b, "  - %s\n", addr)
		}
	}

	return io.WriteString(w.output, b.String())
}
