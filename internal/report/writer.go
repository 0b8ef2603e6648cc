package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wbmirror/wbmirror/internal/model"
)

// Writer renders a mirror run summary to some destination.
//
// Design decision: We use an interface so different output formats and
// destinations share one API; the command layer picks the implementation
// from flags without branching anywhere else.
type Writer interface {
	// Write renders the summary. It returns the number of bytes written
	// and any error encountered.
	Write(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, typically
// terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the summary to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// CreateOutputFile creates (or truncates) the report file at path, creating
// parent directories as needed. The caller owns closing the file.
func CreateOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, nil
}
