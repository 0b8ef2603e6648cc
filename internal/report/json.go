package report

import (
	"encoding/json"
	"io"

	"github.com/wbmirror/wbmirror/internal/model"
)

// JSONWriter outputs the summary in JSON format for tool integration.
//
// Design decision: Standard encoding/json rather than a third-party JSON
// library: it is sufficient for a flat summary and keeps behavior
// consistent across Go versions.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output. When false, output is compact.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  ").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// Convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary as JSON followed by a newline.
func (w *JSONWriter) Write(summary *model.Summary) (int, error) {
	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(summary, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(summary)
	}
	if err != nil {
		return 0, err
	}

	return w.output.Write(append(data, '\n'))
}
