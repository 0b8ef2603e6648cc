package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wbmirror/wbmirror/internal/model"
)

// YAMLWriter outputs the summary in YAML format for tool integration.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary as YAML.
func (w *YAMLWriter) Write(summary *model.Summary) (int, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return 0, err
	}

	return w.output.Write(data)
}
