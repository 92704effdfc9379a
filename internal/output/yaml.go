package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/placehound/placehound/pkg/record"
)

// YAMLWriter writes records as one YAML sequence.
type YAMLWriter struct {
	w     *bufio.Writer
	items []record.Business
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		items: make([]record.Business, 0),
	}
}

// Write buffers a single record.
func (w *YAMLWriter) Write(b record.Business) error {
	w.items = append(w.items, b)
	return nil
}

// WriteAll buffers multiple records.
func (w *YAMLWriter) WriteAll(records []record.Business) error {
	w.items = append(w.items, records...)
	return nil
}

// Flush writes the buffered records as YAML.
func (w *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.items); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
