package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/placehound/placehound/pkg/record"
)

// JSONWriter writes records as one JSON array. Records are buffered until
// Flush so the array is emitted in one piece.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	items  []record.Business
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
		items:  make([]record.Business, 0),
	}
}

// Write buffers a single record.
func (w *JSONWriter) Write(b record.Business) error {
	w.items = append(w.items, b)
	return nil
}

// WriteAll buffers multiple records.
func (w *JSONWriter) WriteAll(records []record.Business) error {
	w.items = append(w.items, records...)
	return nil
}

// Flush writes the buffered records as a JSON array. An empty run still
// yields a valid document: "[]".
func (w *JSONWriter) Flush() error {
	var output []byte
	var err error

	if w.pretty {
		output, err = json.MarshalIndent(w.items, "", w.indent)
	} else {
		output, err = json.Marshal(w.items)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL).
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(b record.Business) error {
	output, err := json.Marshal(b)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}

// WriteAll writes multiple records as JSON lines.
func (w *JSONLWriter) WriteAll(records []record.Business) error {
	for _, b := range records {
		if err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
