package output

import (
	"encoding/csv"
	"io"

	"github.com/placehound/placehound/pkg/record"
)

// CSVWriter writes records as CSV rows with a fixed header.
type CSVWriter struct {
	w         *csv.Writer
	headerOut bool
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write emits a single record, writing the header first if needed.
func (w *CSVWriter) Write(b record.Business) error {
	if !w.headerOut {
		if err := w.w.Write(columns); err != nil {
			return err
		}
		w.headerOut = true
	}
	return w.w.Write(row(b))
}

// WriteAll emits multiple records.
func (w *CSVWriter) WriteAll(records []record.Business) error {
	for _, b := range records {
		if err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows. An empty run still yields the header.
func (w *CSVWriter) Flush() error {
	if !w.headerOut {
		if err := w.w.Write(columns); err != nil {
			return err
		}
		w.headerOut = true
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
