// Package output serializes extracted business records into the supported
// export formats.
package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/placehound/placehound/pkg/record"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format, in the order --all-formats emits them.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONL, FormatCSV, FormatXLSX, FormatYAML}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// Writer handles record serialization. Formats that need the full set before
// emitting anything (JSON arrays, spreadsheets) buffer in Write and emit on
// Flush.
type Writer interface {
	// Write buffers or emits a single record.
	Write(b record.Business) error

	// WriteAll buffers or emits multiple records.
	WriteAll(records []record.Business) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
}

// WithPretty enables pretty-printing for formats that support it.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithIndent sets the indentation string.
func WithIndent(indent string) WriterOption {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty: true,
		indent: "  ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatCSV:
		return NewCSVWriter(w), nil
	case FormatXLSX:
		return NewXLSXWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

var stemStripRegex = regexp.MustCompile(`[^\w\-]`)

// FileStem turns a query into a filesystem-safe filename stem:
// "Dentist Austin, TX" becomes "dentist_austin_tx".
func FileStem(query string) string {
	stem := strings.ToLower(strings.TrimSpace(query))
	stem = strings.Join(strings.Fields(stem), "_")
	stem = stemStripRegex.ReplaceAllString(stem, "")
	if stem == "" {
		stem = "results"
	}
	return stem
}
