package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/placehound/placehound/pkg/record"
)

const sheetName = "Businesses"

// XLSXWriter writes records as a styled spreadsheet. Records are buffered
// until Flush, when the whole workbook is built and emitted.
type XLSXWriter struct {
	w     io.Writer
	items []record.Business
}

// NewXLSXWriter creates an XLSX writer.
func NewXLSXWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, items: make([]record.Business, 0)}
}

// Write buffers a single record.
func (w *XLSXWriter) Write(b record.Business) error {
	w.items = append(w.items, b)
	return nil
}

// WriteAll buffers multiple records.
func (w *XLSXWriter) WriteAll(records []record.Business) error {
	w.items = append(w.items, records...)
	return nil
}

// Flush builds the workbook and writes it out.
func (w *XLSXWriter) Flush() error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 24); err != nil {
		return err
	}

	for i, b := range w.items {
		for col, value := range cells(b) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w.w)
}

// Close flushes and closes the writer.
func (w *XLSXWriter) Close() error {
	return w.Flush()
}

// cells mirrors row() but keeps numeric fields typed so spreadsheets can
// sort and filter on them.
func cells(b record.Business) []any {
	values := make([]any, len(columns))
	for i, v := range row(b) {
		values[i] = v
	}
	if b.Rating != nil {
		values[4] = *b.Rating
	}
	if b.ReviewCount != nil {
		values[5] = *b.ReviewCount
	}
	return values
}
