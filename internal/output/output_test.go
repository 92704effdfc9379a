package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/placehound/placehound/pkg/record"
)

func sampleRecord() record.Business {
	rating := 4.7
	reviews := 1234
	address := "100 Congress Ave, Austin, TX 78701"
	return record.Business{
		Name:        "Bright Smile Dental",
		Address:     &address,
		Rating:      &rating,
		ReviewCount: &reviews,
		Socials: map[string]string{
			"instagram": "https://instagram.com/brightsmile",
			"facebook":  "https://facebook.com/brightsmile",
		},
		SourceURL:   "https://www.google.com/maps/place/bright-smile",
		QuerySource: "Dentist Austin TX",
	}
}

func TestJSONWriter_AbsentFieldsAreNull(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, WithPretty(false))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Write(record.Business{Name: "Corner Barber", QuerySource: "barber"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var decoded []map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d elements, want 1", len(decoded))
	}
	for _, field := range []string{"address", "phone", "website", "rating", "review_count"} {
		raw, present := decoded[0][field]
		if !present {
			t.Errorf("field %q missing, want explicit null", field)
			continue
		}
		if string(raw) != "null" {
			t.Errorf("field %q = %s, want null", field, raw)
		}
	}
}

func TestJSONWriter_EmptySetIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, WithPretty(false))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSONL)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteAll([]record.Business{sampleRecord(), {Name: "Corner Barber"}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var b record.Business
	if err := json.Unmarshal([]byte(lines[0]), &b); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if b.Name != "Bright Smile Dental" || b.Rating == nil || *b.Rating != 4.7 {
		t.Errorf("decoded line = %+v", b)
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatCSV)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteAll([]record.Business{sampleRecord(), {Name: "Corner Barber"}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][len(columns)-1] != "Query Source" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][4] != "4.7" || rows[1][5] != "1234" {
		t.Errorf("numeric cells = %q, %q", rows[1][4], rows[1][5])
	}
	if rows[1][10] != "facebook: https://facebook.com/brightsmile; instagram: https://instagram.com/brightsmile" {
		t.Errorf("socials cell = %q", rows[1][10])
	}
	// Sparse record: every cell present, optional ones empty.
	if len(rows[2]) != len(columns) {
		t.Fatalf("sparse row has %d cells, want %d", len(rows[2]), len(columns))
	}
	for i := 1; i < len(columns)-2; i++ {
		if rows[2][i] != "" {
			t.Errorf("sparse row cell %d = %q, want empty", i, rows[2][i])
		}
	}
}

func TestCSVWriter_EmptySetStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatCSV)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil || len(rows) != 1 {
		t.Fatalf("rows = %v, err = %v, want just the header", rows, err)
	}
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatXLSX)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Write(sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "A2")
	if err != nil || name != "Bright Smile Dental" {
		t.Errorf("A2 = %q, err = %v", name, err)
	}
	header, err := f.GetCellValue(sheetName, "A1")
	if err != nil || header != "Name" {
		t.Errorf("A1 = %q, err = %v", header, err)
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatYAML)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Write(sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Bright Smile Dental") {
		t.Errorf("output missing record data:\n%s", out)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" XLSX "); err != nil || f != FormatXLSX {
		t.Errorf("ParseFormat(XLSX) = %v, %v", f, err)
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("unknown format passed validation")
	}
}

func TestFileStem(t *testing.T) {
	cases := map[string]string{
		"Dentist Austin, TX":  "dentist_austin_tx",
		"  café & bars  ":     "caf__bars",
		"plumbers":            "plumbers",
		"!!!":                 "results",
		"multi   word  query": "multi_word_query",
	}
	for in, want := range cases {
		if got := FileStem(in); got != want {
			t.Errorf("FileStem(%q) = %q, want %q", in, got, want)
		}
	}
}
