package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// row is a single CSV record with header-based column access. Missing
// columns read as empty strings, matching how the source data treats blank
// and absent values identically.
type row struct {
	header map[string]int
	fields []string
}

// get returns the value of the named column, or "" when the column is not
// present in the header or the record is short.
func (r row) get(col string) string {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

// readCSV reads an entire CSV file into header-addressable rows. The first
// record is the header. Records may be ragged; short records read as empty
// for the trailing columns.
func readCSV(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCSV(f)
}

func decodeCSV(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRec, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	header := make(map[string]int, len(headerRec))
	for i, name := range headerRec {
		header[name] = i
	}

	var rows []row
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, row{header: header, fields: rec})
	}
	return rows, nil
}
