// Package spreadsheet reads tabular uploads (.xlsx and delimited text) and
// writes .xlsx workbooks.
package spreadsheet

import (
	"errors"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Table is a parsed sheet: the first row is the header, the rest are data.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses data according to the file extension (".xlsx" or ".csv",
// case-insensitive).
func Read(ext string, data []byte) (*Table, error) {
	switch strings.ToLower(ext) {
	case ".xlsx":
		return ReadXLSX(data)
	case ".csv":
		return ReadCSV(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Records returns each data row keyed by its header. Headers and cells are
// trimmed; rows shorter than the header simply miss the trailing keys and
// blank headers are skipped. Rows without any non-blank cell are dropped.
func (t *Table) Records() []map[string]string {
	header := make([]string, len(t.Header))
	for i, h := range t.Header {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(header))
		blank := true
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}

			cell = strings.TrimSpace(cell)
			if cell != "" {
				blank = false
			}
			rec[header[i]] = cell
		}

		if !blank {
			records = append(records, rec)
		}
	}
	return records
}
