package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	// candidateDelimiters are tried by the sniffer, in tie-break order.
	candidateDelimiters = []rune{';', ',', '\t', '|'}

	// fallbackDelimiters are used, in order, when sniffing fails or the
	// sniffed delimiter does not parse.
	fallbackDelimiters = []rune{';', ','}
)

var errNoDelimiter = errors.New("could not detect delimiter")

// ReadCSV parses delimited text. The delimiter is detected from the header
// line; when detection or parsing fails, ';' and then ',' are tried.
func ReadCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var attempts []rune
	if delim, err := sniffDelimiter(data); err == nil {
		attempts = append(attempts, delim)
	}
	attempts = append(attempts, fallbackDelimiters...)

	var lastErr error
	for _, delim := range attempts {
		table, err := parseCSV(data, delim)
		if err == nil {
			return table, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// sniffDelimiter picks the candidate that appears most often in the header
// line. Quoted sections are ignored.
func sniffDelimiter(data []byte) (rune, error) {
	line := string(data)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	counts := make(map[rune]int, len(candidateDelimiters))
	quoted := false
	for _, ch := range line {
		if ch == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[ch]++
		}
	}

	best, bestCount := rune(0), 0
	for _, c := range candidateDelimiters {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}

	if bestCount == 0 {
		return 0, errNoDelimiter
	}
	return best, nil
}

func parseCSV(data []byte, delim rune) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := &Table{Header: header}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(row) > len(header) {
			return nil, fmt.Errorf("line has %d fields, header has %d", len(row), len(header))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
