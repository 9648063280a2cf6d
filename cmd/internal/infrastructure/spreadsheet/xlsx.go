package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first worksheet of a workbook. Cell values are read raw
// so numbers are not affected by the sheet's display format, except for
// date-formatted cells which are written as ISO dates.
func ReadXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	if err = formatDates(f, sheets[0], rows); err != nil {
		return nil, err
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Built-in number formats that display a date.
var dateNumFmts = map[int]bool{14: true, 15: true, 16: true, 17: true, 22: true}

func formatDates(f *excelize.File, sheet string, rows [][]string) error {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return fmt.Errorf("failed to read workbook properties: %w", err)
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	isDate := make(map[int]bool)
	for r := 1; r < len(rows); r++ {
		for c, value := range rows[r] {
			serial, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			styleID, err := f.GetCellStyle(sheet, cell)
			if err != nil {
				return fmt.Errorf("failed to read style of %s: %w", cell, err)
			}

			date, ok := isDate[styleID]
			if !ok {
				style, err := f.GetStyle(styleID)
				if err != nil {
					return fmt.Errorf("failed to read style %d: %w", styleID, err)
				}
				date = isDateStyle(style)
				isDate[styleID] = date
			}

			if !date {
				continue
			}

			t, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				continue
			}
			rows[r][c] = formatDate(t)
		}
	}
	return nil
}

func isDateStyle(style *excelize.Style) bool {
	if style.CustomNumFmt == nil {
		id := style.NumFmt
		return dateNumFmts[id] || (27 <= id && id <= 36) || (50 <= id && id <= 58)
	}
	return isDateFormatCode(*style.CustomNumFmt)
}

// isDateFormatCode reports whether a custom format code prints a day or a
// year. Quoted literals, escaped characters and bracketed sections such as
// colors or locales are ignored.
func isDateFormatCode(code string) bool {
	var quoted, bracket bool
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case quoted:
			quoted = ch != '"'
		case bracket:
			bracket = ch != ']'
		case ch == '"':
			quoted = true
		case ch == '[':
			bracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch {
			case 'd', 'D', 'y', 'Y':
				return true
			}
		}
	}
	return false
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

// WriteXLSX writes a single-sheet workbook. Row values are written with their
// Go type, so float64 cells stay numeric; nil cells are left empty.
func WriteXLSX(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := row
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
