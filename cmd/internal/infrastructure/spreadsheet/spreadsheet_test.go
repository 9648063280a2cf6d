package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSVSniffsSemicolon(t *testing.T) {
	data := []byte("Nome Completo;CPF;Área Total do Lote (m²)\nAna;123;100,5\nBruno;456;\n")

	table, err := ReadCSV(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome Completo", "CPF", "Área Total do Lote (m²)"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Ana", "123", "100,5"}, table.Rows[0])
}

func TestReadCSVSniffsComma(t *testing.T) {
	data := []byte("Nome Completo,CPF\nAna,123\n")

	table, err := ReadCSV(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome Completo", "CPF"}, table.Header)
	assert.Equal(t, [][]string{{"Ana", "123"}}, table.Rows)
}

func TestReadCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("CPF;RG\n1;2\n")...)

	table, err := ReadCSV(data)
	require.NoError(t, err)
	assert.Equal(t, "CPF", table.Header[0])
}

func TestReadCSVSingleColumnFallsBack(t *testing.T) {
	table, err := ReadCSV([]byte("CPF\n123\n456\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CPF"}, table.Header)
	assert.Len(t, table.Rows, 2)
}

func TestReadCSVQuotedDelimiterIgnoredBySniffer(t *testing.T) {
	data := []byte("\"Nome, completo\";CPF\n\"Silva, Ana\";123\n")

	table, err := ReadCSV(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome, completo", "CPF"}, table.Header)
	assert.Equal(t, []string{"Silva, Ana", "123"}, table.Rows[0])
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV(nil)
	assert.Error(t, err)
}

func TestReadUnsupportedExtension(t *testing.T) {
	_, err := Read(".txt", []byte("a;b"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRecordsSkipsBlankRowsAndHeaders(t *testing.T) {
	table := &Table{
		Header: []string{" CPF ", "", "RG"},
		Rows: [][]string{
			{"123", "ignored", " 9 "},
			{"", "", ""},
			{"456"},
		},
	}

	records := table.Records()
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"CPF": "123", "RG": "9"}, records[0])
	assert.Equal(t, map[string]string{"CPF": "456"}, records[1])
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, "Cadastros",
		[]string{"Nome Completo", "Área do Lote (m²)"},
		[][]any{
			{"Ana", 100.5},
			{"Bruno", ""},
		},
	)
	require.NoError(t, err)

	table, err := Read(".XLSX", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"Nome Completo", "Área do Lote (m²)"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Ana", table.Rows[0][0])
	assert.Equal(t, "100.5", table.Rows[0][1])
	assert.Equal(t, "Bruno", table.Rows[1][0])
}

func TestReadXLSXFormatsDateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	builtinDate, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	customCode := "dd/mm/yyyy hh:mm"
	customDate, err := f.NewStyle(&excelize.Style{CustomNumFmt: &customCode})
	require.NoError(t, err)
	decimal, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"req_data_nasc", "imovel_data_ocupacao", "imovel_area_total"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{45123, 45123.5, 100.5}))
	require.NoError(t, f.SetCellStyle(sheet, "A2", "A2", builtinDate))
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", customDate))
	require.NoError(t, f.SetCellStyle(sheet, "C2", "C2", decimal))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	table, err := ReadXLSX(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2023-07-16", "2023-07-16 12:00:00", "100.5"}, table.Rows[0])
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm:ss", true},
		{"[$-416]d mmm yy", true},
		{"0.00", false},
		{"#,##0.00 \"dias\"", false},
		{"[Red]0.0", false},
		{"hh:mm", false},
		{"General", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}
}
