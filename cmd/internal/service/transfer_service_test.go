package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/metrics"
	"reurb/cmd/internal/utils/apierror"
	"reurb/cmd/internal/utils/validators"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type recordingArchive struct {
	names []string
	err   error
}

func (r *recordingArchive) UploadFile(_ context.Context, _ []byte, filename string) (string, error) {
	r.names = append(r.names, filename)
	return "imports/" + filename, r.err
}

func newTransferFixture(t *testing.T, archive FileArchiver) (*TransferService, *registryFixture, *metrics.Metrics) {
	f := newRegistryFixture(t)
	m := metrics.New(prometheus.NewRegistry())
	svc := NewTransferService(f.regs, f.service.Fields, validators.New(), archive, m)
	return svc, f, m
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(contract.ImportFormField, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[contract.ImportFormField][0]
}

const intakeCSV = "\ufeffNome Completo;CPF;Área Total do Lote (m²);Renda familiar mensal total (R$);Observação;imovel_bairro\n" +
	"Ana;111.222.333-44;100;2500;ignored;Centro\n" +
	";;;;;\n" +
	"Bruno;;cem;;;\n"

func TestImportCSVMapsHeadersAndCoerces(t *testing.T) {
	archive := &recordingArchive{}
	svc, f, m := newTransferFixture(t, archive)

	resp, apierr := svc.ImportFile(context.Background(), fileHeader(t, "Cadastros.CSV", []byte(intakeCSV)))
	require.Nil(t, apierr)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, "2 records imported successfully", resp.Message)

	regs, err := f.regs.FindAll()
	require.NoError(t, err)
	require.Len(t, regs, 2)

	assert.Equal(t, "Ana", *regs[0].ApplicantName)
	assert.Equal(t, "111.222.333-44", *regs[0].ApplicantCPF)
	assert.Equal(t, 100.0, *regs[0].TotalArea)
	assert.Equal(t, 2500.0, *regs[0].MonthlyFamilyIncome)
	assert.Equal(t, "Centro", *regs[0].PropertyNeighborhood)

	assert.Equal(t, "Bruno", *regs[1].ApplicantName)
	assert.Nil(t, regs[1].TotalArea, "unparsable numbers are stored as null")
	assert.Nil(t, regs[1].ApplicantCPF)

	assert.Equal(t, 2.0, promtest.ToFloat64(m.ImportedRows))
	require.Len(t, archive.names, 1)
	assert.Regexp(t, `^[0-9a-f-]{36}\.csv$`, archive.names[0])
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	svc, f, _ := newTransferFixture(t, nil)

	_, apierr := svc.ImportFile(context.Background(), fileHeader(t, "cadastros.txt", []byte("Nome Completo\nAna\n")))
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.UnsupportedFileFormatError, apierr)

	regs, err := f.regs.FindAll()
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestImportXLSX(t *testing.T) {
	svc, f, _ := newTransferFixture(t, nil)

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"Nome Completo", "Logradouro do Imóvel", "Área Construída (m²)"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{"Carla", "Rua B", 45.5}))
	var data bytes.Buffer
	_, err := book.WriteTo(&data)
	require.NoError(t, err)

	resp, apierr := svc.Import(context.Background(), ".xlsx", data.Bytes())
	require.Nil(t, apierr)
	assert.Equal(t, 1, resp.Imported)

	regs, err := f.regs.FindAll()
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Rua B", *regs[0].PropertyStreet)
	assert.Equal(t, 45.5, *regs[0].BuiltArea)
}

func TestImportArchiveFailureIsNotFatal(t *testing.T) {
	svc, _, _ := newTransferFixture(t, &recordingArchive{err: errors.New("bucket unavailable")})

	resp, apierr := svc.Import(context.Background(), ".csv", []byte("Nome Completo\nAna\n"))
	require.Nil(t, apierr)
	assert.Equal(t, 1, resp.Imported)
}

func TestImportCorruptWorkbook(t *testing.T) {
	svc, f, m := newTransferFixture(t, nil)

	_, apierr := svc.Import(context.Background(), ".xlsx", []byte("not a zip"))
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ImportFailures))

	regs, err := f.regs.FindAll()
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func readExport(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()

	book, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{contract.ExportSheetName}, book.GetSheetList())
	rows, err := book.GetRows(contract.ExportSheetName)
	require.NoError(t, err)
	return rows
}

func TestExportEveryColumnWithFriendlyHeaders(t *testing.T) {
	svc, f, _ := newTransferFixture(t, nil)
	_, apierr := f.service.CreateRegistration(map[string]any{"req_nome": "Ana", "imovel_area_total": 100})
	require.Nil(t, apierr)

	buf, apierr := svc.ExportFile(&contract.ExportRequest{})
	require.Nil(t, apierr)

	rows := readExport(t, buf)
	require.Len(t, rows, 2)

	columns := entity.MustFieldSet(&entity.Registration{}).Columns()
	header := rows[0]
	require.Len(t, header, len(columns))
	assert.Equal(t, "id", header[0])
	assert.Contains(t, header, "Nome Completo")
	assert.Contains(t, header, "Área do Lote (m²)")
	assert.Contains(t, header, "Renda Familiar (R$)")
	assert.NotContains(t, header, "req_nome")

	friendly := 0
	for _, h := range header {
		if _, ok := exportHeaders[columnFor(h)]; ok {
			friendly++
		}
	}
	assert.Equal(t, 13, friendly)
}

// columnFor reverses exportHeaders for assertions.
func columnFor(header string) string {
	for column, friendly := range exportHeaders {
		if friendly == header {
			return column
		}
	}
	return header
}

func TestExportSelectedColumns(t *testing.T) {
	svc, f, _ := newTransferFixture(t, nil)
	_, apierr := f.service.CreateRegistration(map[string]any{"req_nome": "Ana", "imovel_area_total": 100})
	require.Nil(t, apierr)

	buf, apierr := svc.ExportFile(&contract.ExportRequest{Columns: []string{"req_nome", "req_cpf", "imovel_area_total", "not_a_column"}})
	require.Nil(t, apierr)

	rows := readExport(t, buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Nome Completo", "CPF", "Área do Lote (m²)", "not_a_column"}, rows[0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "", rows[1][1])
	assert.Equal(t, "100", rows[1][2])
}

func TestExportRejectsDuplicateColumns(t *testing.T) {
	svc, _, _ := newTransferFixture(t, nil)

	_, apierr := svc.ExportFile(&contract.ExportRequest{Columns: []string{"req_nome", "req_nome"}})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestExportWithoutRows(t *testing.T) {
	svc, _, _ := newTransferFixture(t, nil)

	_, apierr := svc.ExportFile(&contract.ExportRequest{})
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.EmptyExportError, apierr)
}
