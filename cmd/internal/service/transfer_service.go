package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/infrastructure/spreadsheet"
	"reurb/cmd/internal/metrics"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// importHeaders maps the headers of the municipal intake spreadsheet to
// registration columns. Headers already named after a column are kept as is.
var importHeaders = map[string]string{
	"Nome Completo":                    "req_nome",
	"CPF":                              "req_cpf",
	"RG":                               "req_rg",
	"Telefone Principal":               "req_telefone",
	"E-mail":                           "req_email",
	"Inscrição Imobiliária":            "inscricao_imobiliaria",
	"Logradouro do Imóvel":             "imovel_logradouro",
	"Número do Imóvel":                 "imovel_numero",
	"Bairro do Imóvel":                 "imovel_bairro",
	"Área Total do Lote (m²)":          "imovel_area_total",
	"Área Construída (m²)":             "imovel_area_construida",
	"Uso Principal do Imóvel":          "imovel_uso",
	"Padrão Construtivo":               "imovel_tipo_construcao",
	"Renda familiar mensal total (R$)": "reurb_renda_familiar",
}

// exportHeaders are the friendly names written to the export header row.
// Columns without an entry keep their own name.
var exportHeaders = map[string]string{
	"req_nome":               "Nome Completo",
	"req_cpf":                "CPF",
	"req_rg":                 "RG",
	"req_telefone":           "Telefone",
	"req_email":              "E-mail",
	"inscricao_imobiliaria":  "Inscrição Imobiliária",
	"imovel_logradouro":      "Logradouro",
	"imovel_numero":          "Número",
	"imovel_bairro":          "Bairro",
	"imovel_area_total":      "Área do Lote (m²)",
	"imovel_area_construida": "Área Construída (m²)",
	"reurb_renda_familiar":   "Renda Familiar (R$)",
	"imovel_uso":             "Uso do Imóvel",
}

// FileArchiver keeps a copy of imported files. It is optional.
type FileArchiver interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)
}

type TransferService struct {
	RegRepo  RegistrationRepository
	Fields   *entity.FieldSet
	Validate *validator.Validate
	Archive  FileArchiver
	Metrics  *metrics.Metrics
}

func NewTransferService(regRepo RegistrationRepository, fields *entity.FieldSet, validate *validator.Validate, archive FileArchiver, m *metrics.Metrics) *TransferService {
	return &TransferService{
		RegRepo:  regRepo,
		Fields:   fields,
		Validate: validate,
		Archive:  archive,
		Metrics:  m,
	}
}

func (t *TransferService) ImportFile(ctx context.Context, fileHeader *multipart.FileHeader) (*contract.ImportResponse, apierror.ErrorResponse) {
	if fileHeader.Filename == "" {
		return nil, apierror.MissingFileNameError
	}

	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidImportFileTypes)
	if !ok {
		return nil, apierror.UnsupportedFileFormatError
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open uploaded file %q: %v", fileHeader.Filename, err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read uploaded file %q: %v", fileHeader.Filename, err)
		return nil, apierror.InternalServerError
	}
	return t.Import(ctx, ext, data)
}

// Import parses data and inserts one registration per non-blank row. Rows are
// written in a single transaction: either every row is stored or none is.
func (t *TransferService) Import(ctx context.Context, ext string, data []byte) (*contract.ImportResponse, apierror.ErrorResponse) {
	table, err := spreadsheet.Read(ext, data)
	if err != nil {
		t.Metrics.IncrementImportFailures()
		if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
			return nil, apierror.UnsupportedFileFormatError
		}
		return nil, apierror.NewImportError(err)
	}

	records := table.Records()
	regs := make([]*entity.Registration, 0, len(records))
	for _, record := range records {
		reg, err := registrationFromFields(normalizeFields(t.Fields, t.mapRecord(record)))
		if err != nil {
			t.Metrics.IncrementImportFailures()
			return nil, apierror.NewImportError(err)
		}
		regs = append(regs, reg)
	}

	if err = t.RegRepo.CreateBatch(regs); err != nil {
		log.Errorf("failed to import %d registrations: %v", len(regs), err)
		t.Metrics.IncrementImportFailures()
		return nil, apierror.NewPersistenceError(err)
	}

	t.Metrics.AddImported(len(regs))
	t.archive(ctx, ext, data)

	return &contract.ImportResponse{
		Success:  true,
		Message:  fmt.Sprintf("%d records imported successfully", len(regs)),
		Imported: len(regs),
	}, nil
}

// mapRecord renames spreadsheet headers to columns. Unknown headers and blank
// cells are dropped.
func (t *TransferService) mapRecord(record map[string]string) map[string]any {
	out := make(map[string]any, len(record))
	for header, cell := range record {
		if cell == "" {
			continue
		}

		column, ok := importHeaders[header]
		if !ok {
			column = header
		}

		if _, ok = t.Fields.Kind(column); ok {
			out[column] = cell
		}
	}
	return out
}

func (t *TransferService) archive(ctx context.Context, ext string, data []byte) {
	if t.Archive == nil {
		return
	}

	key, err := t.Archive.UploadFile(ctx, data, uuid.NewString()+ext)
	if err != nil {
		log.Errorf("failed to archive imported file: %v", err)
		return
	}
	log.Infof("archived imported file at %s", key)
}

// ExportFile writes the selected columns of every registration to an xlsx
// workbook. An empty column list selects every column.
func (t *TransferService) ExportFile(req *contract.ExportRequest) (*bytes.Buffer, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = t.Fields.Columns()
	}

	regs, err := t.RegRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch registrations for export: %v", err)
		return nil, apierror.InternalServerError
	}

	if len(regs) == 0 {
		return nil, apierror.EmptyExportError
	}

	rows := make([][]any, len(regs))
	for i, reg := range regs {
		values, err := registrationColumns(reg)
		if err != nil {
			log.Errorf("failed to flatten registration %d: %v", reg.ID, err)
			return nil, apierror.InternalServerError
		}

		row := make([]any, len(columns))
		for j, column := range columns {
			row[j] = values[column]
		}
		rows[i] = row
	}

	var buf bytes.Buffer
	if err = spreadsheet.WriteXLSX(&buf, contract.ExportSheetName, exportHeaderRow(columns), rows); err != nil {
		log.Errorf("failed to write export workbook: %v", err)
		return nil, apierror.InternalServerError
	}

	t.Metrics.AddExported(len(regs))
	return &buf, nil
}

func exportHeaderRow(columns []string) []string {
	header := make([]string, len(columns))
	for i, column := range columns {
		if friendly, ok := exportHeaders[column]; ok {
			header[i] = friendly
		} else {
			header[i] = column
		}
	}
	return header
}
