package contract

const (
	ImportFormField = "arquivo"

	ExportFileName  = "cadastros_reurb.xlsx"
	ExportSheetName = "Cadastros"
	XLSXMimeType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ValidImportFileTypes = []string{"xlsx", "csv"}

type ImportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// ExportRequest selects the registration columns to export. An empty list
// exports every column.
type ExportRequest struct {
	Columns []string `json:"columns" validate:"omitempty,nodupes,dive,required,max=64"`
}
