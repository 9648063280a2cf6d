package entity

// ReferenceVariant names one of the pricing reference tables.
type ReferenceVariant string

const (
	VariantValuePlan            ReferenceVariant = "valuePlan"
	VariantConstructionStandard ReferenceVariant = "constructionStandard"
	VariantStreetValue          ReferenceVariant = "streetValue"
	VariantTaxRate              ReferenceVariant = "taxRate"
)

// legacyVariants maps the route names used by the first version of the
// frontend to the current variants.
var legacyVariants = map[string]ReferenceVariant{
	"pgv":         VariantValuePlan,
	"padroes":     VariantConstructionStandard,
	"logradouros": VariantStreetValue,
	"aliquotas":   VariantTaxRate,
}

var ReferenceVariants = []ReferenceVariant{
	VariantValuePlan,
	VariantConstructionStandard,
	VariantStreetValue,
	VariantTaxRate,
}

// ParseReferenceVariant resolves a route segment into a variant.
func ParseReferenceVariant(raw string) (ReferenceVariant, bool) {
	for _, v := range ReferenceVariants {
		if string(v) == raw {
			return v, true
		}
	}
	v, ok := legacyVariants[raw]
	return v, ok
}

// ReferenceEntry is implemented by every reference table row.
type ReferenceEntry interface {
	TableName() string
}

// ValuePlanEntry is a row of the generic value plan (PGV).
type ValuePlanEntry struct {
	ID               int     `gorm:"primaryKey" json:"id"`
	Description      string  `gorm:"column:descricao;size:150;not null" json:"descricao" validate:"required,max=150"`
	ValuePerAreaUnit float64 `gorm:"column:valor_m2;not null" json:"valor_m2" validate:"gte=0"`
}

func (ValuePlanEntry) TableName() string { return "pgv" }

// ConstructionStandardEntry prices one square metre of a construction standard.
type ConstructionStandardEntry struct {
	ID               int     `gorm:"primaryKey" json:"id"`
	Description      string  `gorm:"column:descricao;size:150;not null" json:"descricao" validate:"required,max=150"`
	ValuePerAreaUnit float64 `gorm:"column:valor_m2;not null" json:"valor_m2" validate:"gte=0"`
}

func (ConstructionStandardEntry) TableName() string { return "padroes_construtivos" }

// StreetValueEntry prices one square metre of land on a street.
type StreetValueEntry struct {
	ID               int     `gorm:"primaryKey" json:"id"`
	StreetName       string  `gorm:"column:logradouro;size:150;not null" json:"logradouro" validate:"required,max=150"`
	ValuePerAreaUnit float64 `gorm:"column:valor_m2;not null" json:"valor_m2" validate:"gte=0"`
}

func (StreetValueEntry) TableName() string { return "valores_logradouro" }

// TaxRateEntry is the IPTU rate, in percent, for a usage category.
type TaxRateEntry struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	UsageLabel  string  `gorm:"column:tipo;size:150;not null" json:"tipo" validate:"required,max=150"`
	RatePercent float64 `gorm:"column:aliquota;not null" json:"aliquota" validate:"gte=0"`
}

func (TaxRateEntry) TableName() string { return "aliquotas_iptu" }
