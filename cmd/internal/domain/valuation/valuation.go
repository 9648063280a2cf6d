// Package valuation derives the land, construction and total value of a
// registered property and its estimated IPTU from the pricing reference tables.
//
// Nothing here touches storage: callers load the reference tables into a
// Tables snapshot once per request and appraise every registration against it.
package valuation

import (
	"reurb/cmd/internal/domain/entity"
	"strings"
)

// SocialIncomeCeiling is the highest monthly family income (R$) that still
// qualifies a registration for REURB-S.
const SocialIncomeCeiling = 4000.0

type Category string

const (
	CategorySocial   Category = "REURB-S"
	CategorySpecific Category = "REURB-E"
)

// Appraisal is the derived valuation of one registration. Amounts are in R$.
type Appraisal struct {
	LandValue         float64  // VVT
	ConstructionValue float64  // VVC
	TotalValue        float64  // VVI
	EstimatedTax      float64  // IPTU
	Category          Category // REURB-S or REURB-E
}

// Tables is an immutable view of the reference tables used by Appraise.
type Tables struct {
	streets   map[string]float64
	standards map[string]float64
	rates     []*entity.TaxRateEntry
}

// NewTables indexes the reference rows. Rows are expected in id order: when
// two rows share a key the first one wins. nil slices are valid and simply
// never match.
func NewTables(
	streets []*entity.StreetValueEntry,
	standards []*entity.ConstructionStandardEntry,
	rates []*entity.TaxRateEntry,
) *Tables {
	t := &Tables{
		streets:   make(map[string]float64, len(streets)),
		standards: make(map[string]float64, len(standards)),
		rates:     rates,
	}

	for _, s := range streets {
		if _, ok := t.streets[s.StreetName]; !ok {
			t.streets[s.StreetName] = s.ValuePerAreaUnit
		}
	}

	for _, s := range standards {
		if _, ok := t.standards[s.Description]; !ok {
			t.standards[s.Description] = s.ValuePerAreaUnit
		}
	}
	return t
}

// StreetValue looks a street up by exact name.
func (t *Tables) StreetValue(street string) (float64, bool) {
	v, ok := t.streets[street]
	return v, ok
}

// ConstructionValue looks a construction standard up by exact description.
func (t *Tables) ConstructionValue(standard string) (float64, bool) {
	v, ok := t.standards[standard]
	return v, ok
}

// TaxRate returns the rate (percent) of the first entry whose label contains
// usage, ignoring case.
//
// The match direction is label-contains-usage: a registration used as
// "Residencial" matches the entry "Residencial Unifamiliar", not the reverse.
func (t *Tables) TaxRate(usage string) (float64, bool) {
	needle := strings.ToLower(usage)
	for _, r := range t.rates {
		if strings.Contains(strings.ToLower(r.UsageLabel), needle) {
			return r.RatePercent, true
		}
	}
	return 0, false
}

// Appraise never fails: a missing input or an unmatched lookup contributes
// zero to its term.
func (t *Tables) Appraise(reg *entity.Registration) Appraisal {
	var a Appraisal

	street := deref(reg.PropertyStreet)
	if street != "" && positive(reg.TotalArea) {
		if perUnit, ok := t.StreetValue(street); ok {
			a.LandValue = *reg.TotalArea * perUnit
		}
	}

	standard := deref(reg.ConstructionStandard)
	if standard != "" && positive(reg.BuiltArea) {
		if perUnit, ok := t.ConstructionValue(standard); ok {
			a.ConstructionValue = *reg.BuiltArea * perUnit
		}
	}

	a.TotalValue = a.LandValue + a.ConstructionValue

	usage := deref(reg.Usage)
	if usage != "" && a.TotalValue > 0 {
		if rate, ok := t.TaxRate(usage); ok {
			a.EstimatedTax = a.TotalValue * (rate / 100.0)
		}
	}

	a.Category = Classify(reg.MonthlyFamilyIncome)
	return a
}

// Classify returns REURB-S when the income is known and within the social
// ceiling, REURB-E otherwise.
func Classify(income *float64) Category {
	if income != nil && *income <= SocialIncomeCeiling {
		return CategorySocial
	}
	return CategorySpecific
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func positive(f *float64) bool {
	return f != nil && *f > 0
}
