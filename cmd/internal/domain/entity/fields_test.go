package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFieldSet(t *testing.T) {
	fs, err := NewFieldSet(&Registration{})
	require.NoError(t, err)

	columns := fs.Columns()
	require.Len(t, columns, 48)
	assert.Equal(t, "id", columns[0])
	assert.NotContains(t, columns, "Constructions")

	_, ok := fs.Kind("id")
	assert.False(t, ok, "the primary key is not writable")
	assert.NotContains(t, fs.Writable(), "id")
	assert.Len(t, fs.Writable(), 47)

	numericColumns := []string{"imovel_area_total", "imovel_area_construida", "reurb_renda_familiar"}
	for _, column := range numericColumns {
		kind, ok := fs.Kind(column)
		require.True(t, ok, column)
		assert.Equal(t, FieldNumeric, kind, column)
	}

	numeric := 0
	for _, column := range fs.Writable() {
		if kind, _ := fs.Kind(column); kind == FieldNumeric {
			numeric++
		}
	}
	assert.Equal(t, len(numericColumns), numeric)

	kind, ok := fs.Kind("req_nome")
	require.True(t, ok)
	assert.Equal(t, FieldText, kind)
}

func TestReferenceFieldSets(t *testing.T) {
	assert.Equal(t, []string{"descricao", "valor_m2"}, MustFieldSet(&ValuePlanEntry{}).Writable())
	assert.Equal(t, []string{"logradouro", "valor_m2"}, MustFieldSet(&StreetValueEntry{}).Writable())
	assert.Equal(t, []string{"tipo", "aliquota"}, MustFieldSet(&TaxRateEntry{}).Writable())
}

func TestParseReferenceVariant(t *testing.T) {
	v, ok := ParseReferenceVariant("streetValue")
	assert.True(t, ok)
	assert.Equal(t, VariantStreetValue, v)

	v, ok = ParseReferenceVariant("padroes")
	assert.True(t, ok)
	assert.Equal(t, VariantConstructionStandard, v)

	_, ok = ParseReferenceVariant("StreetValue")
	assert.False(t, ok)
}
