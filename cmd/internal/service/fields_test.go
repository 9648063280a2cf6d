package service

import (
	"math"
	"reurb/cmd/internal/domain/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"blank string", "   ", nil},
		{"unparsable", "abc", nil},
		{"decimal comma", "10,5", nil},
		{"negative", -1.0, nil},
		{"nan", math.NaN(), nil},
		{"bool", true, nil},
		{"json number", 12.5, ptr(12.5)},
		{"numeric string", " 250.75 ", ptr(250.75)},
		{"int", 3, ptr(3)},
		{"zero", "0", ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceNumeric(tt.input))
		})
	}
}

func TestCoerceText(t *testing.T) {
	v, ok := coerceText(123.0)
	assert.True(t, ok)
	assert.Equal(t, "123", v)

	v, ok = coerceText(nil)
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = coerceText(map[string]any{"a": 1})
	assert.False(t, ok)
}

func TestNormalizeFieldsDropsUnknownAndID(t *testing.T) {
	fields := entity.MustFieldSet(&entity.Registration{})

	out := normalizeFields(fields, map[string]any{
		"id":                     99.0,
		"unknown":                "x",
		"req_nome":               "Ana",
		"imovel_area_total":      "",
		"reurb_renda_familiar":   "4000",
		"imovel_area_construida": "n/a",
		"imovel_numero":          42.0,
	})

	assert.Equal(t, map[string]any{
		"req_nome":               "Ana",
		"imovel_area_total":      nil,
		"reurb_renda_familiar":   4000.0,
		"imovel_area_construida": nil,
		"imovel_numero":          "42",
	}, out)
}

func TestRegistrationFromFields(t *testing.T) {
	reg, err := registrationFromFields(map[string]any{
		"req_nome":          "Ana",
		"imovel_area_total": 100.0,
		"imovel_logradouro": "Rua A",
		"imovel_uso":        nil,
	})
	require.NoError(t, err)

	require.NotNil(t, reg.ApplicantName)
	assert.Equal(t, "Ana", *reg.ApplicantName)
	require.NotNil(t, reg.TotalArea)
	assert.Equal(t, 100.0, *reg.TotalArea)
	assert.Nil(t, reg.Usage)
	assert.Zero(t, reg.ID)
}

func ptr(f float64) *float64 {
	return &f
}
