package service

import (
	"encoding/json"
	"math"
	"reurb/cmd/internal/domain/entity"
	"strconv"
	"strings"
)

// normalizeFields keeps only the writable columns of fields and coerces every
// value to its storage type. The result can be handed to gorm Updates or
// decoded into the entity.
//
// Numeric columns become float64 or nil: empty strings, unparsable strings,
// negative or non-finite numbers all end up as nil. Text columns become string
// or nil; values that cannot be represented as text are dropped.
func normalizeFields(fields *entity.FieldSet, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		kind, ok := fields.Kind(key)
		if !ok {
			continue
		}

		switch kind {
		case entity.FieldNumeric:
			if f := coerceNumeric(value); f != nil {
				out[key] = *f
			} else {
				out[key] = nil
			}

		case entity.FieldText:
			if s, ok := coerceText(value); ok {
				out[key] = s
			}
		}
	}
	return out
}

// coerceNumeric converts a loosely typed input into a non-negative number.
// It returns nil for anything else.
func coerceNumeric(value any) *float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}

		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}

// coerceText converts a JSON scalar into its text form. nil is kept as an
// explicit null. ok is false for objects and arrays.
func coerceText(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return nil, false
	}
}

// registrationFromFields builds a Registration out of normalized fields. The
// map keys are the entity's json names, so decoding does the mapping.
func registrationFromFields(values map[string]any) (*entity.Registration, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	var reg entity.Registration
	if err = json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// registrationColumns flattens a Registration into column -> value. Null
// columns map to nil.
func registrationColumns(reg *entity.Registration) (map[string]any, error) {
	data, err := json.Marshal(reg)
	if err != nil {
		return nil, err
	}

	var values map[string]any
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
