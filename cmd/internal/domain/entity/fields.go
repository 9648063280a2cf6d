package entity

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumeric
)

// FieldSet is the static allowlist of columns a client may write on an entity.
// It is parsed once from the gorm schema, so requests never reflect over models.
type FieldSet struct {
	columns  []string
	writable []string
	kinds    map[string]FieldKind
}

func NewFieldSet(model any) (*FieldSet, error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema of %T: %w", model, err)
	}

	fs := &FieldSet{kinds: make(map[string]FieldKind)}
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}

		fs.columns = append(fs.columns, field.DBName)
		if field.PrimaryKey {
			continue
		}

		kind := FieldText
		if field.DataType == schema.Float || field.DataType == schema.Int || field.DataType == schema.Uint {
			kind = FieldNumeric
		}
		fs.kinds[field.DBName] = kind
		fs.writable = append(fs.writable, field.DBName)
	}
	return fs, nil
}

// MustFieldSet is NewFieldSet for package-level and startup wiring.
func MustFieldSet(model any) *FieldSet {
	fs, err := NewFieldSet(model)
	if err != nil {
		panic(err)
	}
	return fs
}

// Columns returns every column in declaration order, primary key included.
func (f *FieldSet) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Writable returns the columns a client may set, in declaration order.
func (f *FieldSet) Writable() []string {
	return append([]string(nil), f.writable...)
}

// Kind reports how a writable column is coerced. ok is false for unknown
// columns and for the primary key.
func (f *FieldSet) Kind(column string) (FieldKind, bool) {
	kind, ok := f.kinds[column]
	return kind, ok
}
