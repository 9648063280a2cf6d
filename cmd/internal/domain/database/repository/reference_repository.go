package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ReferenceRepository is the storage for every pricing reference table. T is
// the row type, e.g. entity.StreetValueEntry.
type ReferenceRepository[T any] struct {
	db *gorm.DB
}

func NewReferenceRepository[T any](db *gorm.DB) *ReferenceRepository[T] {
	return &ReferenceRepository[T]{db: db}
}

// FindAll returns the rows in insertion order, which is also the order used
// to break ties when several rows match a lookup.
func (r *ReferenceRepository[T]) FindAll() ([]*T, error) {
	var entries []*T
	err := r.db.Order("id").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ReferenceRepository[T]) FindByID(id int) (*T, error) {
	var entry T
	err := r.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ReferenceRepository[T]) Save(entry *T) error {
	return r.db.Save(entry).Error
}

func (r *ReferenceRepository[T]) Delete(entry *T) error {
	return r.db.Delete(entry).Error
}
