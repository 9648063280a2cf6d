package repository

import (
	"errors"
	"reurb/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *DefaultRegistrationRepository {
	return &DefaultRegistrationRepository{db: db}
}

func (r *DefaultRegistrationRepository) FindAll() ([]*entity.Registration, error) {
	var regs []*entity.Registration
	err := r.db.Order("id").Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *DefaultRegistrationRepository) FindByID(id int) (*entity.Registration, error) {
	var reg entity.Registration
	err := r.db.First(&reg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *DefaultRegistrationRepository) Create(reg *entity.Registration) error {
	return r.db.Create(reg).Error
}

// CreateBatch inserts every registration in a single transaction. Nothing is
// kept if any insert fails.
func (r *DefaultRegistrationRepository) CreateBatch(regs []*entity.Registration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, reg := range regs {
			if err := tx.Create(reg).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update writes the given column values to one row. It reports false when the
// row does not exist.
func (r *DefaultRegistrationRepository) Update(id int, changes map[string]any) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reg entity.Registration
		err := tx.Select("id").First(&reg, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		found = true
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&reg).Updates(changes).Error
	})
	return found, err
}

// Delete removes the registration and all of its constructions. It reports
// false when the row does not exist.
func (r *DefaultRegistrationRepository) Delete(id int) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reg entity.Registration
		err := tx.Select("id").First(&reg, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		found = true
		if err = tx.Where("cadastro_id = ?", id).Delete(&entity.Construction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reg).Error
	})
	return found, err
}

func (r *DefaultRegistrationRepository) ExistsByID(id int) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Registration{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
