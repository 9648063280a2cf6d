package repository

import (
	"errors"
	"reurb/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultConstructionRepository struct {
	db *gorm.DB
}

func NewConstructionRepository(db *gorm.DB) *DefaultConstructionRepository {
	return &DefaultConstructionRepository{db: db}
}

func (c *DefaultConstructionRepository) FindByRegistrationID(registrationID int) ([]*entity.Construction, error) {
	var constructions []*entity.Construction
	err := c.db.
		Where("cadastro_id = ?", registrationID).
		Order("id").
		Find(&constructions).Error
	if err != nil {
		return nil, err
	}
	return constructions, nil
}

func (c *DefaultConstructionRepository) FindByID(id int) (*entity.Construction, error) {
	var construction entity.Construction
	err := c.db.First(&construction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &construction, nil
}

func (c *DefaultConstructionRepository) Save(construction *entity.Construction) error {
	return c.db.Save(construction).Error
}

func (c *DefaultConstructionRepository) Delete(construction *entity.Construction) error {
	return c.db.Delete(construction).Error
}
