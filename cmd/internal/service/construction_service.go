package service

import (
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ConstructionRepository interface {
	FindByRegistrationID(registrationID int) ([]*entity.Construction, error)
	FindByID(id int) (*entity.Construction, error)
	Save(construction *entity.Construction) error
	Delete(construction *entity.Construction) error
}

// RegistrationChecker tells whether a parent registration exists.
type RegistrationChecker interface {
	ExistsByID(id int) (bool, error)
}

type ConstructionService struct {
	ConstructionRepo ConstructionRepository
	Registrations    RegistrationChecker
	Validate         *validator.Validate
}

func NewConstructionService(constructionRepo ConstructionRepository, registrations RegistrationChecker, validate *validator.Validate) *ConstructionService {
	return &ConstructionService{
		ConstructionRepo: constructionRepo,
		Registrations:    registrations,
		Validate:         validate,
	}
}

// CreateConstruction attaches a construction to an existing registration.
// Orphans are refused: the registration must exist.
func (c *ConstructionService) CreateConstruction(registrationID int, req *contract.ConstructionRequest) (*contract.SuccessResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := c.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	exists, err := c.Registrations.ExistsByID(registrationID)
	if err != nil {
		log.Errorf("failed to check registration %d: %v", registrationID, err)
		return nil, apierror.InternalServerError
	}

	if !exists {
		return nil, apierror.RegistrationNotFoundError
	}

	construction := &entity.Construction{
		RegistrationID: registrationID,
		TotalArea:      coerceNumeric(req.TotalArea),
		BuiltArea:      coerceNumeric(req.BuiltArea),
		Usage:          req.Usage,
		Standard:       req.Standard,
		Type:           req.Type,
	}

	if err = c.ConstructionRepo.Save(construction); err != nil {
		log.Errorf("failed to save construction for registration %d: %v", registrationID, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess("Construction saved successfully"), nil
}

func (c *ConstructionService) GetConstructions(registrationID int) ([]*contract.ConstructionResponse, apierror.ErrorResponse) {
	constructions, err := c.ConstructionRepo.FindByRegistrationID(registrationID)
	if err != nil {
		log.Errorf("failed to fetch constructions of registration %d: %v", registrationID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ConstructionResponse, len(constructions))
	for i, construction := range constructions {
		resp[i] = toConstructionResponse(construction)
	}
	return resp, nil
}

func (c *ConstructionService) DeleteConstruction(id int) (*contract.SuccessResponse, apierror.ErrorResponse) {
	construction, err := c.ConstructionRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch construction %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if construction == nil {
		return nil, apierror.ConstructionNotFoundError
	}

	if err = c.ConstructionRepo.Delete(construction); err != nil {
		log.Errorf("failed to delete construction %d: %v", id, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess("Construction deleted successfully"), nil
}

func toConstructionResponse(c *entity.Construction) *contract.ConstructionResponse {
	return &contract.ConstructionResponse{
		ID:        c.ID,
		TotalArea: c.TotalArea,
		BuiltArea: c.BuiltArea,
		Usage:     c.Usage,
		Standard:  c.Standard,
		Type:      c.Type,
	}
}
