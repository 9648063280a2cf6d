package service

import (
	"fmt"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/domain/valuation"
	"reurb/cmd/internal/metrics"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type RegistrationRepository interface {
	FindAll() ([]*entity.Registration, error)
	FindByID(id int) (*entity.Registration, error)
	Create(reg *entity.Registration) error
	CreateBatch(regs []*entity.Registration) error
	Update(id int, changes map[string]any) (bool, error)
	Delete(id int) (bool, error)
	ExistsByID(id int) (bool, error)
}

// ReferenceLister is the read side of a reference table repository.
type ReferenceLister[T any] interface {
	FindAll() ([]*T, error)
}

type RegistrationService struct {
	RegRepo   RegistrationRepository
	Streets   ReferenceLister[entity.StreetValueEntry]
	Standards ReferenceLister[entity.ConstructionStandardEntry]
	TaxRates  ReferenceLister[entity.TaxRateEntry]
	Fields    *entity.FieldSet
	Metrics   *metrics.Metrics
}

func NewRegistrationService(
	regRepo RegistrationRepository,
	streets ReferenceLister[entity.StreetValueEntry],
	standards ReferenceLister[entity.ConstructionStandardEntry],
	taxRates ReferenceLister[entity.TaxRateEntry],
	fields *entity.FieldSet,
	m *metrics.Metrics,
) *RegistrationService {
	return &RegistrationService{
		RegRepo:   regRepo,
		Streets:   streets,
		Standards: standards,
		TaxRates:  taxRates,
		Fields:    fields,
		Metrics:   m,
	}
}

func (r *RegistrationService) CreateRegistration(raw map[string]any) (*contract.RegistrationCreatedResponse, apierror.ErrorResponse) {
	reg, err := registrationFromFields(normalizeFields(r.Fields, raw))
	if err != nil {
		log.Errorf("failed to build registration: %v", err)
		return nil, apierror.MalformedBodyError
	}

	if err = r.RegRepo.Create(reg); err != nil {
		log.Errorf("failed to create registration: %v", err)
		return nil, apierror.NewPersistenceError(err)
	}

	return &contract.RegistrationCreatedResponse{
		Success: true,
		Message: "REURB registration saved successfully",
		ID:      reg.ID,
	}, nil
}

func (r *RegistrationService) GetRegistration(id int) (*entity.Registration, apierror.ErrorResponse) {
	reg, err := r.RegRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch registration %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if reg == nil {
		return nil, apierror.RegistrationNotFoundError
	}
	return reg, nil
}

// UpdateRegistration applies a partial update. Only the supplied writable
// columns change, and they change together or not at all.
func (r *RegistrationService) UpdateRegistration(id int, raw map[string]any) (*contract.SuccessResponse, apierror.ErrorResponse) {
	changes := normalizeFields(r.Fields, raw)

	found, err := r.RegRepo.Update(id, changes)
	if err != nil {
		log.Errorf("failed to update registration %d: %v", id, err)
		return nil, apierror.NewPersistenceError(err)
	}

	if !found {
		return nil, apierror.RegistrationNotFoundError
	}
	return contract.NewSuccess("Registration updated successfully"), nil
}

func (r *RegistrationService) DeleteRegistration(id int) (*contract.SuccessResponse, apierror.ErrorResponse) {
	found, err := r.RegRepo.Delete(id)
	if err != nil {
		log.Errorf("failed to delete registration %d: %v", id, err)
		return nil, apierror.NewPersistenceError(err)
	}

	if !found {
		return nil, apierror.RegistrationNotFoundError
	}
	return contract.NewSuccess("Registration deleted successfully"), nil
}

// ListRegistrations returns every registration with its valuation. The
// reference tables are read once for the whole listing.
func (r *RegistrationService) ListRegistrations() ([]*contract.RegistrationSummary, apierror.ErrorResponse) {
	regs, err := r.RegRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch registrations: %v", err)
		return nil, apierror.InternalServerError
	}

	tables := r.loadTables()
	resp := make([]*contract.RegistrationSummary, len(regs))
	for i, reg := range regs {
		resp[i] = toRegistrationSummary(reg, tables.Appraise(reg))
	}
	return resp, nil
}

// loadTables snapshots the reference tables. A table that fails to load is
// logged and left empty: its term is valued at zero instead of failing the
// whole listing.
func (r *RegistrationService) loadTables() *valuation.Tables {
	streets, err := r.Streets.FindAll()
	if err != nil {
		r.referenceFailure(entity.StreetValueEntry{}.TableName(), err)
		streets = nil
	}

	standards, err := r.Standards.FindAll()
	if err != nil {
		r.referenceFailure(entity.ConstructionStandardEntry{}.TableName(), err)
		standards = nil
	}

	rates, err := r.TaxRates.FindAll()
	if err != nil {
		r.referenceFailure(entity.TaxRateEntry{}.TableName(), err)
		rates = nil
	}
	return valuation.NewTables(streets, standards, rates)
}

func (r *RegistrationService) referenceFailure(table string, err error) {
	log.Errorf("failed to load %s for valuation, its values default to zero: %v", table, err)
	r.Metrics.IncrementReferenceFailure(table)
}

func toRegistrationSummary(reg *entity.Registration, a valuation.Appraisal) *contract.RegistrationSummary {
	return &contract.RegistrationSummary{
		ID:                   reg.ID,
		Name:                 reg.ApplicantName,
		CPF:                  reg.ApplicantCPF,
		RG:                   reg.ApplicantRG,
		Phone:                reg.ApplicantPhone,
		Email:                reg.ApplicantEmail,
		Address:              formatAddress(reg),
		PropertyRegistration: reg.PropertyRegistration,
		TotalArea:            reg.TotalArea,
		BuiltArea:            reg.BuiltArea,
		FamilyIncome:         reg.MonthlyFamilyIncome,
		LandValue:            a.LandValue,
		ConstructionValue:    a.ConstructionValue,
		TotalValue:           a.TotalValue,
		EstimatedTax:         a.EstimatedTax,
		ReurbCategory:        string(a.Category),
	}
}

// formatAddress renders "{street}, {number}"; absent parts are left blank.
func formatAddress(reg *entity.Registration) string {
	return fmt.Sprintf("%s, %s", stringOrEmpty(reg.PropertyStreet), stringOrEmpty(reg.PropertyNumber))
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
