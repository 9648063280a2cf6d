package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ReferenceRepository[T any] interface {
	FindAll() ([]*T, error)
	FindByID(id int) (*T, error)
	Save(entry *T) error
	Delete(entry *T) error
}

// referenceTable is the create/list/delete contract every variant exposes.
type referenceTable interface {
	List() ([]any, apierror.ErrorResponse)
	Create(body []byte) (*contract.SuccessResponse, apierror.ErrorResponse)
	Delete(id int) (*contract.SuccessResponse, apierror.ErrorResponse)
}

type ReferenceService struct {
	tables map[entity.ReferenceVariant]referenceTable
}

func NewReferenceService(
	valuePlans ReferenceRepository[entity.ValuePlanEntry],
	standards ReferenceRepository[entity.ConstructionStandardEntry],
	streets ReferenceRepository[entity.StreetValueEntry],
	taxRates ReferenceRepository[entity.TaxRateEntry],
	validate *validator.Validate,
) *ReferenceService {
	return &ReferenceService{
		tables: map[entity.ReferenceVariant]referenceTable{
			entity.VariantValuePlan:            newReferenceTable(entity.VariantValuePlan, valuePlans, validate),
			entity.VariantConstructionStandard: newReferenceTable(entity.VariantConstructionStandard, standards, validate),
			entity.VariantStreetValue:          newReferenceTable(entity.VariantStreetValue, streets, validate),
			entity.VariantTaxRate:              newReferenceTable(entity.VariantTaxRate, taxRates, validate),
		},
	}
}

func (r *ReferenceService) ListEntries(variant string) ([]any, apierror.ErrorResponse) {
	table, apierr := r.table(variant)
	if apierr != nil {
		return nil, apierr
	}
	return table.List()
}

func (r *ReferenceService) CreateEntry(variant string, body []byte) (*contract.SuccessResponse, apierror.ErrorResponse) {
	table, apierr := r.table(variant)
	if apierr != nil {
		return nil, apierr
	}
	return table.Create(body)
}

func (r *ReferenceService) DeleteEntry(variant string, id int) (*contract.SuccessResponse, apierror.ErrorResponse) {
	table, apierr := r.table(variant)
	if apierr != nil {
		return nil, apierr
	}
	return table.Delete(id)
}

func (r *ReferenceService) table(variant string) (referenceTable, apierror.ErrorResponse) {
	v, ok := entity.ParseReferenceVariant(variant)
	if !ok {
		return nil, apierror.InvalidReferenceError
	}
	return r.tables[v], nil
}

type genericReferenceTable[T entity.ReferenceEntry] struct {
	variant  entity.ReferenceVariant
	repo     ReferenceRepository[T]
	fields   *entity.FieldSet
	validate *validator.Validate
}

func newReferenceTable[T entity.ReferenceEntry](variant entity.ReferenceVariant, repo ReferenceRepository[T], validate *validator.Validate) *genericReferenceTable[T] {
	return &genericReferenceTable[T]{
		variant:  variant,
		repo:     repo,
		fields:   entity.MustFieldSet(new(T)),
		validate: validate,
	}
}

func (g *genericReferenceTable[T]) List() ([]any, apierror.ErrorResponse) {
	entries, err := g.repo.FindAll()
	if err != nil {
		log.Errorf("failed to list %s entries: %v", g.variant, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]any, len(entries))
	for i, entry := range entries {
		resp[i] = entry
	}
	return resp, nil
}

// Create stores a new entry. The body must carry exactly the variant's
// fields: a missing, null or unknown key is rejected before anything is written.
func (g *genericReferenceTable[T]) Create(body []byte) (*contract.SuccessResponse, apierror.ErrorResponse) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apierror.MalformedBodyError
	}

	if problems := g.checkKeys(raw); !problems.Empty() {
		return nil, problems
	}

	var entry T
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entry); err != nil {
		return nil, apierror.MalformedBodyError
	}

	utils.Sanitize(&entry)
	if err := g.validate.Struct(&entry); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if err := g.repo.Save(&entry); err != nil {
		log.Errorf("failed to save %s entry: %v", g.variant, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess(fmt.Sprintf("%s entry saved successfully", g.variant)), nil
}

func (g *genericReferenceTable[T]) Delete(id int) (*contract.SuccessResponse, apierror.ErrorResponse) {
	entry, err := g.repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch %s entry %d: %v", g.variant, id, err)
		return nil, apierror.InternalServerError
	}

	if entry == nil {
		return nil, apierror.ReferenceNotFoundError
	}

	if err = g.repo.Delete(entry); err != nil {
		log.Errorf("failed to delete %s entry %d: %v", g.variant, id, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess(fmt.Sprintf("%s entry deleted successfully", g.variant)), nil
}

func (g *genericReferenceTable[T]) checkKeys(raw map[string]json.RawMessage) *apierror.StructuredError {
	problems := apierror.NewStructured(400)
	for _, column := range g.fields.Writable() {
		value, ok := raw[column]
		if !ok {
			problems.Add(column, "This field is required")
			continue
		}

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			problems.Add(column, "This field cannot be null")
		}
	}

	for key := range raw {
		if _, ok := g.fields.Kind(key); !ok {
			problems.Add(key, "Unknown field")
		}
	}
	return problems
}
