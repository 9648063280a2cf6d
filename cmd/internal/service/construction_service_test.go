package service

import (
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/database/repository"
	"reurb/cmd/internal/utils/validators"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConstructionFixture(t *testing.T) (*ConstructionService, *RegistrationService) {
	f := newRegistryFixture(t)
	svc := NewConstructionService(repository.NewConstructionRepository(f.db), f.regs, validators.New())
	return svc, f.service
}

func TestCreateConstructionRequiresParent(t *testing.T) {
	svc, _ := newConstructionFixture(t)

	_, apierr := svc.CreateConstruction(42, &contract.ConstructionRequest{TotalArea: 10})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestConstructionLifecycle(t *testing.T) {
	svc, regs := newConstructionFixture(t)
	parent, apierr := regs.CreateRegistration(map[string]any{"req_nome": "Ana"})
	require.Nil(t, apierr)

	usage := "  Residencial "
	_, apierr = svc.CreateConstruction(parent.ID, &contract.ConstructionRequest{
		TotalArea: "120.5",
		BuiltArea: "n/a",
		Usage:     &usage,
	})
	require.Nil(t, apierr)

	list, apierr := svc.GetConstructions(parent.ID)
	require.Nil(t, apierr)
	require.Len(t, list, 1)
	assert.Equal(t, 120.5, *list[0].TotalArea)
	assert.Nil(t, list[0].BuiltArea)
	assert.Equal(t, "Residencial", *list[0].Usage)

	_, apierr = svc.DeleteConstruction(list[0].ID)
	require.Nil(t, apierr)

	_, apierr = svc.DeleteConstruction(list[0].ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestGetConstructionsOfUnknownParentIsEmpty(t *testing.T) {
	svc, _ := newConstructionFixture(t)

	list, apierr := svc.GetConstructions(5)
	require.Nil(t, apierr)
	assert.Empty(t, list)
}
