package repository

import (
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceRepositoryOrdersByID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewReferenceRepository[entity.TaxRateEntry](db)

	for _, label := range []string{"Residencial", "Comercial", "Industrial"} {
		require.NoError(t, repo.Save(&entity.TaxRateEntry{UsageLabel: label, RatePercent: 1}))
	}

	entries, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Residencial", entries[0].UsageLabel)
	assert.Equal(t, "Industrial", entries[2].UsageLabel)

	require.NoError(t, repo.Delete(entries[1]))
	missing, err := repo.FindByID(entries[1].ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryExistsByLogin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{Name: "Maria", LoginName: "maria", PasswordHash: "x", Role: entity.RoleUser}
	require.NoError(t, repo.Save(user))

	taken, err := repo.ExistsByLogin("maria", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByLogin("maria", user.ID)
	require.NoError(t, err)
	assert.False(t, taken, "an account does not conflict with itself")

	found, err := repo.FindByLogin("maria")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
}
