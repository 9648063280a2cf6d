package policy

import (
	"net/http"
	"reurb/cmd/internal/domain/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanManageUsers(t *testing.T) {
	p := NewUserPolicy()

	assert.Nil(t, p.CanManageUsers(entity.RoleAdministrator))

	err := p.CanManageUsers(entity.RoleUser)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusForbidden, err.Code())
	}
}

func TestCanUpdateRole(t *testing.T) {
	p := NewUserPolicy()
	admin := &entity.User{ID: 1, Role: entity.RoleAdministrator}
	user := &entity.User{ID: 2, Role: entity.RoleUser}

	assert.NotNil(t, p.CanUpdateRole(1, admin, entity.RoleUser))
	assert.Nil(t, p.CanUpdateRole(1, admin, entity.RoleAdministrator))
	assert.Nil(t, p.CanUpdateRole(1, user, entity.RoleAdministrator))
	assert.Nil(t, p.CanUpdateRole(3, admin, entity.RoleUser))
}

func TestCanDeleteUser(t *testing.T) {
	p := NewUserPolicy()
	target := &entity.User{ID: 2}

	assert.NotNil(t, p.CanDeleteUser(2, target))
	assert.Nil(t, p.CanDeleteUser(1, target))
}
