package policy

import (
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/utils/apierror"
)

// UserPolicy encapsulates all business rules for account manipulation.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// CanManageUsers checks if an actor with 'role' may list, create, update or delete accounts.
func (p *UserPolicy) CanManageUsers(role entity.Role) apierror.ErrorResponse {
	if role != entity.RoleAdministrator {
		return forbiddenError("only administrators can manage users")
	}
	return nil
}

// CanUpdateRole checks if 'actorID' can set 'target' role to 'newRole'.
func (p *UserPolicy) CanUpdateRole(actorID int, target *entity.User, newRole entity.Role) apierror.ErrorResponse {
	// Self-demotion guard
	if actorID == target.ID && target.IsAdministrator() && newRole != entity.RoleAdministrator {
		return forbiddenError("administrators cannot revoke their own role")
	}
	return nil
}

// CanDeleteUser checks if 'actorID' can delete 'target'.
func (p *UserPolicy) CanDeleteUser(actorID int, target *entity.User) apierror.ErrorResponse {
	if actorID == target.ID {
		return forbiddenError("users cannot delete their own account")
	}
	return nil
}

func forbiddenError(msg string) *apierror.APIError {
	return apierror.NewForbiddenError(msg)
}
