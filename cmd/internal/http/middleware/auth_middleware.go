package middleware

import (
	"net/http"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/domain/policy"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type TokenValidator interface {
	ValidateToken(token string) (*utils.TokenData, error)
}

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	Tokens   TokenValidator
	UserRepo UserRepository
}

// NewAuthMiddleware creates the handler with dependencies injected.
// The claims stored in the context carry the account as it is in the
// database, not as it was when the token was signed.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := cfg.Tokens.ValidateToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			user, err := cfg.UserRepo.FindByID(tokenData.UserID)
			if err != nil {
				log.Errorf("failed to load user %d for token: %v", tokenData.UserID, err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Deleted account with a token that has not expired yet
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			tokenData.Login = user.LoginName
			tokenData.Role = user.Role
			c.Set(utils.ContextKeyClaims, tokenData)
			return next(c)
		}
	}
}

// NewUserManagerMiddleware only lets through accounts whose role may manage
// accounts. It must run after NewAuthMiddleware.
func NewUserManagerMiddleware(userPolicy *policy.UserPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, cerr := utils.GetClaimsFromContext(c)
			if cerr != nil {
				return c.JSON(cerr.Code(), cerr)
			}

			if perr := userPolicy.CanManageUsers(claims.Role); perr != nil {
				return c.JSON(perr.Code(), perr)
			}
			return next(c)
		}
	}
}
