package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"reurb/cmd/internal/utils/apierror"
)

const ContextKeyClaims = "claims"

func GetClaimsFromContext(c echo.Context) (*TokenData, apierror.ErrorResponse) {
	val := c.Get(ContextKeyClaims)
	if val == nil {
		log.Warnf("route %s attempted to read nil claims from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	claims, ok := val.(*TokenData)
	if !ok {
		log.Warnf("expected token data at '%s' context key, got %T", ContextKeyClaims, val)
		return nil, apierror.InternalServerError
	}
	return claims, nil
}
