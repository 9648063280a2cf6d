package handler

import (
	"reurb/cmd/internal/contract"

	"github.com/labstack/echo/v4"
)

type HealthService interface {
	Check() (*contract.HealthResponse, int)
}

type DefaultUtilRoute struct {
	HealthService HealthService
}

func NewUtilRoute(healthService HealthService) *DefaultUtilRoute {
	return &DefaultUtilRoute{HealthService: healthService}
}

func (u *DefaultUtilRoute) HealthCheck(c echo.Context) error {
	resp, status := u.HealthService.Check()
	return c.JSON(status, resp)
}
