package handler

import (
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type RegistrationService interface {
	CreateRegistration(raw map[string]any) (*contract.RegistrationCreatedResponse, apierror.ErrorResponse)
	GetRegistration(id int) (*entity.Registration, apierror.ErrorResponse)
	UpdateRegistration(id int, raw map[string]any) (*contract.SuccessResponse, apierror.ErrorResponse)
	DeleteRegistration(id int) (*contract.SuccessResponse, apierror.ErrorResponse)
	ListRegistrations() ([]*contract.RegistrationSummary, apierror.ErrorResponse)
}

type DefaultRegistrationRoute struct {
	RegistrationService RegistrationService
}

func NewRegistrationDefault(registrationService RegistrationService) *DefaultRegistrationRoute {
	return &DefaultRegistrationRoute{RegistrationService: registrationService}
}

func (r *DefaultRegistrationRoute) CreateRegistration(c echo.Context) error {
	raw, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.RegistrationService.CreateRegistration(raw)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (r *DefaultRegistrationRoute) GetRegistration(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	reg, apierr := r.RegistrationService.GetRegistration(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reg)
}

func (r *DefaultRegistrationRoute) UpdateRegistration(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	raw, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.RegistrationService.UpdateRegistration(id, raw)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *DefaultRegistrationRoute) DeleteRegistration(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := r.RegistrationService.DeleteRegistration(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *DefaultRegistrationRoute) ListRegistrations(c echo.Context) error {
	regs, apierr := r.RegistrationService.ListRegistrations()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, regs)
}
