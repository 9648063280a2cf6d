package handler

import (
	"io"
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ReferenceService interface {
	ListEntries(variant string) ([]any, apierror.ErrorResponse)
	CreateEntry(variant string, body []byte) (*contract.SuccessResponse, apierror.ErrorResponse)
	DeleteEntry(variant string, id int) (*contract.SuccessResponse, apierror.ErrorResponse)
}

type DefaultReferenceRoute struct {
	ReferenceService ReferenceService
}

func NewReferenceDefault(referenceService ReferenceService) *DefaultReferenceRoute {
	return &DefaultReferenceRoute{ReferenceService: referenceService}
}

func (r *DefaultReferenceRoute) ListEntries(c echo.Context) error {
	entries, apierr := r.ReferenceService.ListEntries(c.Param("variant"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entries)
}

func (r *DefaultReferenceRoute) CreateEntry(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.ReferenceService.CreateEntry(c.Param("variant"), body)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (r *DefaultReferenceRoute) DeleteEntry(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := r.ReferenceService.DeleteEntry(c.Param("variant"), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
