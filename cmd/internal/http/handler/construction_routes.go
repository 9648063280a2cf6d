package handler

import (
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ConstructionService interface {
	CreateConstruction(registrationID int, req *contract.ConstructionRequest) (*contract.SuccessResponse, apierror.ErrorResponse)
	GetConstructions(registrationID int) ([]*contract.ConstructionResponse, apierror.ErrorResponse)
	DeleteConstruction(id int) (*contract.SuccessResponse, apierror.ErrorResponse)
}

type DefaultConstructionRoute struct {
	ConstructionService ConstructionService
}

func NewConstructionDefault(constructionService ConstructionService) *DefaultConstructionRoute {
	return &DefaultConstructionRoute{ConstructionService: constructionService}
}

// CreateConstruction expects the parent registration id as :id.
func (r *DefaultConstructionRoute) CreateConstruction(c echo.Context) error {
	registrationID, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.ConstructionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.ConstructionService.CreateConstruction(registrationID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetConstructions expects the parent registration id as :id.
func (r *DefaultConstructionRoute) GetConstructions(c echo.Context) error {
	registrationID, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	constructions, apierr := r.ConstructionService.GetConstructions(registrationID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, constructions)
}

// DeleteConstruction expects the construction's own id as :id.
func (r *DefaultConstructionRoute) DeleteConstruction(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := r.ConstructionService.DeleteConstruction(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
