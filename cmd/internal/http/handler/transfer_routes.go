package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TransferService interface {
	ImportFile(ctx context.Context, fileHeader *multipart.FileHeader) (*contract.ImportResponse, apierror.ErrorResponse)
	ExportFile(req *contract.ExportRequest) (*bytes.Buffer, apierror.ErrorResponse)
}

type DefaultTransferRoute struct {
	TransferService TransferService
}

func NewTransferDefault(transferService TransferService) *DefaultTransferRoute {
	return &DefaultTransferRoute{TransferService: transferService}
}

func (t *DefaultTransferRoute) ImportFile(c echo.Context) error {
	fileHeader, err := c.FormFile(contract.ImportFormField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingFileError)
	}

	resp, apierr := t.TransferService.ImportFile(c.Request().Context(), fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (t *DefaultTransferRoute) ExportFile(c echo.Context) error {
	var req contract.ExportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	buf, apierr := t.TransferService.ExportFile(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+contract.ExportFileName+`"`)
	return c.Blob(http.StatusOK, contract.XLSXMimeType, buf.Bytes())
}
