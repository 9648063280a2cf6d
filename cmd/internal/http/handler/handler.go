package handler

import (
	"encoding/json"
	"errors"
	"io"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context) (int, apierror.ErrorResponse) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}

// bindFields decodes a JSON object body as loosely typed fields. Path
// parameters are not mixed in, unlike echo's Bind on maps. An empty body
// yields an empty map.
func bindFields(c echo.Context) (map[string]any, error) {
	var raw map[string]any
	err := json.NewDecoder(c.Request().Body).Decode(&raw)
	if errors.Is(err, io.EOF) {
		return map[string]any{}, nil
	}

	if err != nil {
		return nil, err
	}

	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
