package apierror

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleErrorWireFormat(t *testing.T) {
	data, err := json.Marshal(RegistrationNotFoundError)
	require.NoError(t, err)

	assert.JSONEq(t, `{"success": false, "error": "Registration not found"}`, string(data))
	assert.Equal(t, http.StatusNotFound, RegistrationNotFoundError.Code())
}

func TestFromValidationError(t *testing.T) {
	type request struct {
		Login string  `validate:"required"`
		Rate  float64 `validate:"gte=0"`
	}

	err := validator.New().Struct(&request{Rate: -1})
	structured := FromValidationError(err)
	require.NotNil(t, structured)

	assert.Equal(t, http.StatusBadRequest, structured.Code())
	assert.Equal(t, []string{"This field is required"}, structured.Errors["login"])
	assert.Equal(t, []string{"Value must be greater than or equal to 0"}, structured.Errors["rate"])

	data, err := json.Marshal(structured)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"success":false`)
}

func TestFromValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FromValidationError(assert.AnError))
}
