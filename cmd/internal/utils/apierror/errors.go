package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	RegistrationNotFoundError = NewSimple(404, "Registration not found")
	ConstructionNotFoundError = NewSimple(404, "Construction not found")
	ReferenceNotFoundError    = NewSimple(404, "Reference entry not found")
	UserNotFoundError         = NewSimple(404, "User not found")
	InvalidIDError            = NewSimple(400, "The provided ID is invalid, IDs are usually int32 > 0")
	InvalidReferenceError     = NewSimple(400, "Invalid reference table, expected one of: valuePlan, constructionStandard, streetValue, taxRate")

	/*
	 * Bulk transfer
	 */
	MissingFileError           = NewSimple(400, "No file uploaded")
	MissingFileNameError       = NewSimple(400, "No file selected")
	UnsupportedFileFormatError = NewSimple(400, "Unsupported file format, use .xlsx or .csv")
	EmptyExportError           = NewSimple(400, "There is no data to export")

	/*
	 * Used for authentications
	 */
	InvalidCredentialsError = NewSimple(401, "Invalid login or password")
	UnauthorizedError       = NewSimple(401, "Missing or invalid authentication token")
	LoginTakenError         = NewSimple(409, "Login is already in use")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gte":
			problems[field] = append(problems[field], "Value must be greater than or equal to "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "nospaces":
			problems[field] = append(problems[field], "Value cannot contain whitespaces")
		case "nodupes":
			problems[field] = append(problems[field], "Value cannot contain duplicates")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewForbiddenError(msg string) *APIError {
	return NewSimple(http.StatusForbidden, "Forbidden: %s", msg)
}

// NewPersistenceError reports a write the storage engine rejected. The
// transaction has already been rolled back when this is returned.
func NewPersistenceError(err error) *APIError {
	return NewSimple(http.StatusInternalServerError, "Failed to persist changes: %v", err)
}

func NewImportError(err error) *APIError {
	return NewSimple(http.StatusBadRequest, "An error occurred while processing the file: %v", err)
}
