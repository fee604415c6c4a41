package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResp := ErrorResponse{Error: message}
	if validationErr != nil {
		errorResp.Details = make(map[string]string)
		for _, err := range validationErr.(validator.ValidationErrors) {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}

// SendServiceError maps a service sentinel error to its HTTP status and sends
// the JSON error envelope.
func SendServiceError(w http.ResponseWriter, err error) {
	SendErrorResponse(w, err.Error(), ServiceErrorStatus(err), nil)
}

// ServiceErrorStatus resolves the HTTP status for a service sentinel error.
func ServiceErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrBorrowerNotFound),
		errors.Is(err, ErrLoanNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBookUnavailable),
		errors.Is(err, ErrAlreadyReturned),
		errors.Is(err, ErrRenewalLimitReached),
		errors.Is(err, ErrLoanNotActive),
		errors.Is(err, ErrBookOnLoan):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
