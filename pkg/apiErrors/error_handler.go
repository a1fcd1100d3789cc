package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced to the dashboard frontend.
const (
	// Validation errors (VAL)
	ErrInvalidRequest = "VAL_001"
	ErrUnknownRegion  = "VAL_002"

	// Server errors (SRV)
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnknownRegion:   http.StatusNotFound,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusBadGateway,
}

// APIError is the standardized error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error body with the status mapped
// from the code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
