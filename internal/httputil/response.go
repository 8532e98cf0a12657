package httputil

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
)

// Machine-readable codes that are not produced by a service
const (
	CodeInvalidRequestBody = "invalid_request_body"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the body of operations that only report success
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondText sends a plain-text response
func RespondText(w http.ResponseWriter, body string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// RespondError sends a JSON error response with the given message and status code.
func RespondError(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// RespondErrorWithCode sends a JSON error response with a machine-readable error code.
func RespondErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message, Code: code}, statusCode)
}

// RespondAppError maps a service error onto a status code and writes it.
// Server errors never expose their cause.
func RespondAppError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	RespondErrorWithCode(w, appErr.Message, appErr.Code, StatusFor(appErr.Kind))
}

// StatusFor returns the HTTP status for an error kind.
// Not-found, auth and conflict failures are reported as 400 for client compatibility.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindNotFound, apperror.KindAuth, apperror.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
