package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a marshal failure never writes a
	// half-finished body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgSessionNotFoundError      = "Shopping session not found"
	ErrMsgSessionAlreadyActiveError = "You already have an active shopping session"
	ErrMsgSessionNotActiveError     = "Shopping session is already closed"
	ErrMsgAlreadyCheckedError       = "Ingredient is already checked off"
	ErrMsgNoCheckPermissionError    = "You cannot check ingredients in this session"
	ErrMsgNotSessionOwnerError      = "Only the session owner can do that"
	ErrMsgIngredientNotFoundError   = "Ingredient not found"
	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgInvalidInputError         = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Not-found maps to 404, business rule violations to 409,
// ownership failures to 403, validation to 400; everything else is a 500
// with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Not found
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrMsgIngredientNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError

	// Business rule violations
	case errors.Is(err, domain.ErrSessionAlreadyActive):
		return http.StatusConflict, ErrMsgSessionAlreadyActiveError
	case errors.Is(err, domain.ErrSessionNotActive):
		return http.StatusConflict, ErrMsgSessionNotActiveError
	case errors.Is(err, domain.ErrAlreadyChecked):
		return http.StatusConflict, ErrMsgAlreadyCheckedError
	case errors.Is(err, domain.ErrNoCheckPermission):
		return http.StatusConflict, ErrMsgNoCheckPermissionError

	// Forbidden
	case errors.Is(err, domain.ErrNotSessionOwner):
		return http.StatusForbidden, ErrMsgNotSessionOwnerError

	// Validation
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the real error and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	logger.FromContext(r.Context()).Error(logMsg, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
