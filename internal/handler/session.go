package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/shopping"
)

// StartSessionRequest is the payload for starting a shopping session
type StartSessionRequest struct {
	UserID     string           `json:"user_id" validate:"required"`
	DeviceType string           `json:"device_type" validate:"devicetype"`
	Location   *domain.Location `json:"location,omitempty"`
}

// HandleStartSession starts a new shopping session for a user
func HandleStartSession(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start session"); err != nil {
			return
		}

		session, err := service.StartSession(r.Context(), req.UserID, req.DeviceType, req.Location)
		if err != nil {
			respondServiceError(w, r, ErrMsgStartSessionFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, session)
	}
}

// CheckIngredientRequest is the payload for checking off an ingredient
type CheckIngredientRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	IngredientID string `json:"ingredient_id" validate:"required,uuid"`
}

// HandleCheckIngredient records one ingredient inspection in a session
func HandleCheckIngredient(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "id")

		var req CheckIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Check ingredient"); err != nil {
			return
		}

		session, err := service.CheckIngredient(r.Context(), sessionID, req.UserID, req.IngredientID)
		if err != nil {
			respondServiceError(w, r, ErrMsgCheckIngredientFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// CloseSessionRequest is the payload for completing or abandoning a session
type CloseSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

// HandleCompleteSession closes a session as finished
func HandleCompleteSession(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "id")

		var req CloseSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete session"); err != nil {
			return
		}

		session, err := service.CompleteSession(r.Context(), sessionID, req.UserID)
		if err != nil {
			respondServiceError(w, r, ErrMsgCompleteSessionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// HandleAbandonSession closes a session without finishing the trip
func HandleAbandonSession(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "id")

		var req CloseSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Abandon session"); err != nil {
			return
		}

		session, err := service.AbandonSession(r.Context(), sessionID, req.UserID, req.Reason)
		if err != nil {
			respondServiceError(w, r, ErrMsgAbandonSessionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// HandleGetSession returns one session for its owner
func HandleGetSession(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "id")
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		session, err := service.GetSession(r.Context(), sessionID, userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// HandleGetActiveSession returns the user's current ACTIVE session
func HandleGetActiveSession(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		session, err := service.GetActiveSession(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, session)
	}
}

// HandleListSessions returns the user's session history
func HandleListSessions(service shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		sessions, err := service.ListSessions(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListSessionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, sessions)
	}
}
