package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/ingredient"
)

// IngredientRequest is the payload for creating or updating an ingredient
type IngredientRequest struct {
	UserID     string     `json:"user_id" validate:"required"`
	Name       string     `json:"name" validate:"required,max=200"`
	Unit       string     `json:"unit" validate:"max=32"`
	Quantity   float64    `json:"quantity" validate:"min=0"`
	Threshold  *float64   `json:"threshold,omitempty"`
	BestBefore *time.Time `json:"best_before,omitempty"`
	UseBy      *time.Time `json:"use_by,omitempty"`
}

func (req IngredientRequest) toInput() ingredient.Input {
	return ingredient.Input{
		Name:       req.Name,
		Unit:       req.Unit,
		Quantity:   req.Quantity,
		Threshold:  req.Threshold,
		BestBefore: req.BestBefore,
		UseBy:      req.UseBy,
	}
}

// HandleCreateIngredient adds a new pantry ingredient
func HandleCreateIngredient(service ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create ingredient"); err != nil {
			return
		}

		ing, err := service.CreateIngredient(r.Context(), req.UserID, req.toInput())
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateIngredientFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, ing)
	}
}

// HandleUpdateIngredient replaces an ingredient's writable fields
func HandleUpdateIngredient(service ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredientID := chi.URLParam(r, "id")

		var req IngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update ingredient"); err != nil {
			return
		}

		ing, err := service.UpdateIngredient(r.Context(), req.UserID, ingredientID, req.toInput())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateIngredientFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ing)
	}
}

// DeleteIngredientRequest is the payload for deleting an ingredient
type DeleteIngredientRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// HandleDeleteIngredient removes an ingredient
func HandleDeleteIngredient(service ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredientID := chi.URLParam(r, "id")

		var req DeleteIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete ingredient"); err != nil {
			return
		}

		if err := service.DeleteIngredient(r.Context(), req.UserID, ingredientID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteIngredientFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIngredientDeletedSuccess})
	}
}

// HandleGetIngredient returns one ingredient snapshot
func HandleGetIngredient(service ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		iid, err := domain.ParseIngredientID(rawID)
		if err != nil {
			http.Error(w, ErrMsgInvalidIngredientID, http.StatusBadRequest)
			return
		}

		ing, err := service.GetByID(r.Context(), iid)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetIngredientFailed, err)
			return
		}
		if ing == nil {
			http.Error(w, ErrMsgIngredientNotFoundHTTP, http.StatusNotFound)
			return
		}

		respondJSON(w, http.StatusOK, ing)
	}
}

// HandleListIngredients returns the user's pantry
func HandleListIngredients(service ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		ingredients, err := service.ListIngredients(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListIngredientsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ingredients)
	}
}
