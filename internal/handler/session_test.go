package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/shopping"
)

func sessionProjection(userID string) *shopping.SessionProjection {
	return &shopping.SessionProjection{
		ID:           uuid.NewString(),
		UserID:       userID,
		Status:       domain.SessionStatusActive,
		CheckedItems: []shopping.CheckedItemView{},
	}
}

func TestHandleStartSession(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockShoppingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Missing UserID",
			reqBody:        StartSessionRequest{DeviceType: "MOBILE"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "userid is required",
		},
		{
			name:           "Unknown Device Type",
			reqBody:        StartSessionRequest{UserID: "shopper-1", DeviceType: "FRIDGE"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "devicetype must be one of MOBILE, TABLET, DESKTOP",
		},
		{
			name:    "Session Already Active",
			reqBody: StartSessionRequest{UserID: "shopper-1"},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("StartSession", mock.Anything, "shopper-1", "", (*domain.Location)(nil)).
					Return(nil, domain.ErrSessionAlreadyActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSessionAlreadyActiveError,
		},
		{
			name:    "Service Error",
			reqBody: StartSessionRequest{UserID: "shopper-1"},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("StartSession", mock.Anything, "shopper-1", "", (*domain.Location)(nil)).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
		{
			name:    "Success",
			reqBody: StartSessionRequest{UserID: "shopper-1", DeviceType: "MOBILE"},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("StartSession", mock.Anything, "shopper-1", "MOBILE", (*domain.Location)(nil)).
					Return(sessionProjection("shopper-1"), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"ACTIVE"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockShoppingService)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/sessions", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			HandleStartSession(service)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			service.AssertExpectations(t)
		})
	}
}

// newSessionRouter mounts the session handlers the way the server does so
// chi's URL parameters resolve in tests.
func newSessionRouter(service shopping.Service) chi.Router {
	r := chi.NewRouter()
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", HandleStartSession(service))
		r.Get("/", HandleListSessions(service))
		r.Get("/active", HandleGetActiveSession(service))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", HandleGetSession(service))
			r.Post("/check", HandleCheckIngredient(service))
			r.Post("/complete", HandleCompleteSession(service))
			r.Post("/abandon", HandleAbandonSession(service))
		})
	})
	return r
}

func TestHandleCheckIngredient(t *testing.T) {
	sessionID := uuid.NewString()
	ingredientID := uuid.NewString()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockShoppingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Non-UUID Ingredient ID",
			reqBody:        CheckIngredientRequest{UserID: "shopper-1", IngredientID: "not-a-uuid"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "ingredientid must be a valid UUID",
		},
		{
			name:    "Already Checked",
			reqBody: CheckIngredientRequest{UserID: "shopper-1", IngredientID: ingredientID},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("CheckIngredient", mock.Anything, sessionID, "shopper-1", ingredientID).
					Return(nil, domain.ErrAlreadyChecked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyCheckedError,
		},
		{
			name:    "Foreign Session",
			reqBody: CheckIngredientRequest{UserID: "intruder", IngredientID: ingredientID},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("CheckIngredient", mock.Anything, sessionID, "intruder", ingredientID).
					Return(nil, domain.ErrNoCheckPermission)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNoCheckPermissionError,
		},
		{
			name:    "Success",
			reqBody: CheckIngredientRequest{UserID: "shopper-1", IngredientID: ingredientID},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("CheckIngredient", mock.Anything, sessionID, "shopper-1", ingredientID).
					Return(sessionProjection("shopper-1"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_id":"shopper-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockShoppingService)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}
			router := newSessionRouter(service)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/check", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			service.AssertExpectations(t)
		})
	}
}

func TestHandleCompleteSession(t *testing.T) {
	sessionID := uuid.NewString()

	t.Run("Not Owner", func(t *testing.T) {
		service := new(MockShoppingService)
		service.On("CompleteSession", mock.Anything, sessionID, "intruder").
			Return(nil, domain.ErrNotSessionOwner)
		router := newSessionRouter(service)

		body, _ := json.Marshal(CloseSessionRequest{UserID: "intruder"})
		req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/complete", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgNotSessionOwnerError)
	})

	t.Run("Success", func(t *testing.T) {
		service := new(MockShoppingService)
		projection := sessionProjection("shopper-1")
		projection.Status = domain.SessionStatusCompleted
		service.On("CompleteSession", mock.Anything, sessionID, "shopper-1").
			Return(projection, nil)
		router := newSessionRouter(service)

		body, _ := json.Marshal(CloseSessionRequest{UserID: "shopper-1"})
		req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/complete", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"COMPLETED"`)
	})
}

func TestHandleAbandonSession(t *testing.T) {
	sessionID := uuid.NewString()

	t.Run("Foreign Session Looks Absent", func(t *testing.T) {
		service := new(MockShoppingService)
		service.On("AbandonSession", mock.Anything, sessionID, "intruder", "").
			Return(nil, domain.ErrSessionNotFound)
		router := newSessionRouter(service)

		body, _ := json.Marshal(CloseSessionRequest{UserID: "intruder"})
		req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/abandon", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgSessionNotFoundError)
	})

	t.Run("Success With Reason", func(t *testing.T) {
		service := new(MockShoppingService)
		projection := sessionProjection("shopper-1")
		projection.Status = domain.SessionStatusAbandoned
		projection.AbandonReason = "store closed"
		service.On("AbandonSession", mock.Anything, sessionID, "shopper-1", "store closed").
			Return(projection, nil)
		router := newSessionRouter(service)

		body, _ := json.Marshal(CloseSessionRequest{UserID: "shopper-1", Reason: "store closed"})
		req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/abandon", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"abandon_reason":"store closed"`)
	})
}

func TestHandleGetSession(t *testing.T) {
	sessionID := uuid.NewString()

	t.Run("Missing user_id Query Param", func(t *testing.T) {
		service := new(MockShoppingService)
		router := newSessionRouter(service)

		req := httptest.NewRequest("GET", "/sessions/"+sessionID, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "GetSession")
	})

	t.Run("Success", func(t *testing.T) {
		service := new(MockShoppingService)
		service.On("GetSession", mock.Anything, sessionID, "shopper-1").
			Return(sessionProjection("shopper-1"), nil)
		router := newSessionRouter(service)

		req := httptest.NewRequest("GET", "/sessions/"+sessionID+"?user_id=shopper-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleGetActiveSession(t *testing.T) {
	t.Run("None Active", func(t *testing.T) {
		service := new(MockShoppingService)
		service.On("GetActiveSession", mock.Anything, "shopper-1").
			Return(nil, domain.ErrSessionNotFound)
		router := newSessionRouter(service)

		req := httptest.NewRequest("GET", "/sessions/active?user_id=shopper-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListSessions(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockShoppingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid Limit",
			target:         "/sessions?user_id=shopper-1&limit=abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidLimit,
		},
		{
			name:           "Negative Limit",
			target:         "/sessions?user_id=shopper-1&limit=-3",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidLimit,
		},
		{
			name:   "Success With Explicit Limit",
			target: "/sessions?user_id=shopper-1&limit=5",
			setupMocks: func(ms *MockShoppingService) {
				ms.On("ListSessions", mock.Anything, "shopper-1", 5).
					Return([]*shopping.SessionProjection{sessionProjection("shopper-1")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_id":"shopper-1"`,
		},
		{
			name:   "Default Limit When Omitted",
			target: "/sessions?user_id=shopper-1",
			setupMocks: func(ms *MockShoppingService) {
				ms.On("ListSessions", mock.Anything, "shopper-1", 0).
					Return([]*shopping.SessionProjection{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockShoppingService)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}
			router := newSessionRouter(service)

			req := httptest.NewRequest("GET", tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			service.AssertExpectations(t)
		})
	}
}
