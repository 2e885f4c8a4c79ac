package requests

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"amistoso/internal/apperrors"
	"amistoso/internal/httpjson"
	"amistoso/internal/middleware"
	"amistoso/internal/models"
)

// RequestsApp defines what the service layer needs from the requests application
type RequestsApp interface {
	CreateRequest(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*models.MatchRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error)
	ListOpenRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error)
	ListMyRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error)
	CancelRequest(ctx context.Context, requestID, callerID uuid.UUID) error
}

// Service exposes match request operations over HTTP
type Service struct {
	app RequestsApp
}

// NewService creates a new requests HTTP service
func NewService(app RequestsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes sets up routes for request operations under the
// authenticated API router.
func (s *Service) RegisterRoutes(r *mux.Router) {
	reqRouter := r.PathPrefix("/requests").Subrouter()
	reqRouter.HandleFunc("", s.CreateRequest).Methods("POST")
	reqRouter.HandleFunc("", s.ListOpenRequests).Methods("GET")
	reqRouter.HandleFunc("/mine", s.ListMyRequests).Methods("GET")
	reqRouter.HandleFunc("/{requestId}", s.GetRequest).Methods("GET")
	reqRouter.HandleFunc("/{requestId}/cancel", s.CancelRequest).Methods("POST")
}

// CreateRequest handles POST /api/requests
func (s *Service) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, "CreateRequest", apperrors.Validation("body", "invalid JSON body"))
		return
	}

	created, err := s.app.CreateRequest(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		httpjson.WriteError(w, "CreateRequest", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}

// GetRequest handles GET /api/requests/{requestId}
func (s *Service) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["requestId"])
	if err != nil {
		httpjson.WriteError(w, "GetRequest", apperrors.Validation("requestId", "invalid request id"))
		return
	}

	req, err := s.app.GetRequest(r.Context(), id)
	if err != nil {
		httpjson.WriteError(w, "GetRequest", err)
		return
	}

	httpjson.Write(w, http.StatusOK, req)
}

// ListOpenRequests handles GET /api/requests
func (s *Service) ListOpenRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.app.ListOpenRequests(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "ListOpenRequests", err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"requests": reqs})
}

// ListMyRequests handles GET /api/requests/mine
func (s *Service) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.app.ListMyRequests(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "ListMyRequests", err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"requests": reqs})
}

// CancelRequest handles POST /api/requests/{requestId}/cancel
func (s *Service) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["requestId"])
	if err != nil {
		httpjson.WriteError(w, "CancelRequest", apperrors.Validation("requestId", "invalid request id"))
		return
	}

	if err := s.app.CancelRequest(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		httpjson.WriteError(w, "CancelRequest", err)
		return
	}

	httpjson.Write(w, http.StatusNoContent, nil)
}
