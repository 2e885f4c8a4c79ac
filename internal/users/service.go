package users

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

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	CreateUser(ctx context.Context, callerID uuid.UUID, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes user operations over HTTP
type Service struct {
	app UsersApp
}

// NewService creates a new users HTTP service
func NewService(app UsersApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes sets up routes for user operations under the authenticated
// API router.
func (s *Service) RegisterRoutes(r *mux.Router) {
	userRouter := r.PathPrefix("/users").Subrouter()
	userRouter.HandleFunc("", s.CreateUser).Methods("POST")
	userRouter.HandleFunc("/me", s.GetMe).Methods("GET")
}

// CreateUser handles POST /api/users
func (s *Service) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, "CreateUser", apperrors.Validation("body", "invalid JSON body"))
		return
	}

	user, err := s.app.CreateUser(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		httpjson.WriteError(w, "CreateUser", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, user)
}

// GetMe handles GET /api/users/me
func (s *Service) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.app.GetUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "GetMe", err)
		return
	}

	httpjson.Write(w, http.StatusOK, user)
}
