package teams

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

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*models.Team, error)
	GetTeamRecord(ctx context.Context, id uuid.UUID) (*TeamRecord, error)
	ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error)
}

// Service exposes team operations over HTTP
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes sets up routes for team operations under the authenticated
// API router.
func (s *Service) RegisterRoutes(r *mux.Router) {
	teamRouter := r.PathPrefix("/teams").Subrouter()
	teamRouter.HandleFunc("", s.CreateTeam).Methods("POST")
	teamRouter.HandleFunc("", s.ListMyTeams).Methods("GET")
	teamRouter.HandleFunc("/{teamId}", s.GetTeam).Methods("GET")
}

// CreateTeam handles POST /api/teams
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, "CreateTeam", apperrors.Validation("body", "invalid JSON body"))
		return
	}

	team, err := s.app.CreateTeam(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		httpjson.WriteError(w, "CreateTeam", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, team)
}

// GetTeam handles GET /api/teams/{teamId}; includes the derived win rate
func (s *Service) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["teamId"])
	if err != nil {
		httpjson.WriteError(w, "GetTeam", apperrors.Validation("teamId", "invalid team id"))
		return
	}

	record, err := s.app.GetTeamRecord(r.Context(), id)
	if err != nil {
		httpjson.WriteError(w, "GetTeam", err)
		return
	}

	httpjson.Write(w, http.StatusOK, record)
}

// ListMyTeams handles GET /api/teams
func (s *Service) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListTeamsByUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "ListMyTeams", err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"teams": teams})
}
