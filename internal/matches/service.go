package matches

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

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	AcceptRequest(ctx context.Context, requestID, accepterID, accepterTeamID uuid.UUID) (*models.Match, error)
	RegisterResult(ctx context.Context, matchID, callerID uuid.UUID, req RegisterResult) (*models.MatchResult, error)
	GetMatchDetail(ctx context.Context, matchID, callerID uuid.UUID) (*MatchDetail, error)
	ListMyMatches(ctx context.Context, callerID uuid.UUID) ([]models.Match, error)
}

// Service exposes settlement operations over HTTP
type Service struct {
	app MatchesApp
}

// NewService creates a new matches HTTP service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes sets up match routes. Acceptance lives under the request it
// consumes; everything else under /api/matches.
func (s *Service) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/requests/{requestId}/accept", s.AcceptRequest).Methods("POST")

	matchRouter := r.PathPrefix("/matches").Subrouter()
	matchRouter.HandleFunc("", s.ListMyMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", s.GetMatch).Methods("GET")
	matchRouter.HandleFunc("/{matchId}/result", s.RegisterResult).Methods("POST")
}

// AcceptRequest handles POST /api/requests/{requestId}/accept
func (s *Service) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(mux.Vars(r)["requestId"])
	if err != nil {
		httpjson.WriteError(w, "AcceptRequest", apperrors.Validation("requestId", "invalid request id"))
		return
	}

	var req AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, "AcceptRequest", apperrors.Validation("body", "invalid JSON body"))
		return
	}
	if req.TeamID == uuid.Nil {
		httpjson.WriteError(w, "AcceptRequest", apperrors.Validation("team_id", "team_id is required"))
		return
	}

	match, err := s.app.AcceptRequest(r.Context(), requestID, middleware.GetUserID(r.Context()), req.TeamID)
	if err != nil {
		httpjson.WriteError(w, "AcceptRequest", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, match)
}

// RegisterResult handles POST /api/matches/{matchId}/result
func (s *Service) RegisterResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["matchId"])
	if err != nil {
		httpjson.WriteError(w, "RegisterResult", apperrors.Validation("matchId", "invalid match id"))
		return
	}

	var req RegisterResult
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, "RegisterResult", apperrors.Validation("body", "invalid JSON body"))
		return
	}

	result, err := s.app.RegisterResult(r.Context(), matchID, middleware.GetUserID(r.Context()), req)
	if err != nil {
		httpjson.WriteError(w, "RegisterResult", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, result)
}

// GetMatch handles GET /api/matches/{matchId}
func (s *Service) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["matchId"])
	if err != nil {
		httpjson.WriteError(w, "GetMatch", apperrors.Validation("matchId", "invalid match id"))
		return
	}

	detail, err := s.app.GetMatchDetail(r.Context(), matchID, middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "GetMatch", err)
		return
	}

	httpjson.Write(w, http.StatusOK, detail)
}

// ListMyMatches handles GET /api/matches
func (s *Service) ListMyMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.app.ListMyMatches(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		httpjson.WriteError(w, "ListMyMatches", err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"matches": matches})
}
