package requests

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

// RequestsRepository defines what the app layer needs from the repository
type RequestsRepository interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, req CreateRequest) (*models.MatchRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error)
	ListOpenRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error)
	ListRequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.MatchRequest, error)
	CancelRequest(ctx context.Context, id uuid.UUID) error
}

// Guard defines the authorization predicates the app consults
type Guard interface {
	RequireTeamOwner(ctx context.Context, userID, teamID uuid.UUID) error
	RequireRequestOwner(req *models.MatchRequest, userID uuid.UUID) error
}

// App owns the match request lifecycle: publish, read, withdraw. The
// matched/completed transitions belong to the settlement engine.
type App struct {
	repo  RequestsRepository
	guard Guard
	clock clockwork.Clock
}

// NewApp creates a new requests App
func NewApp(repo RequestsRepository, guard Guard, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		guard: guard,
		clock: clock,
	}
}

// CreateRequest publishes a new request for ownerID. A team may hold many
// active requests at once; that is a product decision, not an oversight.
func (a *App) CreateRequest(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*models.MatchRequest, error) {
	if err := a.validateCreateRequest(req); err != nil {
		return nil, err
	}

	if err := a.guard.RequireTeamOwner(ctx, ownerID, req.TeamID); err != nil {
		return nil, err
	}

	created, err := a.repo.CreateRequest(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("request_id", created.ID.String()).
		Str("team_id", created.TeamID.String()).
		Msg("match request published")
	return created, nil
}

// GetRequest retrieves a request by ID
func (a *App) GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error) {
	return a.repo.GetRequest(ctx, id)
}

// ListOpenRequests lists active requests from other users for browsing
func (a *App) ListOpenRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error) {
	return a.repo.ListOpenRequests(ctx, callerID)
}

// ListMyRequests lists every request the caller owns, any status
func (a *App) ListMyRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error) {
	return a.repo.ListRequestsByUser(ctx, callerID)
}

// CancelRequest withdraws a request that has not been accepted yet. Requests
// are tombstoned, never deleted, so history stays queryable.
func (a *App) CancelRequest(ctx context.Context, requestID, callerID uuid.UUID) error {
	req, err := a.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if err := a.guard.RequireRequestOwner(req, callerID); err != nil {
		return err
	}

	if req.Status != models.RequestStatusActive {
		return apperrors.BusinessRule("request %s is %s and can no longer be cancelled", requestID, req.Status)
	}

	// The repository re-checks the status inside the conditional update, so
	// a concurrent acceptance between the read above and the write loses
	// nothing: it surfaces as Conflict.
	if err := a.repo.CancelRequest(ctx, requestID); err != nil {
		return err
	}

	log.Info().
		Str("request_id", requestID.String()).
		Msg("match request cancelled")
	return nil
}

func (a *App) validateCreateRequest(req CreateRequest) error {
	if req.TeamID == uuid.Nil {
		return apperrors.Validation("team_id", "team_id is required")
	}
	if strings.TrimSpace(req.Venue) == "" {
		return apperrors.Validation("venue", "venue is required")
	}
	if req.Variant != nil && !models.ValidFootballVariant(*req.Variant) {
		return apperrors.Validation("variant", "unknown football variant %q", *req.Variant)
	}
	if req.ScheduledAt != nil && req.ScheduledAt.Before(a.clock.Now()) {
		return apperrors.Validation("scheduled_at", "scheduled date must not be in the past")
	}
	return nil
}
