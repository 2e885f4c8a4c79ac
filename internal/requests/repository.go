package requests

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
	"amistoso/internal/requests/db"
	"amistoso/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateMatchRequest(ctx context.Context, arg db.CreateMatchRequestParams) (db.MatchRequest, error)
	GetMatchRequest(ctx context.Context, id uuid.UUID) (db.MatchRequest, error)
	ListOpenMatchRequests(ctx context.Context, userID uuid.UUID) ([]db.MatchRequest, error)
	ListMatchRequestsByUser(ctx context.Context, userID uuid.UUID) ([]db.MatchRequest, error)
	CancelMatchRequest(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository implements match request data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new requests repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateRequest inserts a new request with status=active
func (r *Repository) CreateRequest(ctx context.Context, userID uuid.UUID, req CreateRequest) (*models.MatchRequest, error) {
	var variant *string
	if req.Variant != nil {
		v := string(*req.Variant)
		variant = &v
	}

	dbReq, err := r.queries.CreateMatchRequest(ctx, db.CreateMatchRequestParams{
		ID:          uuid.New(),
		UserID:      userID,
		TeamID:      req.TeamID,
		Variant:     sqlutil.ToSqlString(variant),
		Venue:       req.Venue,
		Price:       sqlutil.ToSqlFloat64(req.Price),
		ScheduledAt: sqlutil.ToSqlTime(req.ScheduledAt),
		League:      sqlutil.ToSqlString(req.League),
		Notes:       sqlutil.ToSqlString(req.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match request: %w", err)
	}

	return dbRequestToModel(dbReq), nil
}

// GetRequest retrieves a request by ID
func (r *Repository) GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error) {
	dbReq, err := r.queries.GetMatchRequest(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("match request", id)
		}
		return nil, fmt.Errorf("failed to get match request: %w", err)
	}

	return dbRequestToModel(dbReq), nil
}

// ListOpenRequests retrieves active requests published by other users
func (r *Repository) ListOpenRequests(ctx context.Context, callerID uuid.UUID) ([]models.MatchRequest, error) {
	dbReqs, err := r.queries.ListOpenMatchRequests(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open match requests: %w", err)
	}

	return dbRequestsToModels(dbReqs), nil
}

// ListRequestsByUser retrieves all requests owned by a user
func (r *Repository) ListRequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.MatchRequest, error) {
	dbReqs, err := r.queries.ListMatchRequestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match requests by user: %w", err)
	}

	return dbRequestsToModels(dbReqs), nil
}

// CancelRequest soft-cancels a request. The status transition is a
// conditional update; zero rows affected means the request was no longer
// active when the write landed.
func (r *Repository) CancelRequest(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.CancelMatchRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel match request: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("request %s is no longer active", id)
	}
	return nil
}

func dbRequestToModel(dbReq db.MatchRequest) *models.MatchRequest {
	var variant *models.FootballVariant
	if dbReq.Variant.Valid {
		v := models.FootballVariant(dbReq.Variant.String)
		variant = &v
	}

	return &models.MatchRequest{
		ID:          dbReq.ID,
		UserID:      dbReq.UserID,
		TeamID:      dbReq.TeamID,
		Variant:     variant,
		Venue:       dbReq.Venue,
		Price:       sqlutil.FromSqlFloat64(dbReq.Price),
		ScheduledAt: sqlutil.FromSqlTime(dbReq.ScheduledAt),
		League:      sqlutil.FromSqlStringPtr(dbReq.League),
		Notes:       sqlutil.FromSqlStringPtr(dbReq.Notes),
		Status:      models.RequestStatus(dbReq.Status),
		CreatedAt:   dbReq.CreatedAt,
		UpdatedAt:   dbReq.UpdatedAt,
	}
}

func dbRequestsToModels(dbReqs []db.MatchRequest) []models.MatchRequest {
	reqs := make([]models.MatchRequest, len(dbReqs))
	for i, dbReq := range dbReqs {
		reqs[i] = *dbRequestToModel(dbReq)
	}
	return reqs
}
