package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
	"amistoso/internal/sqlutil"
	"amistoso/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]db.Team, error)
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team with zeroed counters
func (r *Repository) CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		SocialHandle: sqlutil.ToSqlString(req.SocialHandle),
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.Validation("user_id", "unknown user %s", userID)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("team", id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// ListTeamsByUser retrieves all teams owned by a user
func (r *Repository) ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by user: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// dbTeamToModel converts a database team to domain model
func dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:           dbTeam.ID,
		UserID:       dbTeam.UserID,
		Name:         dbTeam.Name,
		SocialHandle: sqlutil.FromSqlStringPtr(dbTeam.SocialHandle),
		Won:          int(dbTeam.Won),
		Lost:         int(dbTeam.Lost),
		Drawn:        int(dbTeam.Drawn),
		Total:        int(dbTeam.Total),
		CreatedAt:    dbTeam.CreatedAt,
	}
}
