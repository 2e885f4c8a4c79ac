package teams

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error)
}

// App handles team business logic. The win/loss/draw ledger itself is only
// mutated by match settlement; this app owns creation and reads.
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{repo: repo}
}

// CreateTeam creates a new team owned by userID
func (a *App) CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	team, err := a.repo.CreateTeam(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("user_id", userID.String()).
		Msg("team created")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// GetTeamRecord retrieves a team with its derived win rate
func (a *App) GetTeamRecord(ctx context.Context, id uuid.UUID) (*TeamRecord, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TeamRecord{Team: *team, WinRate: WinRate(team)}, nil
}

// ListTeamsByUser retrieves all teams owned by a user
func (a *App) ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	return a.repo.ListTeamsByUser(ctx, userID)
}

// WinRate computes won/total, zero for a team that has not played.
func WinRate(team *models.Team) float64 {
	if team.Total == 0 {
		return 0
	}
	return float64(team.Won) / float64(team.Total)
}
