package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

type fakeRepo struct {
	teams map[uuid.UUID]*models.Team
}

func (r *fakeRepo) CreateTeam(ctx context.Context, userID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		SocialHandle: req.SocialHandle,
	}
	r.teams[team.ID] = team
	return team, nil
}

func (r *fakeRepo) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, apperrors.NotFound("team", id)
	}
	return team, nil
}

func (r *fakeRepo) ListTeamsByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	var out []models.Team
	for _, team := range r.teams {
		if team.UserID == userID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func newApp() (*App, *fakeRepo) {
	repo := &fakeRepo{teams: make(map[uuid.UUID]*models.Team)}
	return NewApp(repo), repo
}

func TestCreateTeamRequiresName(t *testing.T) {
	app, _ := newApp()

	_, err := app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "  "})
	if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Errorf("kind = %s, want VALIDATION", kind)
	}
}

func TestCreateTeamStartsWithEmptyRecord(t *testing.T) {
	app, _ := newApp()

	team, err := app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "Deportivo Garaje"})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.Won != 0 || team.Lost != 0 || team.Drawn != 0 || team.Total != 0 {
		t.Errorf("new team record = %d/%d/%d total %d, want all zero",
			team.Won, team.Lost, team.Drawn, team.Total)
	}
}

func TestWinRate(t *testing.T) {
	tests := []struct {
		name string
		team models.Team
		want float64
	}{
		{name: "no games", team: models.Team{}, want: 0},
		{name: "all wins", team: models.Team{Won: 4, Total: 4}, want: 1},
		{name: "half wins", team: models.Team{Won: 2, Lost: 1, Drawn: 1, Total: 4}, want: 0.5},
		{name: "draws only", team: models.Team{Drawn: 3, Total: 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinRate(&tt.team); got != tt.want {
				t.Errorf("WinRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetTeamRecord(t *testing.T) {
	app, repo := newApp()

	id := uuid.New()
	repo.teams[id] = &models.Team{ID: id, Name: "Las Pumas FC", Won: 3, Lost: 1, Drawn: 2, Total: 6}

	record, err := app.GetTeamRecord(context.Background(), id)
	if err != nil {
		t.Fatalf("GetTeamRecord: %v", err)
	}
	if record.WinRate != 0.5 {
		t.Errorf("win rate = %v, want 0.5", record.WinRate)
	}
}

func TestGetTeamRecordNotFound(t *testing.T) {
	app, _ := newApp()

	_, err := app.GetTeamRecord(context.Background(), uuid.New())
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Errorf("kind = %s, want NOT_FOUND", kind)
	}
}
