package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

type fakeTeams struct {
	teams map[uuid.UUID]*models.Team
}

func (f *fakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperrors.NotFound("team", id)
	}
	return team, nil
}

func TestRequireTeamOwner(t *testing.T) {
	owner := uuid.New()
	teamID := uuid.New()
	guard := NewGuard(&fakeTeams{teams: map[uuid.UUID]*models.Team{
		teamID: {ID: teamID, UserID: owner},
	}})

	if err := guard.RequireTeamOwner(context.Background(), owner, teamID); err != nil {
		t.Errorf("owner should pass: %v", err)
	}

	err := guard.RequireTeamOwner(context.Background(), uuid.New(), teamID)
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnauthorized {
		t.Errorf("kind = %s, want UNAUTHORIZED", kind)
	}

	err = guard.RequireTeamOwner(context.Background(), owner, uuid.New())
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Errorf("kind = %s, want NOT_FOUND", kind)
	}
}

func TestRequireRequestOwner(t *testing.T) {
	owner := uuid.New()
	guard := NewGuard(&fakeTeams{})
	req := &models.MatchRequest{ID: uuid.New(), UserID: owner}

	if err := guard.RequireRequestOwner(req, owner); err != nil {
		t.Errorf("owner should pass: %v", err)
	}

	err := guard.RequireRequestOwner(req, uuid.New())
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnauthorized {
		t.Errorf("kind = %s, want UNAUTHORIZED", kind)
	}
}

func TestRequireMatchParticipant(t *testing.T) {
	home := uuid.New()
	away := uuid.New()
	guard := NewGuard(&fakeTeams{})
	match := &models.Match{ID: uuid.New(), HomeUserID: home, AwayUserID: away}

	for _, userID := range []uuid.UUID{home, away} {
		if err := guard.RequireMatchParticipant(match, userID); err != nil {
			t.Errorf("participant %s should pass: %v", userID, err)
		}
	}

	err := guard.RequireMatchParticipant(match, uuid.New())
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnauthorized {
		t.Errorf("kind = %s, want UNAUTHORIZED", kind)
	}

	if guard.IsMatchParticipant(match, uuid.New()) {
		t.Error("outsider should not count as participant")
	}
}
