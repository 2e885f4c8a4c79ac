package auth

import (
	"context"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

// TeamGetter defines what the guard needs from the teams application
type TeamGetter interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// Guard centralizes ownership and participation predicates so the semantics
// are defined once and reused by every mutating operation. It never mutates.
type Guard struct {
	teams TeamGetter
}

// NewGuard creates a new authorization guard
func NewGuard(teams TeamGetter) *Guard {
	return &Guard{teams: teams}
}

// RequireTeamOwner verifies that userID owns the team.
func (g *Guard) RequireTeamOwner(ctx context.Context, userID, teamID uuid.UUID) error {
	team, err := g.teams.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.UserID != userID {
		return apperrors.Unauthorized("team %s does not belong to caller", teamID)
	}
	return nil
}

// RequireRequestOwner verifies that userID owns the already-loaded request.
func (g *Guard) RequireRequestOwner(req *models.MatchRequest, userID uuid.UUID) error {
	if req.UserID != userID {
		return apperrors.Unauthorized("request %s does not belong to caller", req.ID)
	}
	return nil
}

// RequireMatchParticipant verifies that userID is one of the two users
// recorded on the match.
func (g *Guard) RequireMatchParticipant(m *models.Match, userID uuid.UUID) error {
	if !g.IsMatchParticipant(m, userID) {
		return apperrors.Unauthorized("caller does not participate in match %s", m.ID)
	}
	return nil
}

// IsMatchParticipant is the boolean form used for response shaping
// (participants see contact details, everyone else does not).
func (g *Guard) IsMatchParticipant(m *models.Match, userID uuid.UUID) bool {
	return m.HomeUserID == userID || m.AwayUserID == userID
}
