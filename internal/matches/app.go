package matches

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

const maxScore = 99

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	AcceptRequest(ctx context.Context, params AcceptParams) (*models.Match, error)
	SettleMatch(ctx context.Context, params SettleParams) (*models.MatchResult, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error)
	ListMatchesByUser(ctx context.Context, userID uuid.UUID) ([]models.Match, error)
}

// RequestsApp defines what the settlement engine needs from the request
// lifecycle manager
type RequestsApp interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*models.MatchRequest, error)
}

// TeamsApp defines what the settlement engine needs from the teams application
type TeamsApp interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// UsersApp defines what the settlement engine needs from the users application
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Guard defines the authorization predicates the app consults
type Guard interface {
	RequireTeamOwner(ctx context.Context, userID, teamID uuid.UUID) error
	RequireMatchParticipant(m *models.Match, userID uuid.UUID) error
	IsMatchParticipant(m *models.Match, userID uuid.UUID) bool
}

// App is the settlement engine: it turns an accepted request into a match
// and commits exactly one result per match, updating both teams' ledgers in
// the same transaction.
type App struct {
	repo     MatchesRepository
	requests RequestsApp
	teams    TeamsApp
	users    UsersApp
	guard    Guard
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, requests RequestsApp, teams TeamsApp, users UsersApp, guard Guard) *App {
	return &App{
		repo:     repo,
		requests: requests,
		teams:    teams,
		users:    users,
		guard:    guard,
	}
}

// AcceptRequest pairs accepterTeamID against an active request, forming a
// pending match. The status and self-match checks here are fast paths; the
// conditional update inside the repository transaction is authoritative.
func (a *App) AcceptRequest(ctx context.Context, requestID, accepterID, accepterTeamID uuid.UUID) (*models.Match, error) {
	req, err := a.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Status != models.RequestStatusActive {
		return nil, apperrors.BusinessRule("request %s is %s and cannot be accepted", requestID, req.Status)
	}

	if req.UserID == accepterID {
		return nil, apperrors.BusinessRule("cannot accept your own request")
	}

	if err := a.guard.RequireTeamOwner(ctx, accepterID, accepterTeamID); err != nil {
		return nil, err
	}

	match, err := a.repo.AcceptRequest(ctx, AcceptParams{
		RequestID:   requestID,
		HomeTeamID:  req.TeamID,
		AwayTeamID:  accepterTeamID,
		HomeUserID:  req.UserID,
		AwayUserID:  accepterID,
		Venue:       req.Venue,
		Price:       req.Price,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("request_id", requestID.String()).
		Str("away_team_id", accepterTeamID.String()).
		Msg("request accepted, match formed")
	return match, nil
}

// RegisterResult commits the final score of a match. Either participant may
// report; the home side is the original requester. Attempts after the first
// fail with Conflict regardless of which check catches them.
func (a *App) RegisterResult(ctx context.Context, matchID, callerID uuid.UUID, req RegisterResult) (*models.MatchResult, error) {
	match, err := a.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if err := a.guard.RequireMatchParticipant(match, callerID); err != nil {
		return nil, err
	}

	switch match.Status {
	case models.MatchStatusCompleted:
		return nil, apperrors.Conflict("match %s already settled", matchID)
	case models.MatchStatusCancelled:
		return nil, apperrors.BusinessRule("match %s is cancelled", matchID)
	}

	if err := validateScore("home_score", req.HomeScore); err != nil {
		return nil, err
	}
	if err := validateScore("away_score", req.AwayScore); err != nil {
		return nil, err
	}

	winnerID, loserID := determineOutcome(match, req.HomeScore, req.AwayScore)

	result, err := a.repo.SettleMatch(ctx, SettleParams{
		MatchID:      matchID,
		RequestID:    match.RequestID,
		HomeTeamID:   match.HomeTeamID,
		AwayTeamID:   match.AwayTeamID,
		HomeScore:    req.HomeScore,
		AwayScore:    req.AwayScore,
		WinnerTeamID: winnerID,
		LoserTeamID:  loserID,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", matchID.String()).
		Int("home_score", req.HomeScore).
		Int("away_score", req.AwayScore).
		Msg("match settled")
	return result, nil
}

// GetMatchDetail retrieves a match with its result. Contact details are
// attached only when the caller participates in the match.
func (a *App) GetMatchDetail(ctx context.Context, matchID, callerID uuid.UUID) (*MatchDetail, error) {
	match, err := a.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result, err := a.repo.GetResult(ctx, matchID)
	if err != nil {
		return nil, err
	}

	detail := &MatchDetail{Match: *match, Result: result}

	if a.guard.IsMatchParticipant(match, callerID) {
		contacts, err := a.loadContacts(ctx, match)
		if err != nil {
			return nil, err
		}
		detail.Contacts = contacts
	}

	return detail, nil
}

// ListMyMatches retrieves every match the caller participates in
func (a *App) ListMyMatches(ctx context.Context, callerID uuid.UUID) ([]models.Match, error) {
	return a.repo.ListMatchesByUser(ctx, callerID)
}

func (a *App) loadContacts(ctx context.Context, match *models.Match) (*MatchContacts, error) {
	homeTeam, err := a.teams.GetTeam(ctx, match.HomeTeamID)
	if err != nil {
		return nil, err
	}
	awayTeam, err := a.teams.GetTeam(ctx, match.AwayTeamID)
	if err != nil {
		return nil, err
	}
	homeUser, err := a.users.GetUser(ctx, match.HomeUserID)
	if err != nil {
		return nil, err
	}
	awayUser, err := a.users.GetUser(ctx, match.AwayUserID)
	if err != nil {
		return nil, err
	}

	return &MatchContacts{
		Home: TeamContact{TeamName: homeTeam.Name, SocialHandle: homeTeam.SocialHandle, Email: homeUser.Email},
		Away: TeamContact{TeamName: awayTeam.Name, SocialHandle: awayTeam.SocialHandle, Email: awayUser.Email},
	}, nil
}

func validateScore(field string, score int) error {
	if score < 0 || score > maxScore {
		return apperrors.Validation(field, "score must be between 0 and %d", maxScore)
	}
	return nil
}

// determineOutcome is order-independent: the winner is derived from the
// scores alone. Both references are nil on a draw.
func determineOutcome(match *models.Match, homeScore, awayScore int) (winnerID, loserID *uuid.UUID) {
	switch {
	case homeScore > awayScore:
		return &match.HomeTeamID, &match.AwayTeamID
	case awayScore > homeScore:
		return &match.AwayTeamID, &match.HomeTeamID
	default:
		return nil, nil
	}
}
