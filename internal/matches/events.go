package matches

import (
	"time"

	"github.com/google/uuid"
)

// Outbox event types published on match lifecycle transitions
const (
	EventTypeMatchCreated = "match.created"
	EventTypeMatchSettled = "match.settled"
)

// MatchCreatedPayload is the outbox payload written when a request is accepted
type MatchCreatedPayload struct {
	MatchID     uuid.UUID  `json:"match_id"`
	RequestID   uuid.UUID  `json:"request_id"`
	HomeTeamID  uuid.UUID  `json:"home_team_id"`
	AwayTeamID  uuid.UUID  `json:"away_team_id"`
	Venue       string     `json:"venue"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// MatchSettledPayload is the outbox payload written when a result is committed
type MatchSettledPayload struct {
	MatchID      uuid.UUID  `json:"match_id"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	WinnerTeamID *uuid.UUID `json:"winner_team_id,omitempty"`
}
