package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a formed match
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusConfirmed MatchStatus = "confirmed"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// Match is the pairing formed when a request is accepted. Venue, price and
// date are snapshotted from the request at acceptance time so later edits to
// the request cannot retroactively change an agreed match.
type Match struct {
	ID          uuid.UUID   `json:"id"`
	RequestID   uuid.UUID   `json:"request_id"`
	HomeTeamID  uuid.UUID   `json:"home_team_id"`
	AwayTeamID  uuid.UUID   `json:"away_team_id"`
	HomeUserID  uuid.UUID   `json:"home_user_id"`
	AwayUserID  uuid.UUID   `json:"away_user_id"`
	Status      MatchStatus `json:"status"`
	Venue       string      `json:"venue"`
	Price       *float64    `json:"price,omitempty"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
