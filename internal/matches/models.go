package matches

import (
	"time"

	"github.com/google/uuid"

	"amistoso/internal/models"
)

// AcceptRequest is the body for accepting a published match request
type AcceptRequest struct {
	TeamID uuid.UUID `json:"team_id"`
}

// RegisterResult is the body for reporting a final score
type RegisterResult struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// AcceptParams carries everything the acceptance transaction writes. Venue,
// price and date are the snapshot copied from the request.
type AcceptParams struct {
	RequestID   uuid.UUID
	HomeTeamID  uuid.UUID
	AwayTeamID  uuid.UUID
	HomeUserID  uuid.UUID
	AwayUserID  uuid.UUID
	Venue       string
	Price       *float64
	ScheduledAt *time.Time
}

// SettleParams carries everything the settlement transaction writes.
// WinnerTeamID and LoserTeamID are both nil on a draw.
type SettleParams struct {
	MatchID      uuid.UUID
	RequestID    uuid.UUID
	HomeTeamID   uuid.UUID
	AwayTeamID   uuid.UUID
	HomeScore    int
	AwayScore    int
	WinnerTeamID *uuid.UUID
	LoserTeamID  *uuid.UUID
}

// TeamContact is the private contact detail of one side of a match
type TeamContact struct {
	TeamName     string  `json:"team_name"`
	SocialHandle *string `json:"social_handle,omitempty"`
	Email        string  `json:"email"`
}

// MatchContacts pairs both sides' contact details
type MatchContacts struct {
	Home TeamContact `json:"home"`
	Away TeamContact `json:"away"`
}

// MatchDetail is a match with its result, if settled, and — for participants
// only — both sides' contact details.
type MatchDetail struct {
	models.Match
	Result   *models.MatchResult `json:"result,omitempty"`
	Contacts *MatchContacts      `json:"contacts,omitempty"`
}
