package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchResult is the committed final score of a match. At most one result
// may ever exist per match; rows are immutable once written.
type MatchResult struct {
	ID           uuid.UUID  `json:"id"`
	MatchID      uuid.UUID  `json:"match_id"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	WinnerTeamID *uuid.UUID `json:"winner_team_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
