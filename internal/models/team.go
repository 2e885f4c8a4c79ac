package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a user-owned amateur football team and its cumulative
// record. Counters are mutated only by match settlement and never decrease.
// Invariant: Total == Won + Lost + Drawn.
type Team struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	SocialHandle *string   `json:"social_handle,omitempty"`
	Won          int       `json:"won"`
	Lost         int       `json:"lost"`
	Drawn        int       `json:"drawn"`
	Total        int       `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}
