package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a match request
type RequestStatus string

const (
	RequestStatusActive    RequestStatus = "active"
	RequestStatusMatched   RequestStatus = "matched"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// FootballVariant is the closed set of game formats a request may advertise
type FootballVariant string

const (
	Futbol5  FootballVariant = "futbol5"
	Futbol7  FootballVariant = "futbol7"
	Futbol8  FootballVariant = "futbol8"
	Futbol11 FootballVariant = "futbol11"
)

// ValidFootballVariant reports whether v is one of the known formats
func ValidFootballVariant(v FootballVariant) bool {
	switch v {
	case Futbol5, Futbol7, Futbol8, Futbol11:
		return true
	}
	return false
}

// MatchRequest is a published offer to play, owned by one team/user.
// A team may hold any number of active requests concurrently.
type MatchRequest struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	TeamID      uuid.UUID        `json:"team_id"`
	Variant     *FootballVariant `json:"variant,omitempty"`
	Venue       string           `json:"venue"`
	Price       *float64         `json:"price,omitempty"`
	ScheduledAt *time.Time       `json:"scheduled_at,omitempty"`
	League      *string          `json:"league,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Status      RequestStatus    `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
