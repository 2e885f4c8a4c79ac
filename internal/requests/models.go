package requests

import (
	"time"

	"github.com/google/uuid"

	"amistoso/internal/models"
)

// CreateRequest represents the data needed to publish a match request
type CreateRequest struct {
	TeamID      uuid.UUID               `json:"team_id"`
	Variant     *models.FootballVariant `json:"variant,omitempty"`
	Venue       string                  `json:"venue"`
	Price       *float64                `json:"price,omitempty"`
	ScheduledAt *time.Time              `json:"scheduled_at,omitempty"`
	League      *string                 `json:"league,omitempty"`
	Notes       *string                 `json:"notes,omitempty"`
}
