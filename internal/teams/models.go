package teams

import "amistoso/internal/models"

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name         string  `json:"name"`
	SocialHandle *string `json:"social_handle,omitempty"`
}

// TeamRecord is a team plus its derived win rate. The rate is computed on
// read and never persisted.
type TeamRecord struct {
	models.Team
	WinRate float64 `json:"win_rate"`
}
