package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name     string `json:"name"`
	IsPublic *bool  `json:"is_public"`
}

// UpdateTeamRequest only carries display fields; score is derived.
type UpdateTeamRequest struct {
	Name     *string `json:"name"`
	IsPublic *bool   `json:"is_public"`
}

type TeamResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsPublic bool      `json:"is_public"`
	Score    int       `json:"score"`
}

// ChallengeRequest opens a match with the path team as the inviting side.
type ChallengeRequest struct {
	GuestTeamID uuid.UUID  `json:"guest_team_id"`
	CreatedAt   *time.Time `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	SuggestedAt *time.Time `json:"suggested_at"`
}
