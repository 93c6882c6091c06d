package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	InvitingTeamID uuid.UUID  `json:"inviting_team_id"`
	GuestTeamID    uuid.UUID  `json:"guest_team_id"`
	CreatedAt      *time.Time `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	SuggestedAt    *time.Time `json:"suggested_at"`
}

// ProposeScoreRequest is expressed from the proposing team's point of view.
type ProposeScoreRequest struct {
	TeamID        uuid.UUID `json:"team_id"`
	MyScore       *int      `json:"my_score"`
	OpponentScore *int      `json:"opponent_score"`
	Note          *string   `json:"note"`
}

type PropositionResponse struct {
	ID               uuid.UUID `json:"id"`
	Side             string    `json:"side"`
	SuggestingTeamID uuid.UUID `json:"suggesting_team_id"`
	InvitingScore    int       `json:"inviting_score"`
	GuestScore       int       `json:"guest_score"`
	Note             *string   `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type MatchResponse struct {
	ID               uuid.UUID            `json:"id"`
	Status           string               `json:"status"`
	InvitingTeamID   uuid.UUID            `json:"inviting_team_id"`
	GuestTeamID      uuid.UUID            `json:"guest_team_id"`
	InvitingScore    *int                 `json:"inviting_score"`
	GuestScore       *int                 `json:"guest_score"`
	Version          int                  `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	ExpiresAt        *time.Time           `json:"expires_at,omitempty"`
	SuggestedAt      *time.Time           `json:"suggested_at,omitempty"`
	HostProposition  *PropositionResponse `json:"host_proposition"`
	GuestProposition *PropositionResponse `json:"guest_proposition"`
}

type CreateEventRequest struct {
	EventType   string  `json:"event_type"`
	Description *string `json:"description"`
}

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	MatchID     uuid.UUID `json:"match_id"`
	EventType   string    `json:"event_type"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
