package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending  = "PENDING"
	RequestStatusAccepted = "ACCEPTED"
	RequestStatusDeclined = "DECLINED"
)

// PlayerInvite is consumed (deleted) when accepted or declined.
type PlayerInvite struct {
	ID         uuid.UUID  `json:"id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type TeamRequest struct {
	ID         uuid.UUID  `json:"id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	Status     string     `json:"status"`
	Message    *string    `json:"message,omitempty"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
