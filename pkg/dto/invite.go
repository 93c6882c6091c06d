package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInviteRequest struct {
	PlayerID   uuid.UUID  `json:"player_id"`
	ExpireDate *time.Time `json:"expire_date"`
}

type InviteResponse struct {
	ID         uuid.UUID  `json:"id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreateJoinRequest struct {
	PlayerID   uuid.UUID  `json:"player_id"`
	Message    *string    `json:"message"`
	ExpireDate *time.Time `json:"expire_date"`
}

type JoinRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	Status     string     `json:"status"`
	Message    *string    `json:"message,omitempty"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
