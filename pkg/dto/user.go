package dto

import "github.com/google/uuid"

type CreatePlayerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Mail    string `json:"mail"`
}

type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Mail    string    `json:"mail"`
}

type PlayerResponse struct {
	ID     uuid.UUID     `json:"id"`
	UserID uuid.UUID     `json:"user_id"`
	TeamID *uuid.UUID    `json:"team_id"`
	User   *UserResponse `json:"user,omitempty"`
}
