package models

import (
	"time"

	"github.com/google/uuid"
)

// Team.Score is a cached aggregate of settled matches. Only the score
// aggregator writes it.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsPublic  bool      `json:"is_public"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Player struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	User      *User      `json:"user,omitempty"`
}

// MatchFilter selects one of the derived match views of a team.
type MatchFilter string

const (
	MatchFilterAll     MatchFilter = "all"
	MatchFilterPlayed  MatchFilter = "played"
	MatchFilterPlanned MatchFilter = "planned"
)

func (f MatchFilter) Valid() bool {
	switch f {
	case MatchFilterAll, MatchFilterPlayed, MatchFilterPlanned:
		return true
	}
	return false
}
