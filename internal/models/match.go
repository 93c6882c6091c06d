package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MatchStatusPending   = "PENDING"
	MatchStatusOngoing   = "ONGOING"
	MatchStatusCompleted = "COMPLETED"
)

// Side names a proposition slot on a match.
type Side string

const (
	SideHost  Side = "host"
	SideGuest Side = "guest"
)

type Match struct {
	ID             uuid.UUID  `json:"id"`
	Status         string     `json:"status"`
	InvitingTeamID uuid.UUID  `json:"inviting_team_id"`
	GuestTeamID    uuid.UUID  `json:"guest_team_id"`
	InvitingScore  *int       `json:"inviting_score"`
	GuestScore     *int       `json:"guest_score"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	SuggestedAt    *time.Time `json:"suggested_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`

	HostProposition  *ScoreProposition `json:"host_proposition,omitempty"`
	GuestProposition *ScoreProposition `json:"guest_proposition,omitempty"`
}

// Settled reports whether the match has an authoritative score.
func (m *Match) Settled() bool {
	return m.InvitingScore != nil && m.GuestScore != nil
}

func (m *Match) SetSlot(side Side, p *ScoreProposition) {
	if side == SideHost {
		m.HostProposition = p
		return
	}
	m.GuestProposition = p
}

// ScoreProposition is one team's claim, always in the inviting/guest frame.
type ScoreProposition struct {
	ID            uuid.UUID `json:"id"`
	MatchID       uuid.UUID `json:"match_id"`
	Side          Side      `json:"side"`
	TeamID        uuid.UUID `json:"suggesting_team_id"`
	InvitingScore int       `json:"inviting_score"`
	GuestScore    int       `json:"guest_score"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MatchEvent struct {
	ID          uuid.UUID `json:"id"`
	MatchID     uuid.UUID `json:"match_id"`
	EventType   string    `json:"event_type"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
