// Package scoring holds the reconciliation rules for two-sided match results.
//
// Each participating team owns one proposition slot on a match: the inviting
// team writes the host slot and the guest team writes the guest slot. Every
// proposition is stored in the inviting/guest frame regardless of who made it,
// so two claims about the same result compare equal field for field. A match
// carries an authoritative score exactly when both slots are filled and agree.
package scoring

import (
	"github.com/dimitrije/league-api/internal/apperrors"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotParticipant = apperrors.Validation("team is not a participant in this match")
	ErrNegativeScore  = apperrors.Validation("scores must be non-negative")
	ErrSameTeam       = apperrors.Validation("a team cannot play against itself")
)

// Claim is a score pair in the inviting/guest frame.
type Claim struct {
	InvitingScore int
	GuestScore    int
}

// SideOf returns the slot owned by teamID. Teams outside the match are rejected
// rather than defaulted to either side.
func SideOf(m *models.Match, teamID uuid.UUID) (models.Side, error) {
	switch teamID {
	case uuid.Nil:
		return "", ErrNotParticipant
	case m.InvitingTeamID:
		return models.SideHost, nil
	case m.GuestTeamID:
		return models.SideGuest, nil
	}
	return "", ErrNotParticipant
}

func ValidateScores(myScore, opponentScore int) error {
	if myScore < 0 || opponentScore < 0 {
		return ErrNegativeScore
	}
	return nil
}

func ValidatePairing(invitingTeamID, guestTeamID uuid.UUID) error {
	if invitingTeamID == guestTeamID {
		return ErrSameTeam
	}
	return nil
}

// Canonicalize converts a team's own view (my score, opponent score) into the
// inviting/guest frame.
func Canonicalize(side models.Side, myScore, opponentScore int) Claim {
	if side == models.SideGuest {
		return Claim{InvitingScore: opponentScore, GuestScore: myScore}
	}
	return Claim{InvitingScore: myScore, GuestScore: opponentScore}
}

func ClaimOf(p *models.ScoreProposition) Claim {
	return Claim{InvitingScore: p.InvitingScore, GuestScore: p.GuestScore}
}

// Agree reports whether both slots are filled with identical claims.
func Agree(host, guest *models.ScoreProposition) bool {
	if host == nil || guest == nil {
		return false
	}
	return ClaimOf(host) == ClaimOf(guest)
}

// Outcome is the authoritative state derived from a match's slots.
type Outcome struct {
	Agreed        bool
	InvitingScore *int
	GuestScore    *int
	Status        string
}

// Settle derives the authoritative score and status from the current slots.
// Agreement completes the match. Losing a previous agreement clears the score
// and moves a completed match back to ONGOING; other statuses are kept.
func Settle(m *models.Match) Outcome {
	if Agree(m.HostProposition, m.GuestProposition) {
		inviting := m.HostProposition.InvitingScore
		guest := m.HostProposition.GuestScore
		return Outcome{
			Agreed:        true,
			InvitingScore: &inviting,
			GuestScore:    &guest,
			Status:        models.MatchStatusCompleted,
		}
	}

	status := m.Status
	if status == models.MatchStatusCompleted {
		status = models.MatchStatusOngoing
	}
	return Outcome{Status: status}
}

// Apply writes an outcome onto the match.
func (o Outcome) Apply(m *models.Match) {
	m.InvitingScore = o.InvitingScore
	m.GuestScore = o.GuestScore
	m.Status = o.Status
}

// Contribution is what a settled match adds to teamID's cumulative score.
func Contribution(m *models.Match, teamID uuid.UUID) int {
	if !m.Settled() {
		return 0
	}
	total := 0
	if m.InvitingTeamID == teamID {
		total += *m.InvitingScore
	}
	if m.GuestTeamID == teamID {
		total += *m.GuestScore
	}
	return total
}

// TeamScore sums a team's contributions over the given matches.
func TeamScore(matches []models.Match, teamID uuid.UUID) int {
	total := 0
	for i := range matches {
		total += Contribution(&matches[i], teamID)
	}
	return total
}

// Filter returns the subset of matches selected by f. Matches where only one
// authoritative score is set belong to neither played nor planned.
func Filter(matches []models.Match, f models.MatchFilter) []models.Match {
	if f == models.MatchFilterAll {
		return matches
	}
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		switch f {
		case models.MatchFilterPlayed:
			if m.InvitingScore != nil && m.GuestScore != nil {
				out = append(out, m)
			}
		case models.MatchFilterPlanned:
			if m.InvitingScore == nil && m.GuestScore == nil {
				out = append(out, m)
			}
		}
	}
	return out
}
