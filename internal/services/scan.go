package services

import (
	"github.com/dimitrije/league-api/internal/models"
	"github.com/jackc/pgx/v5"
)

const matchColumns = `id, status, inviting_team_id, guest_team_id, inviting_score, guest_score,
		version, created_at, expires_at, suggested_at, updated_at`

const propositionColumns = `id, match_id, side, team_id, inviting_score, guest_score, note, created_at, updated_at`

func scanMatch(row pgx.Row, m *models.Match) error {
	return row.Scan(
		&m.ID, &m.Status, &m.InvitingTeamID, &m.GuestTeamID, &m.InvitingScore, &m.GuestScore,
		&m.Version, &m.CreatedAt, &m.ExpiresAt, &m.SuggestedAt, &m.UpdatedAt,
	)
}

func scanProposition(row pgx.Row, p *models.ScoreProposition) error {
	var side string
	if err := row.Scan(
		&p.ID, &p.MatchID, &side, &p.TeamID, &p.InvitingScore, &p.GuestScore,
		&p.Note, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	p.Side = models.Side(side)
	return nil
}
