package services

import (
	"context"
	"fmt"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/google/uuid"
)

type TeamService struct {
	db *database.DB
}

func NewTeamService(db *database.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) Create(ctx context.Context, name string, isPublic bool) (*models.Team, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO teams (name, is_public)
		VALUES ($1, $2)
		RETURNING id, name, is_public, score, created_at, updated_at
	`, name, isPublic).Scan(&team.ID, &team.Name, &team.IsPublic, &team.Score, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, is_public, score, created_at, updated_at
		FROM teams WHERE id = $1
	`, teamID).Scan(&team.ID, &team.Name, &team.IsPublic, &team.Score, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, notFound(err, ErrTeamNotFound)
	}
	return &team, nil
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, is_public, score, created_at, updated_at
		FROM teams
		ORDER BY score DESC, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.IsPublic, &team.Score, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Update changes the team's display fields. Score is not client-writable.
func (s *TeamService) Update(ctx context.Context, teamID uuid.UUID, name *string, isPublic *bool) (*models.Team, error) {
	if name != nil && *name == "" {
		return nil, ErrNameRequired
	}

	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE teams SET
			name = COALESCE($1, name),
			is_public = COALESCE($2, is_public),
			updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, is_public, score, created_at, updated_at
	`, name, isPublic, teamID).Scan(&team.ID, &team.Name, &team.IsPublic, &team.Score, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, notFound(err, ErrTeamNotFound)
	}
	return &team, nil
}

// Delete removes the team and its matches, then recomputes the scores of the
// teams it played against.
func (s *TeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Matches before the team row, the same order Propose takes them in.
	if _, err := tx.Exec(ctx, `
		SELECT id FROM matches
		WHERE inviting_team_id = $1 OR guest_team_id = $1
		ORDER BY id
		FOR UPDATE
	`, teamID); err != nil {
		return fmt.Errorf("failed to lock matches: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT DISTINCT CASE WHEN inviting_team_id = $1 THEN guest_team_id ELSE inviting_team_id END
		FROM matches
		WHERE inviting_team_id = $1 OR guest_team_id = $1
	`, teamID)
	if err != nil {
		return fmt.Errorf("failed to load opponents: %w", err)
	}
	var opponents []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		opponents = append(opponents, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	if _, err := recomputeScores(ctx, tx, opponents...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RecomputeScore rebuilds a single team's cached score.
func (s *TeamService) RecomputeScore(ctx context.Context, teamID uuid.UUID) (int, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	scores, err := recomputeScores(ctx, tx, teamID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return scores[teamID], nil
}

// RecomputeAll rebuilds every team's score, one transaction per team.
func (s *TeamService) RecomputeAll(ctx context.Context) (map[uuid.UUID]int, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT id FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	scores := make(map[uuid.UUID]int, len(ids))
	for _, id := range ids {
		score, err := s.RecomputeScore(ctx, id)
		if err != nil {
			return nil, err
		}
		scores[id] = score
	}
	return scores, nil
}

// Matches returns the team's matches restricted to the given view.
func (s *TeamService) Matches(ctx context.Context, teamID uuid.UUID, filter models.MatchFilter) ([]models.Match, error) {
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}

	var exists bool
	if err := s.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, teamID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTeamNotFound
	}

	query := `SELECT ` + matchColumns + ` FROM matches WHERE (inviting_team_id = $1 OR guest_team_id = $1)`
	switch filter {
	case models.MatchFilterPlayed:
		query += ` AND inviting_score IS NOT NULL AND guest_score IS NOT NULL`
	case models.MatchFilterPlanned:
		query += ` AND inviting_score IS NULL AND guest_score IS NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
