package services

import (
	"context"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/google/uuid"
)

type PlayerService struct {
	db *database.DB
}

func NewPlayerService(db *database.DB) *PlayerService {
	return &PlayerService{db: db}
}

func (s *PlayerService) GetByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	var player models.Player
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.team_id, p.created_at, p.updated_at,
		       u.id, u.name, u.surname, u.mail, u.created_at, u.updated_at
		FROM players p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`, playerID).Scan(
		&player.ID, &player.UserID, &player.TeamID, &player.CreatedAt, &player.UpdatedAt,
		&user.ID, &user.Name, &user.Surname, &user.Mail, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, ErrPlayerNotFound)
	}
	player.User = &user
	return &player, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT p.id, p.user_id, p.team_id, p.created_at, p.updated_at,
		       u.id, u.name, u.surname, u.mail, u.created_at, u.updated_at
		FROM players p
		JOIN users u ON p.user_id = u.id
		WHERE p.team_id = $1
		ORDER BY p.created_at
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var player models.Player
		var user models.User
		if err := rows.Scan(
			&player.ID, &player.UserID, &player.TeamID, &player.CreatedAt, &player.UpdatedAt,
			&user.ID, &user.Name, &user.Surname, &user.Mail, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		player.User = &user
		players = append(players, player)
	}
	return players, rows.Err()
}

// LeaveTeam clears the player's team link. The team itself is untouched.
func (s *PlayerService) LeaveTeam(ctx context.Context, playerID uuid.UUID) error {
	var teamID *uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `SELECT team_id FROM players WHERE id = $1`, playerID).Scan(&teamID)
	if err != nil {
		return notFound(err, ErrPlayerNotFound)
	}
	if teamID == nil {
		return ErrNotOnTeam
	}

	_, err = s.db.Pool.Exec(ctx, `
		UPDATE players SET team_id = NULL, updated_at = NOW() WHERE id = $1
	`, playerID)
	return err
}
