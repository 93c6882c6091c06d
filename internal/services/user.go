package services

import (
	"context"
	"fmt"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/google/uuid"
)

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

// CreatePlayer registers a user together with their (team-less) player record.
func (s *UserService) CreatePlayer(ctx context.Context, name, surname, mail string) (*models.Player, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var user models.User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (name, surname, mail)
		VALUES ($1, $2, $3)
		RETURNING id, name, surname, mail, created_at, updated_at
	`, name, surname, mail).Scan(&user.ID, &user.Name, &user.Surname, &user.Mail, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var player models.Player
	err = tx.QueryRow(ctx, `
		INSERT INTO players (user_id)
		VALUES ($1)
		RETURNING id, user_id, team_id, created_at, updated_at
	`, user.ID).Scan(&player.ID, &player.UserID, &player.TeamID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	player.User = &user
	return &player, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, surname, mail, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Surname, &user.Mail, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}
