package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/google/uuid"
)

// InviteService manages player invites (team → player) and join requests
// (player → team). Both end by setting the player's team.
type InviteService struct {
	db *database.DB
}

func NewInviteService(db *database.DB) *InviteService {
	return &InviteService{db: db}
}

func (s *InviteService) CreateInvite(ctx context.Context, teamID, playerID uuid.UUID, expireDate *time.Time) (*models.PlayerInvite, error) {
	if err := s.teamExists(ctx, teamID); err != nil {
		return nil, err
	}

	var currentTeam *uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `SELECT team_id FROM players WHERE id = $1`, playerID).Scan(&currentTeam)
	if err != nil {
		return nil, notFound(err, ErrPlayerNotFound)
	}
	if currentTeam != nil && *currentTeam == teamID {
		return nil, ErrAlreadyOnTeam
	}

	var invite models.PlayerInvite
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO player_invites (player_id, team_id, expire_date)
		VALUES ($1, $2, $3)
		RETURNING id, player_id, team_id, expire_date, created_at
	`, playerID, teamID, expireDate).Scan(&invite.ID, &invite.PlayerID, &invite.TeamID, &invite.ExpireDate, &invite.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return &invite, nil
}

func (s *InviteService) GetPlayerInvites(ctx context.Context, playerID uuid.UUID) ([]models.PlayerInvite, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, player_id, team_id, expire_date, created_at
		FROM player_invites
		WHERE player_id = $1
		ORDER BY created_at DESC
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invites := []models.PlayerInvite{}
	for rows.Next() {
		var invite models.PlayerInvite
		if err := rows.Scan(&invite.ID, &invite.PlayerID, &invite.TeamID, &invite.ExpireDate, &invite.CreatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}
	return invites, rows.Err()
}

// AcceptInvite moves the player onto the inviting team and consumes the invite.
func (s *InviteService) AcceptInvite(ctx context.Context, inviteID uuid.UUID) (*models.Player, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var invite models.PlayerInvite
	err = tx.QueryRow(ctx, `
		DELETE FROM player_invites WHERE id = $1
		RETURNING id, player_id, team_id
	`, inviteID).Scan(&invite.ID, &invite.PlayerID, &invite.TeamID)
	if err != nil {
		return nil, notFound(err, ErrInviteNotFound)
	}

	player, err := assignTeam(ctx, tx, invite.PlayerID, invite.TeamID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return player, nil
}

func (s *InviteService) DeclineInvite(ctx context.Context, inviteID uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM player_invites WHERE id = $1`, inviteID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrInviteNotFound
	}
	return nil
}

// CreateRequest files a join request. An unknown player is a validation
// failure of the request body, while an unknown team is a missing resource.
func (s *InviteService) CreateRequest(ctx context.Context, teamID, playerID uuid.UUID, message *string, expireDate *time.Time) (*models.TeamRequest, error) {
	if err := s.teamExists(ctx, teamID); err != nil {
		return nil, err
	}

	var exists bool
	if err := s.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)`, playerID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidPlayer
	}

	var req models.TeamRequest
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO team_requests (player_id, team_id, status, message, expire_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, player_id, team_id, status, message, expire_date, created_at, updated_at
	`, playerID, teamID, models.RequestStatusPending, message, expireDate).Scan(
		&req.ID, &req.PlayerID, &req.TeamID, &req.Status, &req.Message, &req.ExpireDate, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return &req, nil
}

func (s *InviteService) GetTeamPendingRequests(ctx context.Context, teamID uuid.UUID) ([]models.TeamRequest, error) {
	if err := s.teamExists(ctx, teamID); err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, player_id, team_id, status, message, expire_date, created_at, updated_at
		FROM team_requests
		WHERE team_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, teamID, models.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.TeamRequest{}
	for rows.Next() {
		var req models.TeamRequest
		if err := rows.Scan(
			&req.ID, &req.PlayerID, &req.TeamID, &req.Status, &req.Message, &req.ExpireDate, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// AcceptRequest accepts a PENDING request. Any other status is a conflict and
// leaves the player untouched.
func (s *InviteService) AcceptRequest(ctx context.Context, requestID uuid.UUID) (*models.Player, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := lockRequest(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		return nil, ErrRequestNotPending
	}

	player, err := assignTeam(ctx, tx, req.PlayerID, req.TeamID)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE team_requests SET status = $1, updated_at = NOW() WHERE id = $2
	`, models.RequestStatusAccepted, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return player, nil
}

func (s *InviteService) DeclineRequest(ctx context.Context, requestID uuid.UUID) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := lockRequest(ctx, tx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestStatusPending {
		return ErrRequestNotPending
	}

	_, err = tx.Exec(ctx, `
		UPDATE team_requests SET status = $1, updated_at = NOW() WHERE id = $2
	`, models.RequestStatusDeclined, requestID)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *InviteService) teamExists(ctx context.Context, teamID uuid.UUID) error {
	var exists bool
	if err := s.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, teamID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrTeamNotFound
	}
	return nil
}

func lockRequest(ctx context.Context, q database.Querier, requestID uuid.UUID) (*models.TeamRequest, error) {
	var req models.TeamRequest
	err := q.QueryRow(ctx, `
		SELECT id, player_id, team_id, status FROM team_requests WHERE id = $1 FOR UPDATE
	`, requestID).Scan(&req.ID, &req.PlayerID, &req.TeamID, &req.Status)
	if err != nil {
		return nil, notFound(err, ErrRequestNotFound)
	}
	return &req, nil
}

func assignTeam(ctx context.Context, q database.Querier, playerID, teamID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := q.QueryRow(ctx, `
		UPDATE players SET team_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, team_id, created_at, updated_at
	`, teamID, playerID).Scan(&player.ID, &player.UserID, &player.TeamID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		return nil, notFound(err, ErrPlayerNotFound)
	}
	return &player, nil
}
