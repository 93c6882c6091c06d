package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
	"github.com/dimitrije/league-api/internal/scoring"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dimitrije/league-api/internal/services"

type CreateMatchParams struct {
	InvitingTeamID uuid.UUID
	GuestTeamID    uuid.UUID
	CreatedAt      *time.Time
	ExpiresAt      *time.Time
	SuggestedAt    *time.Time
}

type ProposeParams struct {
	MatchID       uuid.UUID
	TeamID        uuid.UUID
	MyScore       int
	OpponentScore int
	Note          *string
}

type MatchService struct {
	db     *database.DB
	tracer trace.Tracer
}

func NewMatchService(db *database.DB) *MatchService {
	return &MatchService{db: db, tracer: otel.Tracer(tracerName)}
}

// Create opens a PENDING match between two existing teams.
func (s *MatchService) Create(ctx context.Context, p CreateMatchParams) (*models.Match, error) {
	if err := scoring.ValidatePairing(p.InvitingTeamID, p.GuestTeamID); err != nil {
		return nil, err
	}

	var found int
	err := s.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM teams WHERE id = $1 OR id = $2
	`, p.InvitingTeamID, p.GuestTeamID).Scan(&found)
	if err != nil {
		return nil, fmt.Errorf("failed to check teams: %w", err)
	}
	if found != 2 {
		return nil, ErrTeamNotFound
	}

	var m models.Match
	err = scanMatch(s.db.Pool.QueryRow(ctx, `
		INSERT INTO matches (status, inviting_team_id, guest_team_id, created_at, expires_at, suggested_at)
		VALUES ($1, $2, $3, COALESCE($4, NOW()), $5, $6)
		RETURNING `+matchColumns,
		models.MatchStatusPending, p.InvitingTeamID, p.GuestTeamID, p.CreatedAt, p.ExpiresAt, p.SuggestedAt,
	), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &m, nil
}

// GetByID loads a match with both proposition slots.
func (s *MatchService) GetByID(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := scanMatch(s.db.Pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, matchID), &m)
	if err != nil {
		return nil, notFound(err, ErrMatchNotFound)
	}
	if err := loadSlots(ctx, s.db.Pool, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Start moves a PENDING match to ONGOING.
func (s *MatchService) Start(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	m, err := lockMatch(ctx, tx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchStatusPending {
		return nil, ErrMatchNotPending
	}

	err = tx.QueryRow(ctx, `
		UPDATE matches SET status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2
		RETURNING status, version, updated_at
	`, models.MatchStatusOngoing, matchID).Scan(&m.Status, &m.Version, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	if err := loadSlots(ctx, tx, m); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return m, nil
}

// Propose records a team's claim in its own slot and settles the match when
// both slots agree. The match row stays locked for the whole read-compare-write
// sequence, so concurrent proposals on one match are applied one at a time.
// Disagreement is a normal outcome, not an error.
func (s *MatchService) Propose(ctx context.Context, p ProposeParams) (m *models.Match, err error) {
	ctx, span := s.tracer.Start(ctx, "MatchService.Propose", trace.WithAttributes(
		attribute.String("match.id", p.MatchID.String()),
		attribute.String("team.id", p.TeamID.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := scoring.ValidateScores(p.MyScore, p.OpponentScore); err != nil {
		return nil, err
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	m, err = lockMatch(ctx, tx, p.MatchID)
	if err != nil {
		return nil, err
	}

	side, err := scoring.SideOf(m, p.TeamID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("match.side", string(side)))

	claim := scoring.Canonicalize(side, p.MyScore, p.OpponentScore)

	var own models.ScoreProposition
	err = scanProposition(tx.QueryRow(ctx, `
		INSERT INTO score_propositions (match_id, side, team_id, inviting_score, guest_score, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (match_id, side) DO UPDATE SET
			inviting_score = EXCLUDED.inviting_score,
			guest_score = EXCLUDED.guest_score,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING `+propositionColumns,
		m.ID, string(side), p.TeamID, claim.InvitingScore, claim.GuestScore, p.Note,
	), &own)
	if err != nil {
		return nil, fmt.Errorf("failed to store proposition: %w", err)
	}
	m.SetSlot(side, &own)

	_, err = tx.Exec(ctx, `
		INSERT INTO score_proposition_history (match_id, side, team_id, inviting_score, guest_score, note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, string(side), p.TeamID, claim.InvitingScore, claim.GuestScore, p.Note)
	if err != nil {
		return nil, fmt.Errorf("failed to record proposition history: %w", err)
	}

	other := models.SideGuest
	if side == models.SideGuest {
		other = models.SideHost
	}
	opponent, err := loadSlot(ctx, tx, m.ID, other)
	if err != nil {
		return nil, err
	}
	m.SetSlot(other, opponent)

	outcome := scoring.Settle(m)
	outcome.Apply(m)
	span.SetAttributes(attribute.Bool("match.agreed", outcome.Agreed))

	err = tx.QueryRow(ctx, `
		UPDATE matches SET inviting_score = $1, guest_score = $2, status = $3,
			version = version + 1, updated_at = NOW()
		WHERE id = $4
		RETURNING version, updated_at
	`, m.InvitingScore, m.GuestScore, m.Status, m.ID).Scan(&m.Version, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	if _, err := recomputeScores(ctx, tx, m.InvitingTeamID, m.GuestTeamID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return m, nil
}

// History returns every claim made on the match, oldest first.
func (s *MatchService) History(ctx context.Context, matchID uuid.UUID) ([]models.ScoreProposition, error) {
	if err := s.ensureExists(ctx, matchID); err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, match_id, side, team_id, inviting_score, guest_score, note, created_at, created_at
		FROM score_proposition_history
		WHERE match_id = $1
		ORDER BY created_at, id
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.ScoreProposition{}
	for rows.Next() {
		var p models.ScoreProposition
		if err := scanProposition(rows, &p); err != nil {
			return nil, err
		}
		history = append(history, p)
	}
	return history, rows.Err()
}

func (s *MatchService) AddEvent(ctx context.Context, matchID uuid.UUID, eventType string, description *string) (*models.MatchEvent, error) {
	if eventType == "" {
		return nil, ErrEventTypeMissing
	}
	if err := s.ensureExists(ctx, matchID); err != nil {
		return nil, err
	}

	var event models.MatchEvent
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO match_events (match_id, event_type, description)
		VALUES ($1, $2, $3)
		RETURNING id, match_id, event_type, description, created_at
	`, matchID, eventType, description).Scan(&event.ID, &event.MatchID, &event.EventType, &event.Description, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create match event: %w", err)
	}
	return &event, nil
}

func (s *MatchService) Events(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error) {
	if err := s.ensureExists(ctx, matchID); err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, match_id, event_type, description, created_at
		FROM match_events
		WHERE match_id = $1
		ORDER BY created_at, id
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.MatchEvent{}
	for rows.Next() {
		var e models.MatchEvent
		if err := rows.Scan(&e.ID, &e.MatchID, &e.EventType, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *MatchService) ensureExists(ctx context.Context, matchID uuid.UUID) error {
	var exists bool
	if err := s.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM matches WHERE id = $1)`, matchID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrMatchNotFound
	}
	return nil
}

func lockMatch(ctx context.Context, q database.Querier, matchID uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := scanMatch(q.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1 FOR UPDATE`, matchID), &m)
	if err != nil {
		return nil, notFound(err, ErrMatchNotFound)
	}
	return &m, nil
}

func loadSlot(ctx context.Context, q database.Querier, matchID uuid.UUID, side models.Side) (*models.ScoreProposition, error) {
	var p models.ScoreProposition
	err := scanProposition(q.QueryRow(ctx, `
		SELECT `+propositionColumns+`
		FROM score_propositions WHERE match_id = $1 AND side = $2
	`, matchID, string(side)), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s proposition: %w", side, err)
	}
	return &p, nil
}

func loadSlots(ctx context.Context, q database.Querier, m *models.Match) error {
	for _, side := range []models.Side{models.SideHost, models.SideGuest} {
		p, err := loadSlot(ctx, q, m.ID, side)
		if err != nil {
			return err
		}
		m.SetSlot(side, p)
	}
	return nil
}
