package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/dimitrije/league-api/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreatePlayer creates a user and its team-less player record
func (f *Fixtures) CreatePlayer(t *testing.T, opts ...UserOption) *models.Player {
	t.Helper()
	f.counter++

	user := &models.User{
		Name:    fmt.Sprintf("Player%d", f.counter),
		Surname: "Test",
		Mail:    fmt.Sprintf("player%d@example.com", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, surname, mail)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, user.Name, user.Surname, user.Mail).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	player := &models.Player{UserID: user.ID, User: user}
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO players (user_id) VALUES ($1)
		RETURNING id, created_at, updated_at
	`, user.ID).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithMail sets the user's mail
func WithMail(mail string) UserOption {
	return func(u *models.User) {
		u.Mail = mail
	}
}

// WithName sets the user's first name and surname
func WithName(name, surname string) UserOption {
	return func(u *models.User) {
		u.Name = name
		u.Surname = surname
	}
}

// CreateTeam creates a public test team with a zero score
func (f *Fixtures) CreateTeam(t *testing.T, opts ...TeamOption) *models.Team {
	t.Helper()
	f.counter++

	team := &models.Team{
		Name:     fmt.Sprintf("Test Team %d", f.counter),
		IsPublic: true,
	}

	for _, opt := range opts {
		opt(team)
	}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO teams (name, is_public)
		VALUES ($1, $2)
		RETURNING id, score, created_at, updated_at
	`, team.Name, team.IsPublic).Scan(&team.ID, &team.Score, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	return team
}

// TeamOption configures a test team
type TeamOption func(*models.Team)

// WithTeamName sets the team name
func WithTeamName(name string) TeamOption {
	return func(t *models.Team) {
		t.Name = name
	}
}

// Private makes the team non-public
func Private() TeamOption {
	return func(t *models.Team) {
		t.IsPublic = false
	}
}

// AddToTeam links a player to a team directly
func (f *Fixtures) AddToTeam(t *testing.T, player *models.Player, team *models.Team) {
	t.Helper()

	_, err := f.db.Pool.Exec(context.Background(), `
		UPDATE players SET team_id = $1 WHERE id = $2
	`, team.ID, player.ID)
	if err != nil {
		t.Fatalf("failed to add player to team: %v", err)
	}
	player.TeamID = &team.ID
}

// CreateMatch creates a PENDING match between two teams
func (f *Fixtures) CreateMatch(t *testing.T, inviting, guest *models.Team) *models.Match {
	t.Helper()

	m := &models.Match{
		Status:         models.MatchStatusPending,
		InvitingTeamID: inviting.ID,
		GuestTeamID:    guest.ID,
	}

	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO matches (status, inviting_team_id, guest_team_id)
		VALUES ($1, $2, $3)
		RETURNING id, version, created_at, updated_at
	`, m.Status, m.InvitingTeamID, m.GuestTeamID).Scan(&m.ID, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	return m
}

// TeamScore reads a team's stored score
func (f *Fixtures) TeamScore(t *testing.T, team *models.Team) int {
	t.Helper()

	var score int
	err := f.db.Pool.QueryRow(context.Background(), `SELECT score FROM teams WHERE id = $1`, team.ID).Scan(&score)
	if err != nil {
		t.Fatalf("failed to read team score: %v", err)
	}
	return score
}

// CountRows counts rows of a table matching a single-argument condition
func (f *Fixtures) CountRows(t *testing.T, table, where string, arg any) int {
	t.Helper()

	var n int
	err := f.db.Pool.QueryRow(context.Background(),
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where), arg).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
