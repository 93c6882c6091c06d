package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(60) NOT NULL,
		surname VARCHAR(60) NOT NULL,
		mail VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(120) NOT NULL,
		is_public BOOLEAN NOT NULL DEFAULT TRUE,
		score INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS players (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		team_id UUID REFERENCES teams(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
		inviting_team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		guest_team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		inviting_score INTEGER,
		guest_score INTEGER,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		expires_at TIMESTAMP WITH TIME ZONE,
		suggested_at TIMESTAMP WITH TIME ZONE,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CHECK (inviting_team_id <> guest_team_id),
		CHECK (status IN ('PENDING', 'ONGOING', 'COMPLETED'))
	)`,

	// One row per (match, side): the host and guest proposition slots.
	`CREATE TABLE IF NOT EXISTS score_propositions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		side VARCHAR(5) NOT NULL CHECK (side IN ('host', 'guest')),
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		inviting_score INTEGER NOT NULL CHECK (inviting_score >= 0),
		guest_score INTEGER NOT NULL CHECK (guest_score >= 0),
		note TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(match_id, side)
	)`,

	`CREATE TABLE IF NOT EXISTS score_proposition_history (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		side VARCHAR(5) NOT NULL,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		inviting_score INTEGER NOT NULL,
		guest_score INTEGER NOT NULL,
		note TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT clock_timestamp()
	)`,

	`CREATE TABLE IF NOT EXISTS match_events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		event_type VARCHAR(100) NOT NULL,
		description TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT clock_timestamp()
	)`,

	`CREATE TABLE IF NOT EXISTS player_invites (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		expire_date TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS team_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
		message TEXT,
		expire_date TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CHECK (status IN ('PENDING', 'ACCEPTED', 'DECLINED'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_inviting_team_id ON matches(inviting_team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_guest_team_id ON matches(guest_team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_score_proposition_history_match_id ON score_proposition_history(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_match_events_match_id ON match_events(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_player_invites_player_id ON player_invites(player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_requests_team_id ON team_requests(team_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
