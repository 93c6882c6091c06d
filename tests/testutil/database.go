package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/league-api/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// leagueTables is ordered children first.
var leagueTables = []string{
	"score_proposition_history",
	"score_propositions",
	"match_events",
	"matches",
	"team_requests",
	"player_invites",
	"players",
	"teams",
	"users",
}

// TestDB is a migrated Postgres running in a throwaway container.
type TestDB struct {
	DB        *database.DB
	Container testcontainers.Container
}

// StartTestDB boots postgres, connects with a pool sized for concurrent
// proposal tests and applies the migrations. The caller must Terminate it.
func StartTestDB(ctx context.Context) (*TestDB, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "league",
				"POSTGRES_PASSWORD": "league",
				"POSTGRES_DB":       "league_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	tdb := &TestDB{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		_ = tdb.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = tdb.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://league:league@%s:%s/league_test?sslmode=disable", host, port.Port())
	tdb.DB, err = database.New(ctx, dsn, 10)
	if err != nil {
		_ = tdb.Terminate(ctx)
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := tdb.DB.Migrate(ctx); err != nil {
		_ = tdb.Terminate(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return tdb, nil
}

// Terminate closes the pool and removes the container.
func (tdb *TestDB) Terminate(ctx context.Context) error {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
	return tdb.Container.Terminate(ctx)
}

// CleanTables empties every league table so each test starts from scratch.
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	for _, table := range leagueTables {
		_, err := tdb.DB.Pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
