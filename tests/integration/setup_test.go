package integration

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/dimitrije/league-api/tests/testutil"
)

// shared is nil in -short runs; every test skips before touching it.
var shared *testutil.TestDB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	tdb, err := testutil.StartTestDB(ctx)
	if err != nil {
		log.Fatalf("failed to start test database: %v", err)
	}
	shared = tdb

	code := m.Run()

	if err := tdb.Terminate(ctx); err != nil {
		log.Printf("failed to terminate test database: %v", err)
	}
	os.Exit(code)
}

// setupTest hands out the shared database with all tables emptied.
func setupTest(t *testing.T) *testutil.TestDB {
	t.Helper()
	shared.CleanTables(t)
	return shared
}
