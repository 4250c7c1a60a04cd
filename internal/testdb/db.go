package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/sjnakib/portfolio/internal/ciutil"
	"github.com/sjnakib/portfolio/internal/platform/postgres"
)

const setupTimeout = 30 * time.Second

// GetTestDatabaseURL returns the configured test database URL, or "".
func GetTestDatabaseURL() string {
	return ciutil.GetEnvWithFallbacks(ciutil.TestDatabaseURLVars, "", slog.Default())
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// OpenTestDB connects to the test database and applies all migrations. The
// connection is closed when the test ends.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatalf("no test database configured in CI: set one of %v", ciutil.TestDatabaseURLVars)
		}
		t.Skip("no test database configured; skipping PostgreSQL tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, 4, nil)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", postgres.MaskDatabaseURL(dbURL), err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, nil); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
