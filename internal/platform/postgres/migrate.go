package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migration commands accepted by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

var gooseSetup sync.Mutex

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level and does not exit; goose errors are returned to
// the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Migrate runs a goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "migrations"), slog.String("command", command))

	// goose keeps its configuration in package globals.
	gooseSetup.Lock()
	defer gooseSetup.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, migrationsDir)
	case MigrateDown:
		err = goose.DownContext(ctx, db, migrationsDir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, migrationsDir)
	case MigrateVersion:
		err = goose.VersionContext(ctx, db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migration command completed")
	return nil
}
