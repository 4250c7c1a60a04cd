package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/sjnakib/portfolio/internal/config"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/mail"
	"github.com/sjnakib/portfolio/internal/platform/postgres"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/sjnakib/portfolio/internal/store"
	"github.com/sjnakib/portfolio/internal/web"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when no database is configured.
	db           *sql.DB
	contactStore store.ContactStore

	content  *content.Repository
	renderer *web.Renderer
	mailer   mail.Sender

	contactService service.ContactService
	resumeService  service.ResumeService
}

// newApplication loads the content, connects the optional contact archive
// and builds the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.content, err = content.NewRepository(os.DirFS(cfg.Content.Dir), logger)
	if err != nil {
		return nil, err
	}

	app.renderer, err = web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	if cfg.Database.Enabled() {
		if err := app.setupArchive(ctx); err != nil {
			return nil, err
		}
	} else {
		logger.Info("no database configured, contact submissions will not be archived")
	}

	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP is not fully configured, contact submissions will fail until it is")
	}
	app.mailer = mail.NewSMTPSender(app.content, logger)

	app.contactService, err = service.NewContactService(app.mailer, app.contactStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	app.resumeService, err = service.NewResumeService(app.content, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create resume service: %w", err)
	}

	logger.Info("application initialized",
		slog.Int("projects", len(app.content.Projects())),
		slog.Bool("archive_enabled", app.contactStore != nil))
	return app, nil
}

// setupArchive connects to the database and applies pending migrations.
func (app *application) setupArchive(ctx context.Context) error {
	db, err := postgres.Open(ctx, app.config.Database.URL, app.config.Database.MaxOpenConns, app.logger)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, app.logger); err != nil {
		_ = db.Close()
		return err
	}

	app.db = db
	app.contactStore = postgres.NewPostgresContactStore(db, app.logger)
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
