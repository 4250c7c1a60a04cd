package main

import (
	"fmt"
	"log/slog"

	"github.com/sjnakib/portfolio/internal/config"
	"github.com/sjnakib/portfolio/internal/platform/logger"
	"github.com/sjnakib/portfolio/internal/platform/postgres"
)

// loadAppConfig loads configuration and installs the configured logger as
// the default.
func loadAppConfig(configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("content_dir", cfg.Content.Dir),
		slog.Bool("content_watch", cfg.Content.Watch))

	if cfg.Database.Enabled() {
		l.Debug("database configuration",
			slog.String("url", postgres.MaskDatabaseURL(cfg.Database.URL)))
	}
	l.Debug("smtp configuration", slog.Bool("configured", cfg.SMTP.Configured()))

	return cfg, l, nil
}
