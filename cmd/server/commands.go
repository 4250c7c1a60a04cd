package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sjnakib/portfolio/internal/config"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/platform/postgres"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/spf13/cobra"
)

var migrateCommands = []string{
	postgres.MigrateUp,
	postgres.MigrateDown,
	postgres.MigrateStatus,
	postgres.MigrateVersion,
}

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Start the HTTP server. Pending database migrations are applied first when a database is configured.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadAppConfig(*configFile)
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}
}

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(migrateCommands, "|") + "]",
		Short:     "Run database migrations for the contact archive",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadAppConfig(*configFile)
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled() {
				return fmt.Errorf("no database configured: set DATABASE_URL")
			}

			db, err := postgres.Open(cmd.Context(), cfg.Database.URL, cfg.Database.MaxOpenConns, logger)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			return postgres.Migrate(cmd.Context(), db, args[0], logger)
		},
	}
}

func newContentCmd(configFile *string) *cobra.Command {
	var dir string

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the JSON content files",
	}
	contentCmd.PersistentFlags().StringVar(&dir, "dir", "", "content directory (default from configuration)")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every content file and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := contentDir(*configFile, dir)
			if err != nil {
				return err
			}

			if err := content.Check(os.DirFS(resolved)); err != nil {
				return fmt.Errorf("content in %s is invalid:\n%w", resolved, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "content in %s is valid\n", resolved)
			return err
		},
	}

	contentCmd.AddCommand(checkCmd)
	return contentCmd
}

func newResumeCmd(configFile *string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Print the resume JSON served by /api/resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := contentDir(*configFile, dir)
			if err != nil {
				return err
			}

			repo, err := content.NewRepository(os.DirFS(resolved), nil)
			if err != nil {
				return err
			}
			resumes, err := service.NewResumeService(repo, nil)
			if err != nil {
				return err
			}
			resume, err := resumes.Resume(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resume)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "content directory (default from configuration)")
	return cmd
}

func newContactsCmd(configFile *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Print the most recent archived contact submissions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadAppConfig(*configFile)
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled() {
				return fmt.Errorf("no database configured: set DATABASE_URL")
			}

			db, err := postgres.Open(cmd.Context(), cfg.Database.URL, cfg.Database.MaxOpenConns, logger)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			submissions, err := postgres.NewPostgresContactStore(db, logger).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(submissions)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, fmt.Sprintf("number of submissions to show (max %d)", postgres.MaxListLimit))
	return cmd
}

// contentDir returns override when set, otherwise the configured content
// directory. It does not install a logger so command output stays clean.
func contentDir(configFile, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg.Content.Dir, nil
}
