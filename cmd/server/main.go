// Package main implements the portfolio command: the HTTP server for the
// portfolio site plus maintenance commands for migrations and content.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFiles are loaded in order before configuration is read. Variables that
// are already set are never overridden, so .env.local wins over .env.
var envFiles = []string{".env.local", ".env"}

func main() {
	for _, name := range envFiles {
		_ = godotenv.Load(name)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		Long:          "Serves the portfolio pages, the contact endpoint and the resume API from JSON content files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default ./config.yaml if present)")

	root.AddCommand(
		newServeCmd(&configFile),
		newMigrateCmd(&configFile),
		newContentCmd(&configFile),
		newResumeCmd(&configFile),
		newContactsCmd(&configFile),
	)
	return root
}
