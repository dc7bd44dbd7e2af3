package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

// NewRootCommand builds the command tree. Running it without a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	serve := newServeCommand()
	root := &cobra.Command{
		Use:   "server",
		Short: "Event management server - contact, account, and invitation forms",
		Long: `Event management server accepts the contact, registration, login, and
invitation forms of the event site and stores them in a document store
(PostgreSQL or SQLite, selected with STORE_DRIVER).

Configuration is read from environment variables, and from .env outside production.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: LOG_LEVEL or info)")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newMigrateCommand())
	return root
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
