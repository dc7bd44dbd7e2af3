package cmd

import (
	"context"
	"fmt"

	"eventmanagement/internal/repository"

	"github.com/spf13/cobra"
)

var migrateSteps int

func newMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back document store migrations",
		Long: `Manage the collections of the document store selected by STORE_DRIVER
and DATABASE_URL. The server also applies pending migrations at startup.`,
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, store *repository.Store) error {
				if err := store.MigrateUp(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if migrateSteps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withStore(cmd.Context(), func(ctx context.Context, store *repository.Store) error {
				if err := store.MigrateDown(ctx, migrateSteps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", migrateSteps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back")

	migrate.AddCommand(up, down)
	return migrate
}

func withStore(ctx context.Context, fn func(context.Context, *repository.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := repository.Open(cfg.StoreDriver, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("connect to document store: %w", err)
	}
	logger.Info("connected to document store", "driver", store.Driver)
	return fn(ctx, store)
}
