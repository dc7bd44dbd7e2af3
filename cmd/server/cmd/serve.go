package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanagement/config"
	"eventmanagement/internal/adapters/auth"
	deliveryhttp "eventmanagement/internal/delivery/http"
	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/metrics"
	"eventmanagement/internal/repository"
	"eventmanagement/internal/services"

	"github.com/spf13/cobra"
)

const (
	connectTimeout  = 10 * time.Second
	retryInterval   = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serverPort string

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and begin accepting form submissions.

The server will:
- Load configuration from environment variables (and .env outside production)
- Connect to the document store and apply pending migrations
- Serve the form endpoints, /healthz, /metrics, /swagger/, and static files
- Handle graceful shutdown on SIGINT/SIGTERM

A store that cannot be reached at startup is logged and the server keeps
running; form submissions fail with 500 meanwhile. The connection is retried
every 15 seconds and pending migrations are applied once the store answers.

Examples:
  # Start with configuration from the environment
  server serve

  # Start on another port with an SQLite file
  STORE_DRIVER=sqlite DATABASE_URL=data/events.db server serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
	cmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 3000)")
	return cmd
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	if logLevel != "" {
		if err := os.Setenv("LOG_LEVEL", logLevel); err != nil {
			return nil, nil, err
		}
	}
	return cfg, config.NewLogger(), nil
}

func runServer() error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("starting server", "env", cfg.Environment, "store", cfg.StoreDriver)

	store, err := repository.Open(cfg.StoreDriver, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retryDone := make(chan struct{})
	if connectStore(ctx, store, logger) {
		close(retryDone)
	} else {
		go func() {
			defer close(retryDone)
			awaitStore(ctx, store, logger, retryInterval)
		}()
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, logger, store),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stop()
		<-retryDone
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	<-retryDone

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// connectStore pings the store and applies migrations when it answers.
// Failures are logged only; the server runs without a reachable store.
func connectStore(ctx context.Context, store *repository.Store, logger *slog.Logger) bool {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		metrics.StoreUp.Set(0)
		logger.Error("failed to connect to document store", "driver", store.Driver, "err", err)
		return false
	}
	metrics.StoreUp.Set(1)
	logger.Info("connected to document store", "driver", store.Driver)

	if err := store.MigrateUp(ctx); err != nil {
		logger.Error("migrations failed", "err", err)
		return true
	}
	logger.Info("migrations applied")
	return true
}

// awaitStore retries connectStore every interval until the store answers
// or ctx is done.
func awaitStore(ctx context.Context, store *repository.Store, logger *slog.Logger, interval time.Duration) bool {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		if connectStore(ctx, store, logger) {
			return true
		}
	}
}

func newHandler(cfg *config.Config, logger *slog.Logger, store *repository.Store) http.Handler {
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	mux := deliveryhttp.NewRouter(cfg.StaticDir, deliveryhttp.Controllers{
		Account:    controllers.NewAccountController(logger, services.NewAccountService(store.Users, hasher)),
		Contact:    controllers.NewContactController(logger, services.NewContactService(store.Contacts)),
		Invitation: controllers.NewInvitationController(logger, services.NewInvitationService(store.Invitations)),
		Health:     controllers.NewHealthController(logger, store),
	})
	return deliveryhttp.NewHandler(logger, cfg.AllowedOrigins, mux)
}
