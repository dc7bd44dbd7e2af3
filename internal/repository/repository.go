// Package repository selects and opens the document store backend.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"eventmanagement/config"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/repository/docstore"
	"eventmanagement/internal/repository/postgres"
	"eventmanagement/internal/repository/sqlite"
)

// Store is an opened document store and its collections.
type Store struct {
	Driver      string
	DB          *sql.DB
	Dialect     docstore.Dialect
	Users       domain.UserRepository
	Contacts    domain.ContactRepository
	Invitations domain.InvitationRepository
}

// Open opens the store for driver at url. Opening does not require the
// database to be reachable; use Ping for that.
func Open(driver, url string) (*Store, error) {
	var (
		db      *sql.DB
		dialect docstore.Dialect
		err     error
	)
	switch driver {
	case config.DriverPostgres:
		db, err = postgres.Open(url)
		dialect = postgres.Dialect{}
	case config.DriverSQLite:
		db, err = sqlite.Open(url)
		dialect = sqlite.Dialect{}
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	return &Store{
		Driver:      driver,
		DB:          db,
		Dialect:     dialect,
		Users:       docstore.NewUserRepository(db, dialect),
		Contacts:    docstore.NewContactRepository(db, dialect),
		Invitations: docstore.NewInvitationRepository(db, dialect),
	}, nil
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// MigrateUp creates or upgrades the collections.
func (s *Store) MigrateUp(ctx context.Context) error {
	if s.Driver == config.DriverSQLite {
		return sqlite.MigrateUp(s.DB)
	}
	return postgres.MigrateUp(ctx, s.DB)
}

// MigrateDown rolls back steps migrations.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	if s.Driver == config.DriverSQLite {
		return sqlite.MigrateDown(s.DB, steps)
	}
	return postgres.MigrateDown(ctx, s.DB, steps)
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
