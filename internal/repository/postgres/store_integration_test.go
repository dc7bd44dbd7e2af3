//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"eventmanagement/internal/domain"
	"eventmanagement/internal/repository/docstore"
	"eventmanagement/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestDocumentStore_Postgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("eventmanagement"),
		tcpostgres.WithUsername("events"),
		tcpostgres.WithPassword("events"),
		tcpostgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})
	require.NoError(t, err)

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(url)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.PingContext(ctx))

	require.NoError(t, postgres.MigrateUp(ctx, db))
	require.NoError(t, postgres.MigrateUp(ctx, db), "second run is a no-op")

	users := docstore.NewUserRepository(db, postgres.Dialect{})
	alice := domain.NewUser("alice", "a@x.com", "hash", time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, users.Create(ctx, alice))

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.True(t, alice.CreatedAt.Equal(got.CreatedAt))

	err = users.Create(ctx, domain.NewUser("alice2", "a@x.com", "hash", time.Now()))
	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Key)

	usernameTaken, emailTaken, err := users.ExistsByUsernameOrEmail(ctx, "alice", "nobody@x.com")
	require.NoError(t, err)
	assert.True(t, usernameTaken)
	assert.False(t, emailTaken)

	contacts := docstore.NewContactRepository(db, postgres.Dialect{})
	for i := 0; i < 2; i++ {
		require.NoError(t, contacts.Create(ctx, &domain.Contact{Name: "Bob", Email: "bob@x.com", Message: "hi"}))
	}
	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n))
	assert.Equal(t, 2, n)

	invitations := docstore.NewInvitationRepository(db, postgres.Dialect{})
	require.NoError(t, invitations.Create(ctx, &domain.Invitation{
		Name: "Ann", Email: "ann@x.com", Venue: "Hall A",
		Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), Time: "18:30", Subject: "Launch",
	}))

	require.NoError(t, postgres.MigrateDown(ctx, db, 1))
}
