package docstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventmanagement/internal/domain"
	"eventmanagement/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.MigrateUp(db))
	return db
}

func countDocuments(t *testing.T, db *sql.DB, collection string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+collection).Scan(&n))
	return n
}

func TestSQLite_users(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewUserRepository(db, sqlite.Dialect{})

	alice := domain.NewUser("alice", "a@x.com", "hash", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, repo.Create(ctx, alice))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "hash", got.Password)
	assert.True(t, alice.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	usernameTaken, emailTaken, err := repo.ExistsByUsernameOrEmail(ctx, "alice", "other@x.com")
	require.NoError(t, err)
	assert.True(t, usernameTaken)
	assert.False(t, emailTaken)

	usernameTaken, emailTaken, err = repo.ExistsByUsernameOrEmail(ctx, "bob", "a@x.com")
	require.NoError(t, err)
	assert.False(t, usernameTaken)
	assert.True(t, emailTaken)

	tests := []struct {
		name    string
		user    *domain.User
		wantKey string
	}{
		{"same username", domain.NewUser("alice", "b@x.com", "h", time.Now()), "username"},
		{"same email", domain.NewUser("bob", "a@x.com", "h", time.Now()), "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			var dup *domain.DuplicateKeyError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.wantKey, dup.Key)
		})
	}
	assert.Equal(t, 1, countDocuments(t, db, Users))
}

func TestSQLite_contacts_are_not_deduplicated(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewContactRepository(db, sqlite.Dialect{})

	for i := 0; i < 2; i++ {
		c := &domain.Contact{Name: "Bob", Email: "bob@x.com", Message: "same message", CreatedAt: time.Now().UTC()}
		require.NoError(t, repo.Create(ctx, c))
	}
	assert.Equal(t, 2, countDocuments(t, db, Contacts))
}

func TestSQLite_invitations(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewInvitationRepository(db, sqlite.Dialect{})

	inv := &domain.Invitation{
		Name: "Ann", Email: "ann@x.com", Venue: "Hall A",
		Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), Time: "18:30", Subject: "Launch",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, inv))

	var venue, date string
	err := db.QueryRow(`SELECT json_extract(doc, '$.venue'), json_extract(doc, '$.date') FROM invitations WHERE id = ?`, inv.ID).Scan(&venue, &date)
	require.NoError(t, err)
	assert.Equal(t, "Hall A", venue)
	assert.Equal(t, "2025-06-14", date)
}
