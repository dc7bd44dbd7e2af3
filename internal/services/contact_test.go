package services

import (
	"context"
	"database/sql"
	"testing"

	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContactRepo implements domain.ContactRepository for tests.
type fakeContactRepo struct {
	saved     []*domain.Contact
	createErr error
}

func (f *fakeContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = "contact-" + string(rune('a'+len(f.saved)))
	f.saved = append(f.saved, c)
	return nil
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		in          domain.ContactInput
		createErr   error
		wantMissing []string
		wantErrIs   error
	}{
		{
			name: "required only",
			in:   domain.ContactInput{Name: "Bob", Email: "bob@x.com", Message: "hello"},
		},
		{
			name: "with optional fields",
			in:   domain.ContactInput{Name: "Bob", Email: "bob@x.com", Number: "555-0100", Subject: "tickets", Message: "hello"},
		},
		{
			name:        "missing message",
			in:          domain.ContactInput{Name: "Bob", Email: "bob@x.com"},
			wantMissing: []string{"message"},
		},
		{
			name:        "empty form",
			in:          domain.ContactInput{Subject: "only a subject"},
			wantMissing: []string{"name", "email", "message"},
		},
		{
			name:      "store error",
			in:        domain.ContactInput{Name: "Bob", Email: "bob@x.com", Message: "hello"},
			createErr: sql.ErrConnDone,
			wantErrIs: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{createErr: tt.createErr}
			svc := NewContactService(repo)

			contact, err := svc.Submit(ctx, tt.in)

			if tt.wantMissing != nil {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantMissing, verr.Missing)
				assert.Empty(t, repo.saved, "nothing is stored when a field is missing")
				return
			}
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, contact)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.saved, 1)
			assert.Equal(t, tt.in.Name, contact.Name)
			assert.Equal(t, tt.in.Number, contact.Number)
			assert.Equal(t, tt.in.Subject, contact.Subject)
			assert.False(t, contact.CreatedAt.IsZero())
		})
	}
}

func TestContactService_Submit_twice_creates_two_records(t *testing.T) {
	ctx := context.Background()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	in := domain.ContactInput{Name: "Bob", Email: "bob@x.com", Message: "hello"}

	first, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	second, err := svc.Submit(ctx, in)
	require.NoError(t, err)

	assert.Len(t, repo.saved, 2)
	assert.NotEqual(t, first.ID, second.ID)
}
