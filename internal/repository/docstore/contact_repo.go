package docstore

import (
	"context"
	"database/sql"
	"time"

	"eventmanagement/internal/domain"
)

type contactDocument struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Number    string    `json:"number,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type contactRepository struct {
	contacts collection
}

// NewContactRepository returns a ContactRepository over the contacts collection.
func NewContactRepository(db *sql.DB, dialect Dialect) domain.ContactRepository {
	return &contactRepository{contacts: collection{db: db, dialect: dialect, name: Contacts}}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return r.contacts.insert(ctx, c.ID, contactDocument{
		Name:      c.Name,
		Email:     c.Email,
		Number:    c.Number,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	})
}
