package docstore

import (
	"context"
	"database/sql"
	"time"

	"eventmanagement/internal/domain"
)

type invitationDocument struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Venue     string    `json:"venue"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

type invitationRepository struct {
	invitations collection
}

// NewInvitationRepository returns an InvitationRepository over the invitations collection.
func NewInvitationRepository(db *sql.DB, dialect Dialect) domain.InvitationRepository {
	return &invitationRepository{invitations: collection{db: db, dialect: dialect, name: Invitations}}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	if inv.ID == "" {
		inv.ID = newID()
	}
	return r.invitations.insert(ctx, inv.ID, invitationDocument{
		Name:      inv.Name,
		Email:     inv.Email,
		Venue:     inv.Venue,
		Date:      inv.Date.Format(domain.DateLayout),
		Time:      inv.Time,
		Subject:   inv.Subject,
		CreatedAt: inv.CreatedAt,
	})
}
