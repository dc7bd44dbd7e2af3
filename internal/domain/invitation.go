package domain

import (
	"context"
	"time"
)

// DateLayout is the calendar date format of an invitation date.
const DateLayout = "2006-01-02"

// Invitation is an event invitation submission.
// swagger:model Invitation
type Invitation struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Venue   string    `json:"venue"`
	Date    time.Time `json:"date"`
	Time    string    `json:"time"`
	Subject string    `json:"subject"`
	// CreatedAt is when the submission was stored, not the event date.
	CreatedAt time.Time `json:"createdAt"`
}

// InvitationInput is the invitation form. Date is YYYY-MM-DD or RFC 3339.
type InvitationInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Venue   string `json:"venue" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

// InvitationRepository defines the interface for the invitations collection.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
}

// InvitationService stores invitation submissions.
type InvitationService interface {
	Submit(ctx context.Context, in InvitationInput) (*Invitation, error)
}
