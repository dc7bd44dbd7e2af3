package domain

import (
	"context"
	"time"
)

// Contact is a contact-form submission.
// swagger:model Contact
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Number    string    `json:"number,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is the contact form. Number and subject are optional.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Number  string `json:"number"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactRepository defines the interface for the contacts collection.
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
}

// ContactService stores contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*Contact, error)
}
