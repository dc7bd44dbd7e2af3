package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"

	"github.com/go-playground/validator/v10"
)

type contactService struct {
	contactRepo domain.ContactRepository
	validate    *validator.Validate
	now         func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(contactRepo domain.ContactRepository) domain.ContactService {
	return &contactService{
		contactRepo: contactRepo,
		validate:    newValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a contact form. Every call creates a new record.
func (s *contactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	if err := checkFields(ctx, s.validate, in); err != nil {
		return nil, err
	}
	contact := &domain.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Number:    in.Number,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}
	return contact, nil
}
