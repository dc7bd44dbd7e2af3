package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"

	"github.com/go-playground/validator/v10"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	validate       *validator.Validate
	now            func() time.Time
}

// NewInvitationService creates an InvitationService backed by the given repository.
func NewInvitationService(invitationRepo domain.InvitationRepository) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		validate:       newValidator(),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *invitationService) Submit(ctx context.Context, in domain.InvitationInput) (*domain.Invitation, error) {
	if err := checkFields(ctx, s.validate, in); err != nil {
		return nil, err
	}
	date, ok := parseDate(in.Date)
	if !ok {
		return nil, &domain.ValidationError{Invalid: []string{"date"}}
	}
	inv := &domain.Invitation{
		Name:      in.Name,
		Email:     in.Email,
		Venue:     in.Venue,
		Date:      date,
		Time:      in.Time,
		Subject:   in.Subject,
		CreatedAt: s.now(),
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save invitation: %w", err)
	}
	return inv, nil
}
