package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmanagement/internal/domain"

	"github.com/go-playground/validator/v10"
)

type accountService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	validate *validator.Validate
	now      func() time.Time
}

// NewAccountService creates an AccountService with the given repository and password hasher.
func NewAccountService(userRepo domain.UserRepository, hasher domain.PasswordHasher) domain.AccountService {
	return &accountService{
		userRepo: userRepo,
		hasher:   hasher,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *accountService) Register(ctx context.Context, in domain.RegistrationInput) (*domain.User, error) {
	if err := checkFields(ctx, s.validate, in); err != nil {
		return nil, err
	}

	usernameTaken, emailTaken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if usernameTaken {
		return nil, &domain.DuplicateKeyError{Collection: "users", Key: "username"}
	}
	if emailTaken {
		return nil, &domain.DuplicateKeyError{Collection: "users", Key: "email"}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(in.Username, in.Email, hash, s.now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique index.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, in domain.LoginInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	ok, err := s.hasher.Verify(user.Password, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
