package domain

import (
	"context"
	"time"
)

// User is a registered account. Password holds the bcrypt hash, never plaintext.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(username, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: createdAt,
	}
}

// RegistrationInput is the registration form.
type RegistrationInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the login form. Absent fields simply fail authentication.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordHasher hashes passwords and verifies plaintext against a stored hash.
// Implementations embed a random salt in the hash.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// a malformed hash or internal failure is returned as an error.
	Verify(hash, password string) (bool, error)
}

// UserRepository defines the interface for the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	// ExistsByUsernameOrEmail returns which unique keys are already taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)
}

// AccountService defines registration and credential checks.
type AccountService interface {
	Register(ctx context.Context, in RegistrationInput) (*User, error)
	Login(ctx context.Context, in LoginInput) (*User, error)
}
