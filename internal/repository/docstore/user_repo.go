package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type userDocument struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

type userRepository struct {
	users collection
}

// NewUserRepository returns a UserRepository over the users collection.
func NewUserRepository(db *sql.DB, dialect Dialect) domain.UserRepository {
	return &userRepository{users: collection{db: db, dialect: dialect, name: Users}}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = newID()
	}
	doc := userDocument{Username: u.Username, Email: u.Email, Password: u.Password, CreatedAt: u.CreatedAt}
	if err := r.users.insert(ctx, u.ID, doc); err != nil {
		if dup := r.users.duplicateKey(err, "username", "email"); dup != nil {
			return dup
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDocument
	id, err := r.users.findOne(ctx, "username", username, &doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:        id,
		Username:  doc.Username,
		Email:     doc.Email,
		Password:  doc.Password,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, bool, error) {
	d := r.users.dialect
	query := fmt.Sprintf(`
		SELECT
			EXISTS (SELECT 1 FROM users WHERE %s = %s),
			EXISTS (SELECT 1 FROM users WHERE %s = %s)
	`, d.Field("username"), d.Placeholder(1), d.Field("email"), d.Placeholder(2))
	var usernameTaken, emailTaken bool
	if err := r.users.db.QueryRowContext(ctx, query, username, email).Scan(&usernameTaken, &emailTaken); err != nil {
		return false, false, err
	}
	return usernameTaken, emailTaken, nil
}
