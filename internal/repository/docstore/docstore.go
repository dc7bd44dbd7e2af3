// Package docstore persists records as JSON documents in named collections.
// Each collection is a table of (id, doc); the SQL specifics of a backend
// are supplied by a Dialect.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"eventmanagement/internal/domain"

	"github.com/google/uuid"
)

// Collection names.
const (
	Users       = "users"
	Contacts    = "contacts"
	Invitations = "invitations"
)

// Dialect adapts document queries to a SQL backend.
type Dialect interface {
	// Placeholder returns the bind parameter for the n-th argument, starting at 1.
	Placeholder(n int) string
	// Field returns an expression selecting the top-level text field of the doc column.
	Field(name string) string
	// UniqueViolation reports whether err is a unique constraint violation,
	// along with the driver's description of the violated constraint.
	UniqueViolation(err error) (detail string, ok bool)
}

type collection struct {
	db      *sql.DB
	dialect Dialect
	name    string
}

func (c *collection) insert(ctx context.Context, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.name, err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (%s, %s)`,
		c.name, c.dialect.Placeholder(1), c.dialect.Placeholder(2))
	_, err = c.db.ExecContext(ctx, query, id, string(raw))
	return err
}

// findOne decodes the single document whose field equals value into dest
// and returns its id. It returns sql.ErrNoRows when nothing matches.
func (c *collection) findOne(ctx context.Context, field, value string, dest any) (string, error) {
	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE %s = %s`,
		c.name, c.dialect.Field(field), c.dialect.Placeholder(1))
	var (
		id  string
		raw []byte
	)
	if err := c.db.QueryRowContext(ctx, query, value).Scan(&id, &raw); err != nil {
		return "", err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return "", fmt.Errorf("decode %s document %s: %w", c.name, id, err)
	}
	return id, nil
}

// duplicateKey maps a unique violation to a DuplicateKeyError naming the
// first of keys that appears in the constraint description.
func (c *collection) duplicateKey(err error, keys ...string) error {
	detail, ok := c.dialect.UniqueViolation(err)
	if !ok {
		return nil
	}
	key := "id"
	for _, k := range keys {
		if strings.Contains(detail, k) {
			key = k
			break
		}
	}
	return &domain.DuplicateKeyError{Collection: c.name, Key: key}
}

func newID() string {
	return uuid.NewString()
}
