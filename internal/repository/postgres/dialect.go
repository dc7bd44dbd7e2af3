package postgres

import (
	"errors"
	"strconv"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Dialect implements docstore.Dialect for PostgreSQL JSONB documents.
type Dialect struct{}

func (Dialect) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (Dialect) Field(name string) string {
	return "doc->>'" + name + "'"
}

func (Dialect) UniqueViolation(err error) (string, bool) {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == uniqueViolation {
		return perr.Constraint, true
	}
	return "", false
}
