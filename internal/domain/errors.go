package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for form and account operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidField       = errors.New("invalid field")
	ErrDuplicateKey       = errors.New("duplicate key")
)

// ValidationError lists the fields that failed a constraint check.
// It matches ErrMissingField, and ErrInvalidField when Invalid is non-empty.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return len(e.Missing) > 0
	case ErrInvalidField:
		return len(e.Invalid) > 0
	}
	return false
}

// DuplicateKeyError reports a unique constraint violation on Collection.Key.
type DuplicateKeyError struct {
	Collection string
	Key        string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key in %s: %s already exists", e.Collection, e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
