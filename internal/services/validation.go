package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"eventmanagement/internal/domain"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkFields runs the struct constraints of in and converts failures into
// a *domain.ValidationError.
func checkFields(ctx context.Context, v *validator.Validate, in any) error {
	err := v.StructCtx(ctx, in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}
	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			verr.Missing = append(verr.Missing, fe.Field())
		} else {
			verr.Invalid = append(verr.Invalid, fe.Field())
		}
	}
	return verr
}

// parseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp
// and returns midnight UTC of that date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(domain.DateLayout, s); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := ts.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
