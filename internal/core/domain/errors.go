package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references a campaign id
	// that is not present in the store.
	ErrNotFound = errors.New("campaign not found")

	// ErrDuplicateID is returned by create when the campaign id is already
	// taken.
	ErrDuplicateID = errors.New("campaign id already exists")
)

// ValidationError reports a malformed enum value or a violated cross-field
// invariant. The message is surfaced verbatim to the console UI.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
