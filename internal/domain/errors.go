package domain

import (
	"errors"
	"fmt"
)

// ValidationError indicates a record failed its field invariants, e.g. a blank
// folder name or prompt title.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError indicates a mutation targeted an id that is not in the store.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func IsNotFoundError(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
