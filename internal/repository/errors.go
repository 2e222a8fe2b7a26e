package repository

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func missingFields() error {
	return &ValidationError{Msg: "Missing required fields"}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ConflictError is returned when a write would break a uniqueness rule,
// such as two admins sharing an email address.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// ForbiddenError is returned when the caller may not perform an operation,
// or the operation would remove an admin that has to stay.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }

func isNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
