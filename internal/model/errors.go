package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput matches any InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAllocationUnavailable is returned when the system id counter row is missing.
	ErrAllocationUnavailable = errors.New("last used system id is unavailable")
)

// NotFoundError reports a required record that does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// InvalidInputError reports a value that is present but unusable, such as an
// empty account segment on a job.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewInvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
