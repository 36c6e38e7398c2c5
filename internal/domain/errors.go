package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks structurally invalid input (empty item list,
	// non-positive quantity, unknown status value).
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a missing account, restaurant, product or order.
	ErrNotFound = errors.New("entity not found")
	// ErrInactive marks an entity that exists but is disabled.
	ErrInactive = errors.New("entity inactive")
	// ErrBusinessRule marks a domain rule violation such as an unavailable
	// product or a product owned by a different restaurant.
	ErrBusinessRule = errors.New("business rule violation")
	// ErrInvalidTransition marks an illegal status transition, including an
	// illegal cancellation.
	ErrInvalidTransition = errors.New("invalid status transition")
)

func NotFoundError(entity string, id uint64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func InactiveError(entity string, id uint64) error {
	return fmt.Errorf("%w: %s %d", ErrInactive, entity, id)
}
