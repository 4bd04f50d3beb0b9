package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

// NotFoundError reports a lookup for an id the store does not hold.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
