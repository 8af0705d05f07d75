package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfirmed is returned when a destructive operation was declined.
	ErrNotConfirmed = errors.New("operation not confirmed")

	// ErrFavoriteNotFound is returned when no favorite matches an id or name.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrEntryNotFound is returned when no entry matches an id.
	ErrEntryNotFound = errors.New("entry not found")
)

// DuplicateFavoriteError indicates a favorite with the same name (ignoring
// case) already exists
type DuplicateFavoriteError struct {
	Name string
}

func (e *DuplicateFavoriteError) Error() string {
	return fmt.Sprintf("%s is already in your favorites", e.Name)
}
