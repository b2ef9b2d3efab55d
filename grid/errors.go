package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity indicates storage too small for the requested dimensions
	ErrCapacity = errors.New("grid: insufficient capacity")
	// ErrInvalidSize indicates negative dimensions
	ErrInvalidSize = errors.New("grid: invalid size")
	// ErrOutOfBounds indicates a rectangle outside the grid where containment is required
	ErrOutOfBounds = errors.New("grid: rectangle out of bounds")
	// ErrViewConflict indicates an exclusive view overlapping another live view
	ErrViewConflict = errors.New("grid: view conflict")
	// ErrClaimTableFull indicates all claim slots are in use
	ErrClaimTableFull = errors.New("grid: claim table full")
	// ErrNotClaimable indicates the root surface does not track claims
	ErrNotClaimable = errors.New("grid: surface does not support claims")
)

// ConflictError reports the rectangles of a rejected claim, in root coordinates
type ConflictError struct {
	Requested Rect
	Held      Rect
	Shared    bool // true if the held claim is shared
}

func (e *ConflictError) Error() string {
	kind := "exclusive"
	if e.Shared {
		kind = "shared"
	}
	return fmt.Sprintf("grid: view conflict: requested %+v overlaps %s %+v", e.Requested, kind, e.Held)
}

// Unwrap allows errors.Is(err, ErrViewConflict)
func (e *ConflictError) Unwrap() error {
	return ErrViewConflict
}
