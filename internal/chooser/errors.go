package chooser

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionLimitExceeded is returned when a selection covers more
	// channels than the configured maximum. The full selection is still
	// returned so the caller can decide what to do.
	ErrSelectionLimitExceeded = errors.New("selection limit exceeded")

	// ErrNotFound is returned by nearest lookups for a channel without coordinates.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a listing result arrives for a
	// source that was never opened.
	ErrInvalidTransition = errors.New("invalid listing transition")

	// ErrUnknownSource is returned for operations on a source that is not in the tree.
	ErrUnknownSource = errors.New("unknown source")
)

// LimitError carries the size of an over-limit selection.
type LimitError struct {
	Count int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("selection of %d channels exceeds the maximum of %d", e.Count, e.Max)
}

// Is lets errors.Is match ErrSelectionLimitExceeded.
func (e *LimitError) Is(target error) bool { return target == ErrSelectionLimitExceeded }
