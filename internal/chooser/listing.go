package chooser

import "fmt"

// ListingState is the per-source listing lifecycle.
//
//	Unopened --expand--> Opening --success--> Opened
//	                     Opening --failure--> Broken
//	Broken   --expand|refresh--> Opening
//	Opened   --refresh--> Opening
//	Opened   --expand--> Opened (no fetch)
type ListingState int

const (
	Unopened ListingState = iota
	Opening
	Opened
	Broken
)

func (s ListingState) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opening:
		return "opening"
	case Opened:
		return "opened"
	case Broken:
		return "broken"
	default:
		return fmt.Sprintf("ListingState(%d)", int(s))
	}
}

// Expand returns the state after the user expands a source and whether a
// fetch must be started. Expanding while Opening starts another fetch; the
// two race and the last result applied wins.
func (s ListingState) Expand() (ListingState, bool) {
	if s == Opened {
		return Opened, false
	}
	return Opening, true
}

// Refresh always re-lists.
func (s ListingState) Refresh() (ListingState, bool) {
	return Opening, true
}

// Complete returns the state after a listing finished. Results of superseded
// fetches are accepted from any opened state; a result for a source that was
// never opened is an ErrInvalidTransition.
func (s ListingState) Complete(failed bool) (ListingState, error) {
	if s == Unopened {
		return s, fmt.Errorf("%w: listing result for %s source", ErrInvalidTransition, s)
	}
	if failed {
		return Broken, nil
	}
	return Opened, nil
}
