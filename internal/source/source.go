// Package source defines seismic data sources, the config strings that
// describe them and the registry the chooser keeps them in.
package source

import (
	"context"
	"errors"
	"fmt"
)

// DataSource is a remote or local origin of seismic channels.
//
// Each Establish starts an independent listing, so listings of the same
// source may overlap.
type DataSource interface {
	Name() string
	Establish(ctx context.Context) (Session, error)
	// ConfigString returns the "name;type:params" string the source was built from.
	ConfigString() string
}

// Session is one established connection to a source.
type Session interface {
	Channels(ctx context.Context) ([]string, error)
	Close() error
}

// ErrSourceUnreachable marks any failure of a listing.
var ErrSourceUnreachable = errors.New("source unreachable")

// UnreachableError records which step of a listing failed.
type UnreachableError struct {
	Source string
	Op     string
	Err    error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("source %s unreachable: %s: %v", e.Source, e.Op, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrSourceUnreachable.
func (e *UnreachableError) Is(target error) bool { return target == ErrSourceUnreachable }

// Fetch runs establish -> list -> close as one unit of work. Any failure,
// including a failed close, is reported as an *UnreachableError.
func Fetch(ctx context.Context, src DataSource) ([]string, error) {
	sess, err := src.Establish(ctx)
	if err != nil {
		return nil, &UnreachableError{Source: src.Name(), Op: "establish", Err: err}
	}

	channels, err := sess.Channels(ctx)
	closeErr := sess.Close()
	if err != nil {
		return nil, &UnreachableError{Source: src.Name(), Op: "list channels", Err: err}
	}
	if closeErr != nil {
		return nil, &UnreachableError{Source: src.Name(), Op: "close", Err: closeErr}
	}
	if channels == nil {
		channels = []string{}
	}
	return channels, nil
}

// FormatChannel renders station, channel, network and location the way swarm
// names channels. A blank location becomes "--".
func FormatChannel(sta, cha, net, loc string) string {
	if loc == "" {
		loc = "--"
	}
	return fmt.Sprintf("%s %s %s %s", sta, cha, net, loc)
}
