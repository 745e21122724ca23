package chooser

import (
	"context"
	"errors"
	"fmt"
	"swarm/internal/metadata"
	"swarm/internal/source"
	"swarm/pkg/logging"
)

const subsystem = "Chooser"

// ListingResult is the outcome of one background listing.
type ListingResult struct {
	Source   string
	Channels []string
	Err      error
}

// FetchTask lists one source. It touches no chooser state and may run on any
// goroutine; its result must be applied on the update path.
type FetchTask func(ctx context.Context) ListingResult

// FetchFunc performs an establish/list/close listing.
type FetchFunc func(ctx context.Context, src source.DataSource) ([]string, error)

// Options configures a Chooser.
type Options struct {
	Registry *source.Registry
	Lookup   metadata.Lookup
	// Candidates are the channels ranked by nearest lookups, usually every
	// channel with metadata.
	Candidates  []string
	Committer   Committer
	MaxChannels int
	// Fetch defaults to source.Fetch.
	Fetch FetchFunc
}

// Chooser is the controller behind the data chooser. It owns the tree and
// keeps it in step with the source registry.
//
// Chooser is not safe for concurrent use: call it only from the update path
// (the bubbletea Update loop, or a function passed to Loop.Do).
type Chooser struct {
	registry    *source.Registry
	tree        *Tree
	lookup      metadata.Lookup
	candidates  []string
	committer   Committer
	maxChannels int
	fetch       FetchFunc
}

// New creates a chooser with one unopened node per registered source.
func New(opts Options) *Chooser {
	c := &Chooser{
		registry:    opts.Registry,
		tree:        NewTree(),
		lookup:      opts.Lookup,
		candidates:  append([]string(nil), opts.Candidates...),
		committer:   opts.Committer,
		maxChannels: opts.MaxChannels,
		fetch:       opts.Fetch,
	}
	if c.registry == nil {
		c.registry = source.NewRegistry()
	}
	if c.maxChannels <= 0 {
		c.maxChannels = DefaultMaxChannels
	}
	if c.fetch == nil {
		c.fetch = source.Fetch
	}
	for _, name := range c.registry.Names() {
		c.tree.InsertSource(name)
	}
	return c
}

// Tree returns the live tree.
func (c *Chooser) Tree() *Tree { return c.tree }

// Registry returns the source registry.
func (c *Chooser) Registry() *source.Registry { return c.registry }

// MaxChannels returns the selection limit.
func (c *Chooser) MaxChannels() int { return c.maxChannels }

// AddSource registers src and inserts it unopened. A source with the same
// name is replaced.
func (c *Chooser) AddSource(src source.DataSource) {
	if c.registry.Add(src) {
		logging.Info(subsystem, "Replaced source %s", src.Name())
	} else {
		logging.Info(subsystem, "Added source %s", src.Name())
	}
	c.tree.InsertSource(src.Name())
}

// RemoveSource unregisters the named source and removes its subtree.
func (c *Chooser) RemoveSource(name string) bool {
	removed := c.registry.Remove(name)
	if c.tree.RemoveSource(name) {
		removed = true
	}
	if removed {
		logging.Info(subsystem, "Removed source %s", name)
	}
	return removed
}

// EditSource replaces oldName with src. The new source starts unopened.
func (c *Chooser) EditSource(oldName string, src source.DataSource) error {
	if err := c.registry.Replace(oldName, src); err != nil {
		return fmt.Errorf("edit source: %w", err)
	}
	if _, err := c.tree.ReplaceSource(oldName, src.Name()); err != nil {
		c.tree.InsertSource(src.Name())
	}
	logging.Info(subsystem, "Edited source %s -> %s", oldName, src.Name())
	return nil
}

// Expand handles the user expanding a source node. It returns the fetch to
// run, or nil when the source is already opened.
func (c *Chooser) Expand(name string) (FetchTask, error) {
	n := c.tree.SourceNode(name)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	next, fetch := n.State.Expand()
	n.State = next
	if !fetch {
		return nil, nil
	}
	return c.task(n.Name)
}

// Refresh re-lists the named source regardless of its state.
func (c *Chooser) Refresh(name string) (FetchTask, error) {
	n := c.tree.SourceNode(name)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	n.State, _ = n.State.Refresh()
	return c.task(n.Name)
}

func (c *Chooser) task(name string) (FetchTask, error) {
	src, ok := c.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s not registered", ErrUnknownSource, name)
	}
	fetch := c.fetch
	logging.Debug(subsystem, "Listing channels of %s", name)
	return func(ctx context.Context) ListingResult {
		channels, err := fetch(ctx, src)
		return ListingResult{Source: name, Channels: channels, Err: err}
	}, nil
}

// ApplyListing applies a finished listing to the tree. A failed listing
// marks the source broken; the failure is logged, not returned.
func (c *Chooser) ApplyListing(res ListingResult) error {
	n := c.tree.SourceNode(res.Source)
	if n == nil {
		logging.Debug(subsystem, "Dropping listing of removed source %s", res.Source)
		return fmt.Errorf("%w: %s", ErrUnknownSource, res.Source)
	}
	if _, err := n.State.Complete(res.Err != nil); err != nil {
		return fmt.Errorf("source %s: %w", res.Source, err)
	}

	if res.Err != nil {
		logging.Warn(subsystem, "Source %s is unreachable: %v", res.Source, res.Err)
		return c.tree.MarkBroken(res.Source)
	}
	logging.Debug(subsystem, "Source %s listed %d channels", res.Source, len(res.Channels))
	return c.tree.Populate(res.Source, res.Channels, c.lookup)
}

// Select resolves tree paths into pairs, enforcing the channel limit.
func (c *Chooser) Select(paths []Path) ([]Selection, error) {
	return c.tree.SelectLeaves(paths, c.maxChannels)
}

// CommitTask is a resolved selection waiting to be handed to a sink. It
// touches no chooser state and may run on any goroutine.
type CommitTask func(ctx context.Context) error

// PrepareCommit resolves paths on the update path and returns the sink call
// for action. Over-limit selections are returned with
// ErrSelectionLimitExceeded and no task. An empty selection yields a nil task.
func (c *Chooser) PrepareCommit(action Action, paths []Path) ([]Selection, CommitTask, error) {
	sel, err := c.Select(paths)
	if err != nil {
		return sel, nil, err
	}
	if len(sel) == 0 {
		return nil, nil, nil
	}
	if c.committer == nil {
		return sel, nil, errors.New("no sink configured")
	}
	committer := c.committer
	return sel, func(ctx context.Context) error {
		if err := committer.Commit(ctx, action, sel); err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
		logging.Info(subsystem, "Opened %d channel(s) in %s", len(sel), action)
		return nil
	}, nil
}

// Commit hands the selection under paths to the sink for action. Over-limit
// selections are returned with ErrSelectionLimitExceeded and nothing is opened.
func (c *Chooser) Commit(ctx context.Context, action Action, paths []Path) ([]Selection, error) {
	sel, task, err := c.PrepareCommit(action, paths)
	if err != nil || task == nil {
		return sel, err
	}
	return sel, task(ctx)
}

// NearestTask returns a background computation of the channels nearest to
// channel. It reads only immutable metadata and may run on any goroutine.
func (c *Chooser) NearestTask(channel string) func() ([]Neighbor, error) {
	lookup, candidates := c.lookup, c.candidates
	return func() ([]Neighbor, error) {
		return NearestTo(channel, lookup, candidates)
	}
}

// Nearest computes the nearest channels and maps them onto the tree.
func (c *Chooser) Nearest(channel string) ([]Highlight, error) {
	neighbors, err := c.NearestTask(channel)()
	if err != nil {
		return nil, err
	}
	return c.tree.Highlight(neighbors), nil
}
