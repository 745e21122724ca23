package chooser

import (
	"context"
	"errors"
	"swarm/pkg/logging"
)

// ErrLoopStopped is returned when the loop is no longer running.
var ErrLoopStopped = errors.New("chooser loop stopped")

type envelope struct {
	fn   func(*Chooser)
	done chan struct{}
}

// Loop is the update path for callers without a UI event loop. One goroutine
// owns the Chooser; listings run on their own goroutines and post their
// results back, so tree replacements never interleave.
type Loop struct {
	chooser *Chooser
	ops     chan envelope
	stopped chan struct{}
}

// NewLoop wraps c. Call Run to start processing.
func NewLoop(c *Chooser) *Loop {
	return &Loop{
		chooser: c,
		ops:     make(chan envelope),
		stopped: make(chan struct{}),
	}
}

// Run processes operations until ctx is done.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case op := <-l.ops:
			op.fn(l.chooser)
			close(op.done)
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func(*Chooser)) error {
	op := envelope{fn: fn, done: make(chan struct{})}
	select {
	case l.ops <- op:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// Run finishes an accepted operation before it checks ctx again.
	<-op.done
	return nil
}

// Start runs task on a new goroutine and applies its result on the loop.
// The returned channel yields the error from ApplyListing once applied.
func (l *Loop) Start(ctx context.Context, task FetchTask) <-chan error {
	applied := make(chan error, 1)
	go func() {
		res := task(ctx)
		var applyErr error
		err := l.Do(context.Background(), func(c *Chooser) {
			applyErr = c.ApplyListing(res)
		})
		if err != nil {
			logging.Debug(subsystem, "Listing of %s not applied: %v", res.Source, err)
			applyErr = err
		}
		applied <- applyErr
	}()
	return applied
}

// Open expands the named source and waits until its listing, if one was
// needed, has been applied.
func (l *Loop) Open(ctx context.Context, name string) error {
	return l.run(ctx, name, (*Chooser).Expand)
}

// Refresh re-lists the named source and waits for the result.
func (l *Loop) Refresh(ctx context.Context, name string) error {
	return l.run(ctx, name, (*Chooser).Refresh)
}

func (l *Loop) run(ctx context.Context, name string, step func(*Chooser, string) (FetchTask, error)) error {
	var (
		task FetchTask
		err  error
	)
	if doErr := l.Do(ctx, func(c *Chooser) { task, err = step(c, name) }); doErr != nil {
		return doErr
	}
	if err != nil || task == nil {
		return err
	}
	select {
	case err := <-l.Start(ctx, task):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RefreshAll re-lists every source concurrently and waits for all results.
// Broken sources are not errors; their state is visible in the tree.
func (l *Loop) RefreshAll(ctx context.Context) error {
	var tasks []FetchTask
	var names []string
	if err := l.Do(ctx, func(c *Chooser) {
		for _, n := range c.Tree().Sources() {
			names = append(names, n.Name)
		}
		for _, name := range names {
			if t, err := c.Refresh(name); err == nil {
				tasks = append(tasks, t)
			}
		}
	}); err != nil {
		return err
	}

	pending := make([]<-chan error, 0, len(tasks))
	for _, t := range tasks {
		pending = append(pending, l.Start(ctx, t))
	}
	var errs []error
	for _, p := range pending {
		select {
		case err := <-p:
			if err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return errors.Join(errs...)
}
