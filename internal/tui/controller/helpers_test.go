package controller

import (
	"context"
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/metadata"
	"swarm/internal/source"
	"swarm/internal/tui/model"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type commitCall struct {
	Action chooser.Action
	Sel    []chooser.Selection
}

type recordingCommitter struct {
	mu    sync.Mutex
	calls []commitCall
	err   error
}

func (r *recordingCommitter) Commit(ctx context.Context, action chooser.Action, sel []chooser.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, commitCall{Action: action, Sel: sel})
	return r.err
}

type fixture struct {
	m         *model.Model
	committer *recordingCommitter
	listings  map[string][]string
	failures  map[string]error
}

type fixtureOption func(*chooser.Options)

func withLookup(md map[string]metadata.Metadata) fixtureOption {
	return func(o *chooser.Options) {
		o.Lookup = metadata.LookupFunc(func(ch string) (metadata.Metadata, bool) {
			m, ok := md[ch]
			return m, ok
		})
		for ch := range md {
			o.Candidates = append(o.Candidates, ch)
		}
	}
}

func withMax(n int) fixtureOption {
	return func(o *chooser.Options) { o.MaxChannels = n }
}

func newFixture(t *testing.T, names []string, opts ...fixtureOption) *fixture {
	t.Helper()
	f := &fixture{
		committer: &recordingCommitter{},
		listings:  map[string][]string{},
		failures:  map[string]error{},
	}
	reg := source.NewRegistry()
	for _, n := range names {
		src, err := source.New(source.FileConfigString(n, "/tmp/"+n+".txt"))
		require.NoError(t, err)
		reg.Add(src)
	}
	copts := chooser.Options{
		Registry:  reg,
		Committer: f.committer,
		Fetch: func(ctx context.Context, src source.DataSource) ([]string, error) {
			if err := f.failures[src.Name()]; err != nil {
				return nil, err
			}
			if ch, ok := f.listings[src.Name()]; ok {
				return ch, nil
			}
			return nil, fmt.Errorf("no listing for %s", src.Name())
		},
	}
	for _, o := range opts {
		o(&copts)
	}
	f.m = model.InitialModel(model.Options{Chooser: chooser.New(copts)})
	f.m.Width, f.m.Height = 120, 40
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.m, cmd = Update(msg, f.m)
	return cmd
}

func (f *fixture) press(s string) tea.Cmd {
	switch s {
	case "enter":
		return f.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return f.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "right":
		return f.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		return f.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "down":
		return f.send(tea.KeyMsg{Type: tea.KeyDown})
	case "up":
		return f.send(tea.KeyMsg{Type: tea.KeyUp})
	case "tab":
		return f.send(tea.KeyMsg{Type: tea.KeyTab})
	case "space":
		return f.send(tea.KeyMsg{Type: tea.KeySpace})
	case "ctrl+c":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

// run executes cmd and feeds its message back, returning the follow-up.
func (f *fixture) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return f.send(cmd())
}

// open expands the source on the cursor row and applies its listing.
func (f *fixture) open(t *testing.T) {
	t.Helper()
	f.run(t, f.press("right"))
}

func (f *fixture) cursorLabel() string {
	row, ok := f.m.CurrentRow()
	if !ok {
		return ""
	}
	return row.Node.Name
}

func (f *fixture) moveTo(t *testing.T, name string) {
	t.Helper()
	for i, row := range f.m.VisibleRows() {
		if row.Node.Name == name {
			f.m.Cursor = i
			return
		}
	}
	t.Fatalf("row %q not visible", name)
}

func fp(v float64) *float64 { return &v }
