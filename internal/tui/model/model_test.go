package model

import (
	"context"
	"swarm/internal/chooser"
	"swarm/internal/source"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, listings map[string][]string) *Model {
	t.Helper()
	reg := source.NewRegistry()
	for name := range listings {
		src, err := source.New(source.FileConfigString(name, "/tmp/"+name))
		require.NoError(t, err)
		reg.Add(src)
	}
	c := chooser.New(chooser.Options{
		Registry: reg,
		Fetch: func(ctx context.Context, src source.DataSource) ([]string, error) {
			return listings[src.Name()], nil
		},
	})
	return InitialModel(Options{Chooser: c})
}

func openSource(t *testing.T, m *Model, name string) {
	t.Helper()
	task, err := m.Chooser.Expand(name)
	require.NoError(t, err)
	require.NoError(t, m.Chooser.ApplyListing(task(context.Background())))
	n := m.Chooser.Tree().SourceNode(name)
	m.Expanded[n] = true
	m.Expanded[n.Children[0]] = true
}

func rowNames(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Node.Name)
	}
	return out
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": nil})

	assert.Equal(t, ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, PaneTree, m.Focus)
	assert.NotNil(t, m.Files)
	assert.False(t, m.Files.Built(), "the file picker is built on first use")
	assert.NotNil(t, m.Init())
}

func TestVisibleRows(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A", "B"}, "HVO": {"C"}})

	assert.Equal(t, []string{"AVO", "HVO"}, rowNames(m.VisibleRows()))

	openSource(t, m, "AVO")
	rows := m.VisibleRows()
	assert.Equal(t, []string{"AVO", chooser.AllGroup, "A", "B", "HVO"}, rowNames(rows))
	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, 2, rows[2].Depth)
	assert.Equal(t, chooser.Path{0, 0, 1}, rows[3].Path)
}

func TestCursorHelpers(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A", "B"}, "HVO": {"C"}})
	openSource(t, m, "AVO")

	require.True(t, m.MoveCursorTo(chooser.Path{0, 0, 1}))
	row, ok := m.CurrentRow()
	require.True(t, ok)
	assert.Equal(t, "B", row.Node.Name)
	src, ok := m.CurrentSource()
	require.True(t, ok)
	assert.Equal(t, "AVO", src.Name)

	m.Cursor = 99
	m.ClampCursor()
	assert.Equal(t, 4, m.Cursor)

	assert.False(t, m.MoveCursorTo(chooser.Path{1, 0}))
}

func TestReveal(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A", "B"}})
	openSource(t, m, "AVO")
	m.Expanded = map[*chooser.Node]bool{}

	require.True(t, m.Reveal(chooser.Path{0, 0, 1}))
	assert.Equal(t, "B", m.VisibleRows()[m.Cursor].Node.Name)

	assert.False(t, m.Reveal(chooser.Path{0, 5}))
}

func TestCollapseAllKeepsSource(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A"}, "HVO": {"C"}})
	openSource(t, m, "HVO")
	m.MoveCursorTo(chooser.Path{1, 0, 0})

	m.CollapseAll()

	assert.Empty(t, m.Expanded)
	assert.Equal(t, 1, m.Cursor)
}

func TestSelectedPaths(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A", "B", "C"}})
	openSource(t, m, "AVO")

	m.MoveCursorTo(chooser.Path{0, 0, 1})
	assert.Equal(t, []chooser.Path{{0, 0, 1}}, m.SelectedPaths())

	all := m.Chooser.Tree().Node(chooser.Path{0, 0})
	m.Marked[all.Children[2]] = true
	m.Marked[all.Children[0]] = true
	assert.Equal(t, []chooser.Path{{0, 0, 0}, {0, 0, 2}}, m.SelectedPaths())
}

func TestPruneDropsReplacedNodes(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A"}})
	openSource(t, m, "AVO")
	old := m.Chooser.Tree().Node(chooser.Path{0, 0, 0})
	m.Marked[old] = true

	task, err := m.Chooser.Refresh("AVO")
	require.NoError(t, err)
	require.NoError(t, m.Chooser.ApplyListing(task(context.Background())))
	m.Prune()

	assert.Empty(t, m.Marked)
	assert.True(t, m.Expanded[m.Chooser.Tree().SourceNode("AVO")])
}

func TestSetNeighborsLimits(t *testing.T) {
	m := newTestModel(t, map[string][]string{"AVO": {"A", "B"}})
	openSource(t, m, "AVO")
	m.NearestLimit = 1

	m.SetNeighbors("X", []chooser.Neighbor{{Channel: "B", DistanceKm: 1}, {Channel: "A", DistanceKm: 2}})

	require.Len(t, m.Nearest, 1)
	assert.Equal(t, "B", m.Nearest[0].Channel)
	assert.True(t, m.Nearest[0].InTree)
	assert.Equal(t, chooser.Path{0, 0, 1}, m.Nearest[0].Path)
}

func TestActivityLogIsCapped(t *testing.T) {
	m := newTestModel(t, map[string][]string{})
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel(t, map[string][]string{})

	cmd := m.SetStatusMessage("first", StatusBarInfo, time.Hour)
	first := m.StatusBarClearCancel
	require.NotNil(t, cmd)
	m.SetStatusMessage("second", StatusBarError, time.Hour)

	assert.Equal(t, "second", m.StatusBarMessage)
	assert.Equal(t, StatusBarError, m.StatusBarMessageType)
	_, open := <-first
	assert.False(t, open, "the previous clear timer is cancelled")
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 2)
	found := false
	for _, column := range keys.FullHelp() {
		assert.NotEmpty(t, column)
		for _, b := range column {
			if b.Help().Key == keys.Quit.Help().Key {
				found = true
			}
		}
	}
	assert.True(t, found)
}
