package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/metadata"
	"swarm/internal/source"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{ name string }

func (s stubSource) Name() string                                          { return s.name }
func (s stubSource) ConfigString() string                                  { return s.name + ";file:/tmp/" + s.name }
func (s stubSource) Establish(ctx context.Context) (source.Session, error) { return s, nil }
func (s stubSource) Channels(ctx context.Context) ([]string, error)        { return nil, nil }
func (s stubSource) Close() error                                          { return nil }

type recordingCommitter struct {
	action chooser.Action
	sel    []chooser.Selection
}

func (r *recordingCommitter) Commit(ctx context.Context, action chooser.Action, sel []chooser.Selection) error {
	r.action, r.sel = action, sel
	return nil
}

func fp(v float64) *float64 { return &v }

func newTestServer(t *testing.T) (*Server, *recordingCommitter) {
	t.Helper()
	reg := source.NewRegistry()
	reg.Add(stubSource{name: "AVO"})
	reg.Add(stubSource{name: "Down"})

	listings := map[string][]string{"AVO": {"RED EHZ AV --", "AKS BHZ AV --"}}
	fetch := func(ctx context.Context, src source.DataSource) ([]string, error) {
		if ch, ok := listings[src.Name()]; ok {
			return ch, nil
		}
		return nil, fmt.Errorf("%w: refused", source.ErrSourceUnreachable)
	}
	lookup := metadata.LookupFunc(func(ch string) (metadata.Metadata, bool) {
		switch ch {
		case "RED EHZ AV --":
			return metadata.Metadata{Groups: []string{"Redoubt"}, Longitude: fp(-152.7), Latitude: fp(60.4)}, true
		case "AKS BHZ AV --":
			return metadata.Metadata{Longitude: fp(-165.9), Latitude: fp(54.1)}, true
		case "SPU EHZ AV --":
			return metadata.Metadata{Longitude: fp(-152.2), Latitude: fp(61.3)}, true
		}
		return metadata.Metadata{}, false
	})

	committer := &recordingCommitter{}
	c := chooser.New(chooser.Options{
		Registry:   reg,
		Lookup:     lookup,
		Candidates: []string{"RED EHZ AV --", "AKS BHZ AV --", "SPU EHZ AV --"},
		Committer:  committer,
		Fetch:      fetch,
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	loop := chooser.NewLoop(c)
	go loop.Run(ctx)

	return New(loop, "test"), committer
}

func call(t *testing.T, s *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	for _, tool := range s.Tools() {
		if tool.Tool.Name == name {
			res, err := tool.Handler(context.Background(), req)
			require.NoError(t, err)
			return res
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestListSources(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s, "list_sources", nil)

	require.False(t, res.IsError)
	var got []sourceInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, []sourceInfo{
		{Name: "AVO", State: "unopened", Config: "AVO;file:/tmp/AVO"},
		{Name: "Down", State: "unopened", Config: "Down;file:/tmp/Down"},
	}, got)
}

func TestListChannels(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s, "list_channels", map[string]interface{}{"source": "avo"})

	require.False(t, res.IsError, text(t, res))
	var got []groupInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, []groupInfo{
		{Name: "All", Channels: []string{"RED EHZ AV --", "AKS BHZ AV --"}},
		{Name: "Redoubt", Channels: []string{"RED EHZ AV --"}},
	}, got)
}

func TestListChannelsBrokenSource(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s, "list_channels", map[string]interface{}{"source": "Down"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unreachable")

	res = call(t, s, "list_channels", map[string]interface{}{"source": "Nope"})
	assert.True(t, res.IsError)

	res = call(t, s, "list_channels", nil)
	assert.True(t, res.IsError)
}

func TestNearestChannels(t *testing.T) {
	s, _ := newTestServer(t)
	call(t, s, "list_channels", map[string]interface{}{"source": "AVO"})

	res := call(t, s, "nearest_channels", map[string]interface{}{"channel": "RED EHZ AV --", "limit": float64(5)})

	require.False(t, res.IsError, text(t, res))
	var got []neighborInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "SPU EHZ AV --", got[0].Channel)
	assert.False(t, got[0].InTree)
	assert.Equal(t, "AKS BHZ AV --", got[1].Channel)
	assert.True(t, got[1].InTree)

	res = call(t, s, "nearest_channels", map[string]interface{}{"channel": "RED EHZ AV --", "limit": float64(1)})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Len(t, got, 1)

	res = call(t, s, "nearest_channels", map[string]interface{}{"channel": "XXX"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "No coordinates")
}

func TestOpenChannels(t *testing.T) {
	s, committer := newTestServer(t)

	res := call(t, s, "open_channels", map[string]interface{}{
		"source":   "AVO",
		"channels": "AKS BHZ AV --, RED EHZ AV --",
		"action":   "clipboard",
	})

	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, chooser.ActionClipboard, committer.action)
	assert.Equal(t, []chooser.Selection{
		{Source: "AVO", Channel: "AKS BHZ AV --"},
		{Source: "AVO", Channel: "RED EHZ AV --"},
	}, committer.sel)

	res = call(t, s, "open_channels", map[string]interface{}{"source": "AVO", "channels": "NOPE"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "Not listed by AVO: NOPE")

	res = call(t, s, "open_channels", map[string]interface{}{"source": "AVO", "channels": "RED EHZ AV --", "action": "spectrogram"})
	assert.True(t, res.IsError)
}

func TestSplitChannels(t *testing.T) {
	assert.Equal(t, []string{"A B C --", "D E F 00"}, splitChannels(" A B C --,\nD E F 00\n,"))
	assert.Empty(t, splitChannels(" , "))
}
