package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"swarm/internal/chooser"
	"swarm/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

const defaultNearestLimit = 10

type sourceInfo struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Config string `json:"config"`
}

type groupInfo struct {
	Name     string   `json:"name"`
	Channels []string `json:"channels"`
}

type neighborInfo struct {
	Channel    string  `json:"channel"`
	DistanceKm float64 `json:"distanceKm"`
	InTree     bool    `json:"inTree"`
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListSources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []sourceInfo
	err := s.do(ctx, func(c *chooser.Chooser) {
		for _, n := range c.Tree().Sources() {
			info := sourceInfo{Name: n.Name, State: n.State.String()}
			if src, ok := c.Registry().Get(n.Name); ok {
				info.Config = src.ConfigString()
			}
			out = append(out, info)
		}
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(out) == 0 {
		return mcp.NewToolResultText("No sources configured"), nil
	}
	return jsonResult(out)
}

func (s *Server) handleListChannels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("source parameter is required"), nil
	}

	if req.GetBool("refresh", false) {
		err = s.loop.Refresh(ctx, name)
	} else {
		err = s.loop.Open(ctx, name)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to open %s: %v", name, err)), nil
	}

	var (
		groups []groupInfo
		broken bool
	)
	err = s.do(ctx, func(c *chooser.Chooser) {
		n := c.Tree().SourceNode(name)
		if n == nil {
			return
		}
		broken = n.Broken()
		for _, g := range n.Children {
			if g.Kind != chooser.KindGroup {
				continue
			}
			gi := groupInfo{Name: g.Name, Channels: []string{}}
			for _, ch := range g.Children {
				gi.Channels = append(gi.Channels, ch.Name)
			}
			groups = append(groups, gi)
		}
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if broken {
		return mcp.NewToolResultError(fmt.Sprintf("Source %s is unreachable", name)), nil
	}
	return jsonResult(groups)
}

func (s *Server) handleNearestChannels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channel, err := req.RequireString("channel")
	if err != nil {
		return mcp.NewToolResultError("channel parameter is required"), nil
	}
	limit := defaultNearestLimit
	if v, ok := req.GetArguments()["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	var (
		highlights []chooser.Highlight
		nearErr    error
	)
	if err := s.do(ctx, func(c *chooser.Chooser) {
		highlights, nearErr = c.Nearest(channel)
	}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if errors.Is(nearErr, chooser.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("No coordinates known for %s", channel)), nil
	}
	if nearErr != nil {
		return mcp.NewToolResultError(nearErr.Error()), nil
	}

	if len(highlights) > limit {
		highlights = highlights[:limit]
	}
	out := make([]neighborInfo, len(highlights))
	for i, h := range highlights {
		out[i] = neighborInfo{Channel: h.Channel, DistanceKm: h.DistanceKm, InTree: h.InTree}
	}
	return jsonResult(out)
}

func (s *Server) handleOpenChannels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("source parameter is required"), nil
	}
	raw, err := req.RequireString("channels")
	if err != nil {
		return mcp.NewToolResultError("channels parameter is required"), nil
	}
	action, err := chooser.ParseAction(req.GetString("action", "helicorder"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	wanted := splitChannels(raw)
	if len(wanted) == 0 {
		return mcp.NewToolResultError("no channels given"), nil
	}

	if err := s.loop.Open(ctx, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to open %s: %v", name, err)), nil
	}

	var (
		sel     []chooser.Selection
		missing []string
		stepErr error
	)
	if err := s.do(ctx, func(c *chooser.Chooser) {
		var paths []chooser.Path
		paths, missing = channelPaths(c.Tree(), name, wanted)
		if len(missing) > 0 {
			return
		}
		sel, stepErr = c.Commit(ctx, action, paths)
	}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(missing) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Not listed by %s: %s", name, strings.Join(missing, ", "))), nil
	}
	if stepErr != nil {
		return mcp.NewToolResultError(stepErr.Error()), nil
	}
	logging.Info(subsystem, "Opened %d channel(s) of %s in %s", len(sel), name, action)
	return mcp.NewToolResultText(fmt.Sprintf("Opened %d channel(s) in %s", len(sel), action)), nil
}

func splitChannels(raw string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// channelPaths finds each wanted channel under the source's "All" group.
func channelPaths(tree *chooser.Tree, name string, wanted []string) ([]chooser.Path, []string) {
	si := tree.SourceIndex(name)
	if si < 0 {
		return nil, wanted
	}
	pos := make(map[string]int)
	src := tree.Sources()[si]
	if len(src.Children) > 0 && src.Children[0].Kind == chooser.KindGroup {
		for i, ch := range src.Children[0].Children {
			if _, seen := pos[ch.Name]; !seen {
				pos[ch.Name] = i
			}
		}
	}

	var (
		paths   []chooser.Path
		missing []string
	)
	for _, w := range wanted {
		i, ok := pos[w]
		if !ok {
			missing = append(missing, w)
			continue
		}
		paths = append(paths, chooser.Path{si, 0, i})
	}
	return paths, missing
}
