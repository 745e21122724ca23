// Package mcpserver exposes the data chooser as MCP tools over stdio, so an
// assistant can list sources and channels, rank nearby channels and open a
// selection. Every tree access goes through the chooser Loop.
package mcpserver

import (
	"context"
	"swarm/internal/chooser"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCP"

// Server wraps an MCP server bound to a chooser loop.
type Server struct {
	loop   *chooser.Loop
	server *server.MCPServer
}

// New creates the MCP server and registers the chooser tools.
func New(loop *chooser.Loop, version string) *Server {
	s := &Server{loop: loop}
	s.server = server.NewMCPServer(
		"swarm",
		version,
		server.WithToolCapabilities(true),
	)
	s.server.AddTools(s.Tools()...)
	return s
}

// Tools returns the tool definitions with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: listSourcesTool(), Handler: s.handleListSources},
		{Tool: listChannelsTool(), Handler: s.handleListChannels},
		{Tool: nearestChannelsTool(), Handler: s.handleNearestChannels},
		{Tool: openChannelsTool(), Handler: s.handleOpenChannels},
	}
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer { return s.server }

// ServeStdio serves until stdin closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.server)
}

func listSourcesTool() mcp.Tool {
	return mcp.NewTool("list_sources",
		mcp.WithDescription("List configured data sources and their listing state"),
	)
}

func listChannelsTool() mcp.Tool {
	return mcp.NewTool("list_channels",
		mcp.WithDescription("List the channels of a data source, grouped as in the chooser tree. Opens the source if needed."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Name of the data source"),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Re-list the source even if it is already open"),
			mcp.DefaultBool(false),
		),
	)
}

func nearestChannelsTool() mcp.Tool {
	return mcp.NewTool("nearest_channels",
		mcp.WithDescription("Rank channels by great-circle distance from a channel with known coordinates"),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Reference channel, e.g. 'RED EHZ AV --'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of channels to return (default 10)"),
		),
	)
}

func openChannelsTool() mcp.Tool {
	return mcp.NewTool("open_channels",
		mcp.WithDescription("Open channels of a source in a viewer, copy them to the clipboard or add them to the monitor"),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Name of the data source"),
		),
		mcp.WithString("channels",
			mcp.Required(),
			mcp.Description("Channels separated by commas or newlines"),
		),
		mcp.WithString("action",
			mcp.Description("helicorder, wave, clipboard or monitor (default helicorder)"),
			mcp.Enum("helicorder", "wave", "clipboard", "monitor"),
		),
	)
}

// do runs fn on the chooser loop.
func (s *Server) do(ctx context.Context, fn func(*chooser.Chooser)) error {
	return s.loop.Do(ctx, fn)
}
