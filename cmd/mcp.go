package cmd

import (
	"context"
	"os"
	"os/signal"
	"swarm/internal/chooser"
	"swarm/internal/mcpserver"
	"swarm/pkg/logging"
	"syscall"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the data chooser to AI assistants over MCP (stdio)",
		Long: `Starts a Model Context Protocol server on stdin/stdout exposing the
list_sources, list_channels, nearest_channels and open_channels tools.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := newApplication(true)
	if err != nil {
		return err
	}
	services := application.Services()

	loop := chooser.NewLoop(services.Chooser)
	go loop.Run(ctx)

	logging.Info("MCP", "Serving %d source(s) over stdio", services.Registry.Len())
	return mcpserver.New(loop, rootCmd.Version).ServeStdio()
}
