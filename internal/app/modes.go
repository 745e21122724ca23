package app

import (
	"context"
	"fmt"
	"io"
	"swarm/internal/chooser"
	"swarm/internal/color"
	"swarm/internal/filechooser"
	"swarm/internal/tui/controller"
	"swarm/internal/tui/model"
	"swarm/pkg/logging"
)

// runCLIMode lists every source once through the chooser loop and prints
// the resulting tree.
func runCLIMode(ctx context.Context, out io.Writer, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop := chooser.NewLoop(services.Chooser)
	go loop.Run(ctx)

	if err := loop.RefreshAll(ctx); err != nil {
		logging.Error("CLI", err, "Refreshing sources")
	}

	var rendered string
	if err := loop.Do(ctx, func(c *chooser.Chooser) {
		rendered = RenderTree(c.Tree())
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, rendered)
	return err
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	color.Initialize(true)

	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	nearestLimit := 0
	if config.SwarmConfig != nil {
		nearestLimit = config.SwarmConfig.Chooser.NearestLimit
	}
	p, m := controller.NewProgram(model.Options{
		Chooser:      services.Chooser,
		Files:        filechooser.New(""),
		NearestLimit: nearestLimit,
		DebugMode:    config.Debug,
		LogChannel:   logChan,
	})

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.CloseTUIChannel()
	logging.Info("TUI-Lifecycle", "TUI exited.")

	if m.SourcesChanged {
		if err := services.SaveSources(); err != nil {
			logging.Error("TUI-Lifecycle", err, "Saving sources")
			return err
		}
	}
	return nil
}
