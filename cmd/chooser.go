package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var noTUI bool

func newChooserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chooser",
		Short: "Browse data sources interactively",
		Long: `Opens the data chooser: a tree of data sources, their channel groups
and channels. Sources are listed when first expanded.

With --no-tui every source is listed once and the tree is printed.`,
		Args: cobra.NoArgs,
		RunE: runChooser,
	}
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "List every source and print the tree instead of starting the TUI")
	return cmd
}

func runChooser(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := newApplication(noTUI)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
