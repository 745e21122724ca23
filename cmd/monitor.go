package cmd

import (
	"fmt"
	"strings"
	"swarm/internal/cli"

	"github.com/spf13/cobra"
)

func newMonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "List or edit the monitored channels",
		Long: `Channels are added to the monitor list from the chooser (key m) or the
open_channels MCP tool. Entries are written "source;channel".`,
	}
	cmd.AddCommand(newMonitorListCmd(), newMonitorRemoveCmd())
	return cmd
}

func newMonitorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the monitored channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := printer(cmd)
			if err != nil {
				return err
			}
			application, err := newApplication(true)
			if err != nil {
				return err
			}

			type monitorRow struct {
				Source  string `json:"source" yaml:"source"`
				Channel string `json:"channel" yaml:"channel"`
			}
			res := cli.Result{
				Columns: []string{"source", "channel"},
				Empty:   "No channels are monitored.",
			}
			rows := []monitorRow{}
			for _, e := range application.Services().Monitor.Entries() {
				src, ch, _ := strings.Cut(e, ";")
				rows = append(rows, monitorRow{Source: src, Channel: ch})
				res.Rows = append(res.Rows, []interface{}{src, ch})
			}
			res.Data = rows
			return out.Print(res)
		},
	}
}

func newMonitorRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <source;channel>",
		Short: "Stop monitoring a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(true)
			if err != nil {
				return err
			}
			removed, err := application.Services().Monitor.Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("%s is not monitored", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped monitoring %s\n", args[0])
			return nil
		},
	}
}
