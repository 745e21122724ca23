package cmd

import (
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/cli"

	"github.com/spf13/cobra"
)

var nearestLimit int

func newNearestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest <channel>",
		Short: "List the channels closest to a channel",
		Long: `Ranks every channel with known coordinates by great-circle distance
from the given channel. Coordinates come from the metadata section of the
configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: runNearest,
	}
	cmd.Flags().IntVarP(&nearestLimit, "limit", "n", 10, "Maximum number of channels to show (0 for all)")
	return cmd
}

func runNearest(cmd *cobra.Command, args []string) error {
	out, err := printer(cmd)
	if err != nil {
		return err
	}
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	store := application.Services().Metadata

	neighbors, err := chooser.NearestTo(args[0], store, store.Channels())
	if err != nil {
		return err
	}
	if nearestLimit > 0 && len(neighbors) > nearestLimit {
		neighbors = neighbors[:nearestLimit]
	}

	type neighborRow struct {
		Channel    string  `json:"channel" yaml:"channel"`
		DistanceKm float64 `json:"distanceKm" yaml:"distanceKm"`
	}
	res := cli.Result{
		Columns: []string{"#", "channel", "distance (km)"},
		Empty:   fmt.Sprintf("No other channel near %s has coordinates", args[0]),
	}
	data := make([]neighborRow, 0, len(neighbors))
	for i, n := range neighbors {
		res.Rows = append(res.Rows, []interface{}{i + 1, n.Channel, fmt.Sprintf("%.1f", n.DistanceKm)})
		data = append(data, neighborRow{Channel: n.Channel, DistanceKm: n.DistanceKm})
	}
	res.Data = data
	return out.Print(res)
}
