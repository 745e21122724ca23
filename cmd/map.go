package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"swarm/internal/cli"
	"swarm/internal/spmap"

	"github.com/spf13/cobra"
)

var (
	mapPicks  string
	mapOut    string
	mapRange  string
	mapWidth  int
	mapHeight int
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Export S-P distance circles for a set of phase picks",
		Long: `Reads phase picks from a YAML file and writes the S-P distance circles
around each picked station as GeoJSON. Uncertainty bounds become separate
dashed rings.

With --range west,east,south,north the circles are instead laid out on a
map panel of --width x --height pixels and the visible ones are listed.`,
		Args: cobra.NoArgs,
		RunE: runMap,
	}
	cmd.Flags().StringVar(&mapPicks, "picks", "", "Picks file (YAML)")
	cmd.Flags().StringVarP(&mapOut, "output", "o", "", "Write GeoJSON to this file instead of stdout")
	cmd.Flags().StringVar(&mapRange, "range", "", "Map range as west,east,south,north in degrees")
	cmd.Flags().IntVar(&mapWidth, "width", 800, "Panel width in pixels")
	cmd.Flags().IntVar(&mapHeight, "height", 600, "Panel height in pixels")
	_ = cmd.MarkFlagRequired("picks")
	return cmd
}

func runMap(cmd *cobra.Command, args []string) error {
	set, err := spmap.LoadPicks(mapPicks)
	if err != nil {
		return err
	}
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	services := application.Services()
	sps := spmap.Collect(*set)

	if mapRange != "" {
		r, err := parseRange(mapRange)
		if err != nil {
			return err
		}
		out, err := printer(cmd)
		if err != nil {
			return err
		}
		panel := spmap.NewPanel(r, mapWidth, mapHeight, 0)
		circles := spmap.Visible(panel, spmap.Layout(panel, sps, services.Metadata))

		type circleRow struct {
			Channel   string   `json:"channel" yaml:"channel"`
			X         float64  `json:"x" yaml:"x"`
			Y         float64  `json:"y" yaml:"y"`
			Radius    float64  `json:"radius" yaml:"radius"`
			MinRadius *float64 `json:"minRadius,omitempty" yaml:"minRadius,omitempty"`
			MaxRadius *float64 `json:"maxRadius,omitempty" yaml:"maxRadius,omitempty"`
		}
		res := cli.Result{
			Columns: []string{"channel", "x", "y", "radius px", "min px", "max px"},
			Empty:   "No circle falls inside the map range",
		}
		data := make([]circleRow, 0, len(circles))
		for _, c := range circles {
			res.Rows = append(res.Rows, []interface{}{c.Channel, px(c.Center.X), px(c.Center.Y), px(c.Radius), px(c.MinRadius), px(c.MaxRadius)})
			data = append(data, circleRow{
				Channel:   c.Channel,
				X:         c.Center.X,
				Y:         c.Center.Y,
				Radius:    c.Radius,
				MinRadius: finite(c.MinRadius),
				MaxRadius: finite(c.MaxRadius),
			})
		}
		res.Data = data
		return out.Print(res)
	}

	mapCfg := application.Config().SwarmConfig.Map
	fc := spmap.FeatureCollection(sps, services.Metadata, spmap.Style{
		LineColor: mapCfg.LineColor,
		Segments:  mapCfg.CircleSegments,
	})
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode GeoJSON: %w", err)
	}
	if mapOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(mapOut, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", mapOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote circles for %d station(s) to %s\n", spmap.StationCount(fc), mapOut)
	return nil
}

func parseRange(s string) (spmap.Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return spmap.Range{}, fmt.Errorf("range %q: want west,east,south,north", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return spmap.Range{}, fmt.Errorf("range %q: %w", s, err)
		}
		v[i] = f
	}
	if v[0] >= v[1] || v[2] >= v[3] {
		return spmap.Range{}, fmt.Errorf("range %q: west must be below east and south below north", s)
	}
	return spmap.Range{West: v[0], East: v[1], South: v[2], North: v[3]}, nil
}

func px(v float64) string {
	if math.IsNaN(v) {
		return cli.Dash("")
	}
	return fmt.Sprintf("%.0f", v)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
