package cmd

import (
	"context"
	"fmt"
	"swarm/internal/cli"
	"swarm/internal/source"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	channelsAll       bool
	channelsKeepGoing bool
)

func newChannelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels [source...]",
		Short: "List the channels offered by data sources",
		Long: `Connects to each named source (or every source with --all), lists its
channels and prints them. Sources are listed concurrently.`,
		RunE: runChannels,
	}
	cmd.Flags().BoolVar(&channelsAll, "all", false, "List every configured source")
	cmd.Flags().BoolVarP(&channelsKeepGoing, "keep-going", "k", false, "Report unreachable sources instead of failing")
	return cmd
}

type channelListing struct {
	source   string
	channels []string
	err      error
}

func runChannels(cmd *cobra.Command, args []string) error {
	if !channelsAll && len(args) == 0 {
		return fmt.Errorf("name at least one source, or use --all")
	}
	out, err := printer(cmd)
	if err != nil {
		return err
	}
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	registry := application.Services().Registry

	var targets []source.DataSource
	if channelsAll {
		targets = registry.List()
	} else {
		for _, name := range args {
			src, ok := registry.Get(name)
			if !ok {
				return fmt.Errorf("source %s not found", name)
			}
			targets = append(targets, src)
		}
	}

	listings, err := fetchAll(cmd.Context(), targets, channelsKeepGoing)
	if err != nil {
		return err
	}

	type sourceChannels struct {
		Source   string   `json:"source" yaml:"source"`
		Channels []string `json:"channels" yaml:"channels"`
		Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	}
	res := cli.Result{
		Columns: []string{"source", "channel"},
		Footer:  []interface{}{"", fmt.Sprintf("%d source(s)", len(listings))},
		Empty:   "No channels found",
	}
	data := make([]sourceChannels, 0, len(listings))
	for _, l := range listings {
		entry := sourceChannels{Source: l.source, Channels: l.channels}
		if l.err != nil {
			entry.Error = l.err.Error()
			res.Rows = append(res.Rows, []interface{}{l.source, "unreachable: " + l.err.Error()})
		}
		for _, ch := range l.channels {
			res.Rows = append(res.Rows, []interface{}{l.source, ch})
		}
		if entry.Channels == nil {
			entry.Channels = []string{}
		}
		data = append(data, entry)
	}
	res.Data = data
	return out.Print(res)
}

// fetchAll lists targets concurrently, keeping their order. Unless keepGoing
// is set the first failure cancels the rest.
func fetchAll(ctx context.Context, targets []source.DataSource, keepGoing bool) ([]channelListing, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]channelListing, len(targets))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range targets {
		g.Go(func() error {
			channels, err := source.Fetch(gctx, src)
			mu.Lock()
			out[i] = channelListing{source: src.Name(), channels: channels, err: err}
			mu.Unlock()
			if err != nil && !keepGoing {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
