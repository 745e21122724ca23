package cmd

import (
	"fmt"
	"swarm/internal/cli"
	"swarm/internal/source"

	"github.com/spf13/cobra"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List and edit the configured data sources",
		Long: `Data sources are written as "name;type:params", for example

  AVO;wws:pubavo1.wr.usgs.gov:16022
  IRIS;fdsnws:service.iris.edu:AV:*:*:BHZ
  Local;file:/data/channels.txt`,
	}
	cmd.AddCommand(newSourcesListCmd(), newSourcesAddCmd(), newSourcesRemoveCmd(), newSourcesEditCmd())
	return cmd
}

func newSourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured data sources",
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

			type sourceRow struct {
				Name   string `json:"name" yaml:"name"`
				Type   string `json:"type" yaml:"type"`
				Config string `json:"config" yaml:"config"`
			}
			res := cli.Result{
				Columns: []string{"name", "type", "config"},
				Empty:   "No data sources configured.",
			}
			rows := []sourceRow{}
			for _, src := range application.Services().Registry.List() {
				spec, _ := source.ParseSpec(src.ConfigString())
				rows = append(rows, sourceRow{Name: src.Name(), Type: spec.Type, Config: src.ConfigString()})
				res.Rows = append(res.Rows, []interface{}{src.Name(), cli.Dash(spec.Type), src.ConfigString()})
			}
			res.Data = rows
			return out.Print(res)
		},
	}
}

func newSourcesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <config>",
		Short: "Add a data source, replacing one with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.New(args[0])
			if err != nil {
				return err
			}
			application, err := newApplication(true)
			if err != nil {
				return err
			}
			services := application.Services()
			services.Chooser.AddSource(src)
			if err := services.SaveSources(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", src.Name())
			return nil
		},
	}
}

func newSourcesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(true)
			if err != nil {
				return err
			}
			services := application.Services()
			if !services.Chooser.RemoveSource(args[0]) {
				return fmt.Errorf("source %s not found", args[0])
			}
			if err := services.SaveSources(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newSourcesEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name> <config>",
		Short: "Replace a data source's configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.New(args[1])
			if err != nil {
				return err
			}
			application, err := newApplication(true)
			if err != nil {
				return err
			}
			services := application.Services()
			if err := services.Chooser.EditSource(args[0], src); err != nil {
				return err
			}
			if err := services.SaveSources(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", src.Name())
			return nil
		},
	}
}
