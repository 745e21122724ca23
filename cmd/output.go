package cmd

import (
	"swarm/internal/cli"

	"github.com/spf13/cobra"
)

// printer returns a printer for the --format flag writing to the command's output.
func printer(cmd *cobra.Command) (*cli.Printer, error) {
	format, err := cli.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(format, cmd.OutOrStdout()), nil
}
