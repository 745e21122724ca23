package cmd

import (
	"os"
	"swarm/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	debugMode    bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swarm",
	Short: "Browse seismic data sources and open their channels",
	Long: `swarm lists the channels offered by seismic data sources (Winston and
Earthworm wave servers, FDSN web services, channel-list files), groups them
by station metadata, finds the channels nearest to a station and hands a
selection to helicorder, realtime wave, clipboard or monitor viewers.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreachable sources)
	SilenceUsage: true,
}

const versionTemplate = `{{printf "swarm version %s\n" .Version}}`

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	rootCmd.Version = v
	rootCmd.SetVersionTemplate(versionTemplate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: layered ~/.config/swarm and ./.swarm)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")

	rootCmd.AddCommand(newChooserCmd())
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newChannelsCmd())
	rootCmd.AddCommand(newNearestCmd())
	rootCmd.AddCommand(newMapCmd())
	rootCmd.AddCommand(newMonitorCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// newApplication loads configuration for commands that only read or edit it.
func newApplication(noTUI bool) (*app.Application, error) {
	return app.NewApplication(app.NewConfig(noTUI, debugMode, configPath))
}
