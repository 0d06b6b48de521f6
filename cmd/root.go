// Package cmd wires the robocoin command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RogersPyke/robocoin-visualizer/config"
	"github.com/RogersPyke/robocoin-visualizer/logging"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "robocoin",
	Short: "Terminal browser for robotics manipulation datasets",
	Long: `Robocoin browses large robotics manipulation datasets in the
terminal: a virtualized card grid over the episode metadata, faceted
filtering, clip preview posters, and a download cart for exporting
episode selections.`,
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logging.EnableDebug("robocoin-debug.log")
		}
	},
	// Bare `robocoin <root>` browses.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runBrowse(cmd, args)
	},
}

// Execute runs the command tree. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a rotating debug log to robocoin-debug.log")
}

func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}
