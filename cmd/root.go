// Package cmd wires the command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:           "internhunt",
	Short:         "Find intern and co-op postings across company career sites",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "log in JSON format")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
