package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "ecoshare-cli",
	Short: "EcoShare CLI tool",
	Long: `EcoShare CLI inspects the EcoShare web client without starting it.

Available commands:
  routes     Print the navigation table
  tiles      Print the dashboard tiles
  topics     Print the published event topics
  version    Print the version

Use "ecoshare-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
}
