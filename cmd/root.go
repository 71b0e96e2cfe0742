package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/hookr/version"
)

// RootCmd represents the base command when called without any subcommands.
// nolint: gochecknoglobals
var RootCmd = &cobra.Command{
	Use:          "hookr",
	Short:        "Routes event topics to the subscriptions registered for their prefixes",
	Version:      version.Version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
