package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to hookr's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. $HOME/.config\n  3. /etc/hookr/")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, defaultEnvConfigPrefix,
		"Prefix for the environment variables to consider for\nloading configuration from")
}
