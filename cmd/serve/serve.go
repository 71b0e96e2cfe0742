package serve

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Starts hookr's management api and routes topics to the registered subscriptions",
		Example: "hookr serve -c /etc/hookr/config.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createApp(cmd, fx.Options())
			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}
