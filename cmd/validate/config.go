package validate

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/hookr/cmd/flags"
	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/subscription/filesource"
)

var ErrNoConfigFile = errors.New("no config file provided")

func NewValidateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Validates hookr's configuration and the subscription files it references",
		Example: "hookr validate config -c myconfig.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString(flags.Config)
			if len(configPath) == 0 {
				return ErrNoConfigFile
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if _, err := LoadRegistry(ctx, cmd); err != nil {
				return err
			}

			cmd.Println("Configuration is valid")

			return nil
		},
	}
}

// LoadRegistry builds a registry from the configuration referenced by cmd's flags,
// including the subscriptions from all configured subscription files. Nothing is
// watched and no metrics are exposed.
func LoadRegistry(ctx context.Context, cmd *cobra.Command) (subscription.Registry, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)
	logger := zerolog.Nop()

	validator, err := subscription.NewValidator()
	if err != nil {
		return nil, err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return nil, err
	}

	reg, err := subscription.NewRegistry(conf, validator, prometheus.NewRegistry(), logger)
	if err != nil {
		return nil, err
	}

	loader, err := filesource.NewLoader(conf, reg, validator, logger)
	if err != nil {
		return nil, err
	}

	if err = loader.Load(ctx); err != nil {
		return nil, err
	}

	return reg, nil
}
