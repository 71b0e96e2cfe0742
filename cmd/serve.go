package cmd

import (
	"github.com/dadrus/hookr/cmd/flags"
	"github.com/dadrus/hookr/cmd/serve"
)

// nolint: gochecknoinits
func init() {
	cmd := serve.NewServeCommand()
	flags.RegisterGlobalFlags(cmd)

	RootCmd.AddCommand(cmd)
}
