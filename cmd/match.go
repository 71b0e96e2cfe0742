package cmd

import (
	"github.com/dadrus/hookr/cmd/flags"
	"github.com/dadrus/hookr/cmd/match"
)

// nolint: gochecknoinits
func init() {
	cmd := match.NewMatchCommand()
	flags.RegisterGlobalFlags(cmd)

	RootCmd.AddCommand(cmd)
}
