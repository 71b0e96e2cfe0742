package cmd

import "github.com/dadrus/hookr/cmd/health"

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(health.NewHealthCommand())
}
