package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGlobalFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{Use: "test"}

	// WHEN
	RegisterGlobalFlags(cmd)

	// THEN
	configFlag := cmd.PersistentFlags().Lookup(Config)
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Empty(t, configFlag.DefValue)
	assert.Contains(t, configFlag.Usage, "/etc/hookr/")

	envPrefixFlag := cmd.PersistentFlags().Lookup(EnvironmentConfigPrefix)
	require.NotNil(t, envPrefixFlag)
	assert.Empty(t, envPrefixFlag.Shorthand)
	assert.Equal(t, "HOOKRCFG_", envPrefixFlag.DefValue)
	assert.NotEmpty(t, envPrefixFlag.Usage)
}

func TestParseGlobalFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{Use: "test"}
	RegisterGlobalFlags(cmd)

	// WHEN
	err := cmd.ParseFlags([]string{"-c", "/tmp/hookr.yaml", "--" + EnvironmentConfigPrefix, "FOO_"})

	// THEN
	require.NoError(t, err)

	configPath, _ := cmd.Flags().GetString(Config)
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)

	assert.Equal(t, "/tmp/hookr.yaml", configPath)
	assert.Equal(t, "FOO_", envPrefix)
}
