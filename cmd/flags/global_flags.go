package flags

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"

	defaultEnvConfigPrefix = "HOOKRCFG_"
)
