package schema

import _ "embed"

// ConfigSchema is the JSON schema hookr's configuration file is validated against
//
//go:embed config.schema.json
var ConfigSchema []byte
