// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/errorchain"
	"github.com/dadrus/hookr/internal/x/stringx"
	"github.com/dadrus/hookr/schema"
)

// ValidateConfig validates the contents of the given yaml config file, after environment
// variables have been substituted, against hookr's configuration JSON schema.
func ValidateConfig(configPath string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to read config file").CausedBy(err)
	}

	if len(raw) == 0 {
		return errorchain.NewWithMessage(hookr.ErrConfiguration, "config file is empty")
	}

	content, err := envsubst.EvalEnv(stringx.ToString(raw))
	if err != nil {
		return errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to substitute environment variables").CausedBy(err)
	}

	var conf map[string]any

	if err = yaml.NewDecoder(bytes.NewBufferString(content)).Decode(&conf); err != nil {
		return errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to parse config file").CausedBy(err)
	}

	compiledSchema, err := compileSchema("config.schema.json", stringx.ToString(schema.ConfigSchema))
	if err != nil {
		return errorchain.NewWithMessage(hookr.ErrInternal,
			"failed to compile JSON schema").CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to validate config file").CausedBy(err)
	}

	return nil
}

func compileSchema(url, schemaContent string) (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaContent))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}
