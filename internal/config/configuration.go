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
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/hookr/internal/config/parser"
	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/x/errorchain"
)

const defaultConfigFileName = "hookr.yaml"

type (
	ConfigurationPath string
	EnvVarPrefix      string
)

type Configuration struct {
	Serve         ServeConfig         `koanf:"serve"`
	Log           LoggingConfig       `koanf:"log"`
	Metrics       MetricsConfig       `koanf:"metrics"`
	Tracing       TracingConfig       `koanf:"tracing"`
	Cache         CacheConfig         `koanf:"cache"`
	Subscriptions SubscriptionsConfig `koanf:"subscriptions"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		parser.WithDecodeHookFunc(mapstructure.StringToSliceHookFunc(",")),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithDefaultConfigFilename(defaultConfigFileName),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/hookr"),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfig),
	}

	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(filepath.Join(home, ".config")))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
