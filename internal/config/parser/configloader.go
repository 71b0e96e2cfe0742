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

package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(options ...Option) ConfigLoader {
	loader := &configLoader{o: opts{}}

	for _, opt := range options {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// layer is a source of configuration values. Later layers take precedence.
type layer struct {
	name string
	load func() (*koanf.Koanf, error)
}

// Load populates config, which must be a pointer to a struct holding the defaults,
// with values from the yaml config file (if any) and then from the environment.
func (c *configLoader) Load(config any) error {
	configFile, err := c.configFile()
	if err != nil {
		return err
	}

	if len(configFile) != 0 && c.o.validate != nil {
		if err := c.o.validate(configFile); err != nil {
			return err
		}
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	for _, l := range c.layers(configFile) {
		konf, err := l.load()
		if err != nil {
			return fmt.Errorf("loading %s configuration: %w", l.name, err)
		}

		if err = parser.Load(confmap.Provider(konf.Raw(), ""), nil, koanf.WithMergeFunc(mergeInto)); err != nil {
			return fmt.Errorf("merging %s configuration: %w", l.name, err)
		}
	}

	return parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	})
}

func (c *configLoader) layers(configFile string) []layer {
	var layers []layer

	if len(configFile) != 0 {
		layers = append(layers, layer{
			name: "file " + configFile,
			load: func() (*koanf.Koanf, error) { return koanfFromYaml(configFile) },
		})
	}

	return append(layers, layer{
		name: "environment",
		load: func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) },
	})
}

func mergeInto(src, dest map[string]any) error {
	for key, val := range src {
		dest[key] = merge(dest[key], val)
	}

	return nil
}

func (c *configLoader) configFile() (string, error) {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return "", err
		}

		return c.o.configFile, nil
	}

	if len(c.o.defaultConfigFileName) == 0 {
		return "", nil
	}

	for _, confDir := range c.o.configLookupDirs {
		filePath := filepath.Join(confDir, c.o.defaultConfigFileName)
		if _, err := os.Stat(filePath); err == nil {
			return filePath, nil
		}
	}

	return "", nil
}
