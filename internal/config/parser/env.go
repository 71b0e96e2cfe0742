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
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/errorchain"
	"github.com/dadrus/hookr/internal/x/stringx"
)

// koanfFromEnv reads all environment variables starting with prefix. After the prefix
// is removed, "__" stands for an "_" in the key, "_" for a nesting level and numeric
// levels for slice indices. E.g. HOOKRCFG_SUBSCRIPTIONS_STATIC_0_ID=foo sets
// subscriptions.static[0].id.
func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	flat := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
			tmp = strings.ReplaceAll(tmp, "_", ".")

			return strings.ReplaceAll(tmp, `\:\`, "_"), toRealType(val)
		},
	})

	if err := flat.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	values, ok := indicesToSlices(flat.Raw()).(map[string]any)
	if !ok {
		return nil, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"environment variables must not start with an index")
	}

	parser := koanf.New(".")

	if err := parser.Load(confmap.Provider(values, ""), nil); err != nil {
		return nil, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"failed to convert environment variables to config").CausedBy(err)
	}

	return parser, nil
}

func toRealType(val string) any {
	var parsed map[string]any

	// the yaml parser "guesses" the type of the value for us
	if err := yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed); err != nil {
		return val
	}

	return parsed["val"]
}

// indicesToSlices replaces maps, all keys of which are numbers, by slices. Missing
// positions are left nil.
func indicesToSlices(val any) any {
	values, ok := val.(map[string]any)
	if !ok {
		return val
	}

	maxIdx := -1
	numeric := len(values) != 0

	for key, value := range values {
		values[key] = indicesToSlices(value)

		if !numeric {
			continue
		}

		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			numeric = false

			continue
		}

		maxIdx = max(maxIdx, idx)
	}

	if !numeric {
		return values
	}

	slice := make([]any, maxIdx+1)
	for key, value := range values {
		idx, _ := strconv.Atoi(key)
		slice[idx] = value
	}

	return slice
}
