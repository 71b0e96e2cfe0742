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
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/x/testsupport"
)

func TestDecodeLogLevel(t *testing.T) {
	t.Parallel()

	type Type struct {
		Level zerolog.Level `mapstructure:"level"`
	}

	for uc, tc := range map[string]struct {
		config   []byte
		expected zerolog.Level
	}{
		"panic level":                       {config: []byte(`level: panic`), expected: zerolog.PanicLevel},
		"fatal level":                       {config: []byte(`level: fatal`), expected: zerolog.FatalLevel},
		"error level":                       {config: []byte(`level: error`), expected: zerolog.ErrorLevel},
		"warn level":                        {config: []byte(`level: warn`), expected: zerolog.WarnLevel},
		"info level":                        {config: []byte(`level: info`), expected: zerolog.InfoLevel},
		"debug level":                       {config: []byte(`level: debug`), expected: zerolog.DebugLevel},
		"trace level":                       {config: []byte(`level: trace`), expected: zerolog.TraceLevel},
		"disabled":                          {config: []byte(`level: disabled`), expected: zerolog.Disabled},
		"unknown level with info fallback": {config: []byte(`level: foo`), expected: zerolog.InfoLevel},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logLevelDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			conf, err := testsupport.DecodeTestConfig(tc.config)
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(conf)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ.Level)
		})
	}
}

func TestDecodeLogFormat(t *testing.T) {
	t.Parallel()

	type Type struct {
		Format LogFormat `mapstructure:"format"`
	}

	for uc, tc := range map[string]struct {
		config   []byte
		expected LogFormat
	}{
		"gelf format":                         {config: []byte(`format: gelf`), expected: LogGelfFormat},
		"text format":                         {config: []byte(`format: text`), expected: LogTextFormat},
		"unknown format with text as fallback": {config: []byte(`format: foo`), expected: LogTextFormat},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logFormatDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			conf, err := testsupport.DecodeTestConfig(tc.config)
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(conf)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ.Format)
		})
	}
}
