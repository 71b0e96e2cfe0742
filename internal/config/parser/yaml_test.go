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
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/hookr"
)

func TestKoanfFromYaml(t *testing.T) {
	t.Setenv("HOOKR_TEST_PREFIX", "user.")

	for uc, tc := range map[string]struct {
		config []byte
		assert func(t *testing.T, err error, konf *koanf.Koanf)
	}{
		"valid content": {
			config: []byte(`
some_string: foo
someint: 3
nested1:
  somebool: true
  some_string: ${HOOKR_TEST_PREFIX}created
nested_2:
  - somebool: false
    some_string: baz
`),
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo", konf.Get("some_string"))
				assert.Equal(t, 3, konf.Get("someint"))
				assert.Equal(t, "user.created", konf.Get("nested1.some_string"))
				assert.Equal(t, true, konf.Get("nested1.somebool"))
				assert.Len(t, konf.Get("nested_2"), 1)
				assert.Contains(t, konf.Get("nested_2"), map[string]any{"some_string": "baz", "somebool": false})
			},
		},
		"invalid content": {
			config: []byte("foobar"),
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed to load")
			},
		},
		"invalid substitution": {
			config: []byte("foo: ${HOOKR_TEST_PREFIX"),
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				assert.Contains(t, err.Error(), "substitute")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			fileName := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(fileName, tc.config, 0o600))

			// WHEN
			konf, err := koanfFromYaml(fileName)

			// THEN
			tc.assert(t, err, konf)
		})
	}
}
