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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	t.Setenv("FOO_SOME_0_STRING__KEY", "first val")
	t.Setenv("FOO_SOME_0_INT__KEY", "10")
	t.Setenv("FOO_SOME_2_INT__KEY", "11")
	t.Setenv("FOO_SOME_3_DOO_1_FOO__KEY", "bar")
	t.Setenv("FOO_FOO_2", "baz")
	t.Setenv("FOO_FOO_1", "bar")
	t.Setenv("FOO_A_SIMPLE__KEY", "true")

	// WHEN
	konf, err := koanfFromEnv("FOO_")

	// THEN
	require.NoError(t, err)

	foo, ok := konf.Get("foo").([]any)
	require.True(t, ok)
	assert.Equal(t, []any{nil, "bar", "baz"}, foo)

	some, ok := konf.Get("some").([]any)
	require.True(t, ok)
	require.Len(t, some, 4)
	assert.Equal(t, map[string]any{"string_key": "first val", "int_key": 10}, some[0])
	assert.Nil(t, some[1])
	assert.Equal(t, map[string]any{"int_key": 11}, some[2])

	entry4, ok := some[3].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{nil, map[string]any{"foo_key": "bar"}}, entry4["doo"])

	assert.Equal(t, true, konf.Get("a.simple_key"))
}

func TestIndicesToSlices(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		in  any
		exp any
	}{
		"scalar":      {in: "foo", exp: "foo"},
		"empty map":   {in: map[string]any{}, exp: map[string]any{}},
		"regular map": {in: map[string]any{"a": 1}, exp: map[string]any{"a": 1}},
		"mixed keys":  {in: map[string]any{"0": 1, "a": 2}, exp: map[string]any{"0": 1, "a": 2}},
		"indices":     {in: map[string]any{"2": "c", "0": "a"}, exp: []any{"a", nil, "c"}},
		"nested": {
			in:  map[string]any{"x": map[string]any{"0": map[string]any{"1": true}}},
			exp: map[string]any{"x": []any{[]any{nil, true}}},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, indicesToSlices(tc.in))
		})
	}
}
