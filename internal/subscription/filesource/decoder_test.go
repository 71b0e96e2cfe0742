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

package filesource

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
)

func newTestValidator(t *testing.T) validation.Validator {
	t.Helper()

	validator, err := validation.NewValidator(
		validation.WithTagValidator(subscription.IDValidator{}),
		validation.WithErrorTranslator(subscription.IDValidator{}),
	)
	require.NoError(t, err)

	return validator
}

func TestDecode(t *testing.T) {
	t.Setenv("HOOKR_TEST_PREFIX", "order.")

	for uc, tc := range map[string]struct {
		opts   []DecoderOption
		data   []byte
		assert func(t *testing.T, err error, set subscriptionSet)
	}{
		"unknown content type": {
			opts: []DecoderOption{WithSourceContentType("foo")},
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrInternal)
				require.ErrorContains(t, err, "unsupported content type: foo")
			},
		},
		"env var substitution fails": {
			opts: []DecoderOption{
				WithSourceContentType("application/json"),
				WithEnvVarsSubstitution(true),
			},
			data: []byte(`{"subscriptions": [{"id": "${FOO"}]}`),
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				require.ErrorContains(t, err, "substitution of environment variables")
			},
		},
		"no document": {
			opts: []DecoderOption{WithSourceContentType("application/yaml")},
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, io.EOF)
			},
		},
		"malformed document": {
			opts: []DecoderOption{WithSourceContentType("application/json")},
			data: []byte(`{ "subscriptions": `),
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				require.ErrorContains(t, err, "parsing of object failed")
			},
		},
		"unused fields": {
			opts: []DecoderOption{
				WithSourceContentType("application/yaml"),
				WithErrorOnUnused(true),
			},
			data: []byte("subscriptions:\n  - id: foo\n    topic: bar\n"),
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				require.ErrorContains(t, err, "decoding of object failed")
			},
		},
		"validation fails": {
			opts: []DecoderOption{
				WithSourceContentType("application/yaml"),
				WithValidator(newTestValidator(t)),
			},
			data: []byte("subscriptions:\n  - prefix: bar\n"),
			assert: func(t *testing.T, err error, _ subscriptionSet) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrConfiguration)
				require.ErrorContains(t, err, "'id' is a required field")
			},
		},
		"yaml with substituted env vars": {
			opts: []DecoderOption{
				WithSourceContentType("application/yaml"),
				WithEnvVarsSubstitution(true),
				WithErrorOnUnused(true),
				WithValidator(newTestValidator(t)),
			},
			data: []byte("subscriptions:\n  - id: orders\n    prefix: ${HOOKR_TEST_PREFIX}\n  - id: audit\n"),
			assert: func(t *testing.T, err error, set subscriptionSet) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []subscription.Subscription{
					{ID: "orders", Prefix: "order."},
					{ID: "audit"},
				}, set.Subscriptions)
			},
		},
		"json": {
			opts: []DecoderOption{
				WithSourceContentType("application/json"),
				WithValidator(newTestValidator(t)),
			},
			data: []byte(`{"subscriptions": [{"id": "users", "prefix": "user."}]}`),
			assert: func(t *testing.T, err error, set subscriptionSet) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []subscription.Subscription{{ID: "users", Prefix: "user."}}, set.Subscriptions)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			dec := NewDecoder[subscriptionSet](tc.opts...)

			// WHEN
			set, err := dec.Decode(bytes.NewBuffer(tc.data))

			// THEN
			tc.assert(t, err, set)
		})
	}
}
