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

package listener

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/testsupport"
)

func TestCreateNewListener(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		network string
		address func(t *testing.T) string
		assert  func(t *testing.T, err error, ln net.Listener, address string)
	}{
		"unsupported network": {
			network: "foo",
			address: func(t *testing.T) string {
				t.Helper()

				return "127.0.0.1:0"
			},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrInternal)
				assert.Contains(t, err.Error(), "failed creating listener")
			},
		},
		"address already in use": {
			network: "tcp",
			address: func(t *testing.T) string {
				t.Helper()

				ln, err := net.Listen("tcp", "127.0.0.1:0")
				require.NoError(t, err)
				t.Cleanup(func() { ln.Close() })

				return ln.Addr().String()
			},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, hookr.ErrInternal)
			},
		},
		"successful creation": {
			network: "tcp",
			address: func(t *testing.T) string {
				t.Helper()

				port, err := testsupport.GetFreePort()
				require.NoError(t, err)

				return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
			},
			assert: func(t *testing.T, err error, ln net.Listener, address string) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, ln)
				assert.Equal(t, address, ln.Addr().String())
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			address := tc.address(t)

			// WHEN
			ln, err := New(tc.network, address)
			if err == nil {
				defer ln.Close()
			}

			// THEN
			tc.assert(t, err, ln, address)
		})
	}
}
