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

package fxlcm

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/handler/fxlcm/mocks"
	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/testsupport"
)

func TestLifecycleManagerStart(t *testing.T) {
	for uc, tc := range map[string]struct {
		serveErr error
		assert   func(t *testing.T, exit *testsupport.PatchedOSExit, logs string)
	}{
		"successful start": {
			assert: func(t *testing.T, exit *testsupport.PatchedOSExit, logs string) {
				t.Helper()

				assert.False(t, exit.Called())
				assert.Contains(t, logs, "Starting listening")
				assert.NotContains(t, logs, "error")
			},
		},
		"serving fails": {
			serveErr: errors.New("test error"),
			assert: func(t *testing.T, exit *testsupport.PatchedOSExit, logs string) {
				t.Helper()

				assert.True(t, exit.Called())
				assert.Equal(t, 1, exit.Code())
				assert.Contains(t, logs, "Could not start service")
				assert.Contains(t, logs, "test error")
			},
		},
		"server closed": {
			serveErr: http.ErrServerClosed,
			assert: func(t *testing.T, exit *testsupport.PatchedOSExit, logs string) {
				t.Helper()

				assert.False(t, exit.Called())
				assert.Contains(t, logs, "Service stopped")
				assert.NotContains(t, logs, "error")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			port, err := testsupport.GetFreePort()
			require.NoError(t, err)

			served := make(chan struct{})
			srv := &mocks.ServerMock{}
			srv.On("Serve", mock.Anything).Return(tc.serveErr).Run(func(mock.Arguments) { close(served) })

			tb := &testsupport.TestingLog{TB: t}

			lcm := &LifecycleManager{
				ServiceName:    "foo",
				ServiceAddress: fmt.Sprintf("127.0.0.1:%d", port),
				Server:         srv,
				Logger:         zerolog.New(zerolog.TestWriter{T: tb}),
			}

			// WHEN
			err = lcm.Start(t.Context())

			// THEN
			require.NoError(t, err)

			select {
			case <-served:
			case <-time.After(time.Second):
				require.Fail(t, "server has not been started")
			}

			time.Sleep(50 * time.Millisecond)

			tc.assert(t, exit, tb.CollectedLog())
			srv.AssertExpectations(t)
		})
	}
}

func TestLifecycleManagerStartWithOccupiedAddress(t *testing.T) {
	t.Parallel()

	// GIVEN
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer ln.Close()

	srv := &mocks.ServerMock{}

	lcm := &LifecycleManager{
		ServiceName:    "foo",
		ServiceAddress: ln.Addr().String(),
		Server:         srv,
		Logger:         zerolog.Nop(),
	}

	// WHEN
	err = lcm.Start(t.Context())

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, hookr.ErrInternal)
	assert.Contains(t, err.Error(), "foo service")
	srv.AssertNotCalled(t, "Serve", mock.Anything)
}

func TestLifecycleManagerStop(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		shutdownErr error
		assert      func(t *testing.T, err error, logs string)
	}{
		"stopped without error": {
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logs, "Tearing down service")
				assert.NotContains(t, logs, "error")
			},
		},
		"stopped with error": {
			shutdownErr: errors.New("test error"),
			assert: func(t *testing.T, err error, logs string) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, logs, "Graceful shutdown failed")
				assert.Contains(t, logs, "test error")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			srv := &mocks.ServerMock{}
			srv.On("Shutdown", mock.Anything).Return(tc.shutdownErr)

			tb := &testsupport.TestingLog{TB: t}

			lcm := &LifecycleManager{
				ServiceName: "foo",
				Server:      srv,
				Logger:      zerolog.New(zerolog.TestWriter{T: tb}),
			}

			// WHEN
			err := lcm.Stop(t.Context())

			// THEN
			tc.assert(t, err, tb.CollectedLog())
			srv.AssertExpectations(t)
		})
	}
}
