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

package accesslog

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	// GIVEN
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)

	var ctxLoggerAvailable bool

	handler := New(logger)(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		ctxLoggerAvailable = zerolog.Ctx(req.Context()).GetLevel() != zerolog.Disabled

		rw.WriteHeader(http.StatusCreated)
		_, _ = rw.Write([]byte("foobar"))
	}))

	req := httptest.NewRequest(http.MethodPut, "http://hookr.local/subscriptions/foo", nil)
	req.Header.Set("X-Forwarded-For", "10.10.10.10")
	req.Header.Set("User-Agent", "test")

	rec := httptest.NewRecorder()

	// WHEN
	handler.ServeHTTP(rec, req)

	// THEN
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, ctxLoggerAvailable)

	var events []map[string]any

	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var event map[string]any

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}

	require.Len(t, events, 2)

	started, finished := events[0], events[1]
	assert.Equal(t, "TX started", started["message"])
	assert.Equal(t, http.MethodPut, started["_http_method"])
	assert.Equal(t, "/subscriptions/foo", started["_http_path"])
	assert.Equal(t, "hookr.local", started["_http_host"])
	assert.Equal(t, "http", started["_http_scheme"])
	assert.Equal(t, "test", started["_http_user_agent"])
	assert.Equal(t, "10.10.10.10", started["_http_x_forwarded_for"])
	assert.Equal(t, "192.0.2.1", started["_client_ip"])
	assert.NotContains(t, started, "_http_x_request_id")

	assert.Equal(t, "TX finished", finished["message"])
	assert.InDelta(t, float64(http.StatusCreated), finished["_http_status_code"], 0)
	assert.InDelta(t, 6.0, finished["_body_bytes_sent"], 0)
	assert.Contains(t, finished, "_tx_duration_ms")
	assert.Equal(t, started["_tx_start"], finished["_tx_start"])
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		remoteAddr string
		expected   string
	}{
		"ipv4 with port":    {remoteAddr: "192.0.2.1:1234", expected: "192.0.2.1"},
		"ipv6 with port":    {remoteAddr: "[2001:db8::1]:1234", expected: "2001:db8::1"},
		"missing port":      {remoteAddr: "192.0.2.1"},
		"empty remote addr": {},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, clientIP(tc.remoteAddr))
		})
	}
}
