package health

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/handler/management"
)

func TestRunHealthCommand(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		status int
		output string
		assert func(t *testing.T, err error, out string)
	}{
		"healthy with text output": {
			status: http.StatusOK,
			output: "text",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "ok\n", out)
			},
		},
		"healthy with json output": {
			status: http.StatusOK,
			output: "json",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.JSONEq(t, `{"status":"ok"}`, out)
			},
		},
		"healthy with yaml output": {
			status: http.StatusOK,
			output: "yaml",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "status: ok", strings.TrimSpace(out))
			},
		},
		"unsupported output format": {
			status: http.StatusOK,
			output: "xml",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnsupportedOutputFormat)
				assert.Contains(t, err.Error(), "xml")
				assert.Empty(t, out)
			},
		},
		"unhealthy": {
			status: http.StatusServiceUnavailable,
			output: "text",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnhealthy)
				assert.Empty(t, out)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				if req.URL.Path != management.EndpointHealth {
					rw.WriteHeader(http.StatusNotFound)

					return
				}

				rw.WriteHeader(tc.status)
				_, _ = rw.Write([]byte(`{"status":"ok"}`))
			}))
			defer srv.Close()

			cmd := NewHealthCommand()

			buf := bytes.NewBuffer(nil)
			cmd.SetOut(buf)

			require.NoError(t, cmd.ParseFlags([]string{"-e", srv.URL, "-o", tc.output}))

			// WHEN
			err := cmd.RunE(cmd, nil)

			// THEN
			tc.assert(t, err, buf.String())
		})
	}
}

func TestRunHealthCommandWithUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	// GIVEN
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cmd := NewHealthCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-e", url}))

	// WHEN
	err := cmd.RunE(cmd, nil)

	// THEN
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}
