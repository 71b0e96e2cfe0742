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

package management

import (
	"fmt"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/hookr/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/hookr/internal/handler/middleware/http/passthrough"
	prometheusmw "github.com/dadrus/hookr/internal/handler/middleware/http/prometheus"
	"github.com/dadrus/hookr/internal/handler/middleware/http/recovery"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/x"
)

func newService(
	conf *config.Configuration,
	registerer prometheus.Registerer,
	log zerolog.Logger,
	reg subscription.Registry,
	validator validation.Validator,
) *http.Server {
	cfg := conf.Serve
	eh := errorhandler.New()
	opFilter := func(req *http.Request) bool { return req.URL.Path == EndpointHealth }

	hc := alice.New(
		accesslog.New(log),
		recovery.New(eh),
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName("management"),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s%s",
						x.IfThenElse(req.TLS != nil, "https", "http"), req.Host, req.URL.Path)
				}),
				otelhttp.WithFilter(opFilter),
			)
		},
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return prometheusmw.New(
					prometheusmw.WithServiceName("management"),
					prometheusmw.WithNamespace("hookr"),
					prometheusmw.WithRegisterer(registerer),
					prometheusmw.WithOperationFilter(opFilter),
				)
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
		cors.New(corsOptions(cfg.CORS)).Handler,
	).Then(newManagementHandler(reg, validator, eh))

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
	}
}

// corsOptions falls back to a read-only policy allowing any origin to query
// the registry if nothing has been configured.
func corsOptions(cfg *config.CORS) cors.Options {
	if cfg == nil {
		return cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodHead},
		}
	}

	return cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		ExposedHeaders:   cfg.ExposedHeaders,
		MaxAge:           int(cfg.MaxAge.Seconds()),
	}
}
