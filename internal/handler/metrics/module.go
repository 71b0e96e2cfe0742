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

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/handler/fxlcm"
)

var Module = fx.Invoke( // nolint: gochecknoglobals
	fx.Annotate(
		newLifecycleManager,
		fx.OnStart(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Start(ctx) }),
		fx.OnStop(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Stop(ctx) }),
	),
)

const readHeaderTimeout = 5 * time.Second

type lifecycleManager interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type noopManager struct{}

func (noopManager) Start(context.Context) error { return nil }
func (noopManager) Stop(context.Context) error  { return nil }

// promhttp logs through this adapter.
type errorLogger func(v ...any)

func (l errorLogger) Println(v ...any) { l(v...) }

func newLifecycleManager(
	conf *config.Configuration,
	logger zerolog.Logger,
	registerer prometheus.Registerer,
	gatherer prometheus.Gatherer,
) lifecycleManager {
	cfg := conf.Metrics

	if !cfg.Enabled {
		logger.Info().Msg("Metrics service disabled")

		return noopManager{}
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+cfg.MetricsPath, promhttp.InstrumentMetricHandler(
		registerer,
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			Registry: registerer,
			ErrorLog: errorLogger(func(v ...any) { logger.Error().Msg(fmt.Sprint(v...)) }),
		}),
	))

	return &fxlcm.LifecycleManager{
		ServiceName:    "Metrics",
		ServiceAddress: cfg.Address(),
		Server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		Logger: logger,
	}
}
