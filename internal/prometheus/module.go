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

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/dadrus/hookr/version"
)

var Module = fx.Options( //nolint:gochecknoglobals
	fx.Provide(NewRegistry),
)

// NewRegistry returns a registry, which is not shared with the default one of the
// prometheus library and already carries the runtime collectors.
func NewRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(collectors.WithGoCollections(collectors.GoRuntimeMetricsCollection)),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   "hookr",
				Name:        "info",
				Help:        "Information about the running hookr instance",
				ConstLabels: prometheus.Labels{"version": version.Version},
			},
			func() float64 { return 1 },
		),
	)

	return reg, reg
}
