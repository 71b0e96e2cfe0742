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
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

type metricsHandler struct {
	reqCounter      *prometheus.CounterVec
	reqHistogram    *prometheus.HistogramVec
	reqInFlight     *prometheus.GaugeVec
	filterOperation OperationFilter
}

// New observes requests handled by the wrapped http.ServeMux. Requests are labeled with
// the mux pattern they have been routed by, not with their actual path.
func New(opts ...Option) func(http.Handler) http.Handler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	factory := promauto.With(options.registerer)

	handler := &metricsHandler{
		reqCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "requests_total"),
			Help:        "Count all http requests by status code, method and route.",
			ConstLabels: options.labels,
		}, []string{"status_code", "method", "route"}),
		reqHistogram: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "request_duration_seconds"),
			Help:        "Duration of all http requests by status code, method and route.",
			ConstLabels: options.labels,
			Buckets: []float64{
				0.00001, 0.000025, 0.00005, 0.000075, // 10, 25, 50, 75µs
				0.0001, 0.00025, 0.0005, 0.00075, // 100, 250, 500, 750µs
				0.001, 0.0025, 0.005, 0.0075, // 1, 2.5, 5, 7.5ms
				0.01, 0.025, 0.05, 0.075, // 10, 25, 50, 75ms
				0.1, 0.25, 0.5, 0.75, // 100, 250, 500 750ms
				1.0, 2.0, // 1, 2s
			},
		}, []string{"status_code", "method", "route"}),
		reqInFlight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        prometheus.BuildFQName(options.namespace, options.subsystem, "requests_in_progress_total"),
			Help:        "All the requests in progress",
			ConstLabels: options.labels,
		}, []string{"method"}),
		filterOperation: options.filterOperation,
	}

	return handler.observeRequest
}

func (h *metricsHandler) observeRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if h.filterOperation(req) {
			next.ServeHTTP(rw, req)

			return
		}

		h.reqInFlight.WithLabelValues(req.Method).Inc()
		defer h.reqInFlight.WithLabelValues(req.Method).Dec()

		metrics := httpsnoop.CaptureMetrics(next, rw, req)

		// set by the mux while routing the request
		route := req.Pattern
		if len(route) == 0 {
			route = unmatchedRoute
		}

		statusCode := strconv.Itoa(metrics.Code)
		h.reqCounter.WithLabelValues(statusCode, req.Method, route).Inc()
		h.reqHistogram.WithLabelValues(statusCode, req.Method, route).Observe(metrics.Duration.Seconds())
	})
}
