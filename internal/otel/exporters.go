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
package otel

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/dadrus/hookr/internal/x/errorchain"
)

var (
	ErrUnsupportedTracesExporter    = errors.New("unsupported traces exporter")
	ErrUnsupportedOTLPProtocol      = errors.New("unsupported OTLP protocol")
	ErrFailedCreatingTracesExporter = errors.New("failed creating traces exporter")
)

const (
	envTracesExporter     = "OTEL_TRACES_EXPORTER"
	envOTLPProtocol       = "OTEL_EXPORTER_OTLP_PROTOCOL"
	envOTLPTracesProtocol = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
	defaultTracesExporter = "otlp"
	exporterNone          = "none"
)

type spanExporterFactory func(ctx context.Context) (trace.SpanExporter, error)

// nolint: gochecknoglobals
var spanExporterFactories = map[string]spanExporterFactory{
	"otlp": newOTLPSpanExporter,
	"zipkin": func(_ context.Context) (trace.SpanExporter, error) {
		return zipkin.New("")
	},
}

// newSpanExporters creates the exporters listed in OTEL_TRACES_EXPORTER, otlp if
// nothing is listed. "none" anywhere in the list disables exporting.
func newSpanExporters(ctx context.Context) ([]trace.SpanExporter, error) {
	names := defaultTracesExporter
	if val := os.Getenv(envTracesExporter); len(val) != 0 {
		names = val
	}

	var exporters []trace.SpanExporter

	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == exporterNone {
			return nil, nil
		}

		create, ok := spanExporterFactories[name]
		if !ok {
			return nil, errorchain.NewWithMessage(ErrUnsupportedTracesExporter, name)
		}

		exporter, err := create(ctx)
		if err != nil {
			return nil, errorchain.NewWithMessage(ErrFailedCreatingTracesExporter, name).CausedBy(err)
		}

		exporters = append(exporters, exporter)
	}

	return exporters, nil
}

func newOTLPSpanExporter(ctx context.Context) (trace.SpanExporter, error) {
	protocol, ok := os.LookupEnv(envOTLPTracesProtocol)
	if !ok {
		protocol = os.Getenv(envOTLPProtocol)
	}

	switch protocol {
	case "", "http/protobuf":
		return otlptracehttp.New(ctx)
	case "grpc":
		return otlptracegrpc.New(ctx)
	default:
		return nil, errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
	}
}
