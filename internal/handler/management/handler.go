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
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dadrus/hookr/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
)

const (
	EndpointHealth        = "/.well-known/health"
	EndpointRoute         = "/route"
	EndpointSubscriptions = "/subscriptions"
)

func newManagementHandler(
	reg subscription.Registry,
	validator validation.Validator,
	eh errorhandler.ErrorHandler,
) http.Handler {
	subs := &subscriptions{reg: reg, v: validator, eh: eh}
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+EndpointHealth, health)
	mux.HandleFunc("GET "+EndpointRoute, route(reg, eh))
	mux.HandleFunc("GET "+EndpointSubscriptions, subs.list)
	mux.HandleFunc("POST "+EndpointSubscriptions, subs.create)
	mux.HandleFunc("GET "+EndpointSubscriptions+"/{id}", subs.get)
	mux.HandleFunc("PUT "+EndpointSubscriptions+"/{id}", subs.put)
	mux.HandleFunc("DELETE "+EndpointSubscriptions+"/{id}", subs.delete)

	return mux
}

func health(rw http.ResponseWriter, _ *http.Request) {
	type status struct {
		Status string `json:"status"`
	}

	writeJSON(rw, http.StatusOK, status{Status: "ok"})
}

func writeJSON(rw http.ResponseWriter, code int, body any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	_ = json.NewEncoder(rw).Encode(body)
}
