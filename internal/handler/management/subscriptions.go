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
	"github.com/google/uuid"

	"github.com/dadrus/hookr/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/x/errorchain"
)

const maxRequestBodySize = 64 * 1024

type subscriptionRequest struct {
	Prefix *string `json:"prefix" validate:"required"`
}

type routeResponse struct {
	Topic   string   `json:"topic"`
	Matches []string `json:"matches"`
}

func route(reg subscription.Registry, eh errorhandler.ErrorHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		query := req.URL.Query()
		if !query.Has("topic") {
			eh.HandleError(rw, req, errorchain.NewWithMessage(hookr.ErrArgument,
				"query parameter 'topic' is required"))

			return
		}

		topic := query.Get("topic")
		matches := reg.Route(req.Context(), topic)

		if matches == nil {
			matches = []string{}
		}

		writeJSON(rw, http.StatusOK, routeResponse{Topic: topic, Matches: matches})
	}
}

type subscriptions struct {
	reg subscription.Registry
	v   validation.Validator
	eh  errorhandler.ErrorHandler
}

func (h *subscriptions) list(rw http.ResponseWriter, _ *http.Request) {
	subs := h.reg.List()
	if subs == nil {
		subs = []subscription.Subscription{}
	}

	writeJSON(rw, http.StatusOK, subs)
}

func (h *subscriptions) get(rw http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	sub, ok := h.reg.Get(id)
	if !ok {
		h.eh.HandleError(rw, req, errorchain.NewWithMessagef(hookr.ErrSubscriptionNotFound,
			"no subscription with id %s", id))

		return
	}

	writeJSON(rw, http.StatusOK, sub)
}

func (h *subscriptions) put(rw http.ResponseWriter, req *http.Request) {
	h.subscribe(rw, req, req.PathValue("id"))
}

func (h *subscriptions) create(rw http.ResponseWriter, req *http.Request) {
	h.subscribe(rw, req, uuid.NewString())
}

func (h *subscriptions) delete(rw http.ResponseWriter, req *http.Request) {
	if err := h.reg.Unsubscribe(req.Context(), req.PathValue("id")); err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	rw.WriteHeader(http.StatusNoContent)
}

func (h *subscriptions) subscribe(rw http.ResponseWriter, req *http.Request, id string) {
	sub, err := h.decode(rw, req, id)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	if err = h.reg.Subscribe(req.Context(), sub); err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	rw.Header().Set("Location", EndpointSubscriptions+"/"+sub.ID)
	writeJSON(rw, http.StatusCreated, sub)
}

func (h *subscriptions) decode(
	rw http.ResponseWriter, req *http.Request, id string,
) (subscription.Subscription, error) {
	var body subscriptionRequest

	dec := json.NewDecoder(http.MaxBytesReader(rw, req.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return subscription.Subscription{}, errorchain.NewWithMessage(hookr.ErrArgument,
			"failed to decode request body").CausedBy(err)
	}

	if err := h.v.ValidateStruct(body); err != nil {
		return subscription.Subscription{}, errorchain.NewWithMessage(hookr.ErrArgument,
			"invalid request body").CausedBy(err)
	}

	sub := subscription.Subscription{ID: id, Prefix: *body.Prefix}

	if err := h.v.ValidateStruct(sub); err != nil {
		return subscription.Subscription{}, errorchain.NewWithMessage(hookr.ErrArgument,
			"invalid subscription").CausedBy(err)
	}

	return sub, nil
}
