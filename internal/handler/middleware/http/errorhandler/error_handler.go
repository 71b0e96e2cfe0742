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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dadrus/hookr/internal/hookr"
)

type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

func New(opts ...Option) ErrorHandler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &errorHandler{opts: options}
}

type errorHandler struct {
	*opts
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, hookr.ErrArgument):
		h.onArgumentError(rw, req, err)
	case errors.Is(err, hookr.ErrSubscriptionNotFound):
		h.onNotFoundError(rw, req, err)
	case errors.Is(err, hookr.ErrSubscriptionExists):
		h.onConflictError(rw, req, err)
	default:
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Internal error occurred")

		h.onInternalError(rw, req, err)
	}
}
