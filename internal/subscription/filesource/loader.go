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

package filesource

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/watcher"
)

// Loader feeds the subscription files referenced in the configuration into a registry.
type Loader struct {
	sources []*fileSource
	l       zerolog.Logger
}

func NewLoader(
	conf *config.Configuration,
	reg subscription.Registry,
	validator validation.Validator,
	logger zerolog.Logger,
) (*Loader, error) {
	sources := make([]*fileSource, len(conf.Subscriptions.Sources))

	for i, path := range conf.Subscriptions.Sources {
		src, err := newFileSource(path, reg, validator)
		if err != nil {
			return nil, err
		}

		sources[i] = src
	}

	return &Loader{sources: sources, l: logger}, nil
}

// Load loads all subscription files once, stopping at the first failing one.
func (l *Loader) Load(ctx context.Context) error {
	for _, src := range l.sources {
		count, err := src.load(ctx)
		if err != nil {
			return err
		}

		l.l.Info().
			Str("_source", src.path).
			Int("_count", count).
			Msg("Subscriptions loaded")
	}

	return nil
}

// Watch reloads the subscription files whenever w reports a change.
func (l *Loader) Watch(w watcher.Watcher) error {
	for _, src := range l.sources {
		if err := w.Add(src.path, src); err != nil {
			return err
		}

		l.l.Debug().Str("_source", src.path).Msg("Watching subscription file for changes")
	}

	return nil
}
