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

	"go.uber.org/fx"

	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLoader),
	fx.Invoke(registerLoader),
)

func registerLoader(lc fx.Lifecycle, conf *config.Configuration, loader *Loader, w watcher.Watcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := loader.Load(ctx); err != nil {
				return err
			}

			if !conf.Subscriptions.Watch {
				if len(loader.sources) != 0 {
					loader.l.Warn().Msg("Watching of subscription files is disabled. Changes will have no effect")
				}

				return nil
			}

			return loader.Watch(w)
		},
	})
}
