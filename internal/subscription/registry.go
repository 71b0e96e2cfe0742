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

package subscription

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jellydator/ttlcache/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dadrus/hookr/internal/config"
	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/x"
	"github.com/dadrus/hookr/internal/x/errorchain"
	"github.com/dadrus/hookr/internal/x/prefixtrie"
	"github.com/dadrus/hookr/internal/x/slicex"
)

type registry struct {
	mut   sync.RWMutex
	trie  *prefixtrie.Trie[string]
	owner map[string]string

	// nil if route caching is disabled
	cache *ttlcache.Cache[string, []string]
	m     *metrics
	l     zerolog.Logger
}

// NewRegistry creates a registry holding the static subscriptions from conf. Its
// route cache, if enabled, evicts expired entries only after Start has been called.
func NewRegistry(
	conf *config.Configuration,
	validator validation.Validator,
	registerer prometheus.Registerer,
	logger zerolog.Logger,
) (Registry, error) {
	reg, err := newRegistry(conf, validator, registerer, logger)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func newRegistry(
	conf *config.Configuration,
	validator validation.Validator,
	registerer prometheus.Registerer,
	logger zerolog.Logger,
) (*registry, error) {
	reg := &registry{
		trie:  prefixtrie.New[string](),
		owner: make(map[string]string),
		m:     newMetrics(registerer),
		l:     logger,
	}

	if conf.Cache.TTL > 0 {
		reg.cache = ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](conf.Cache.TTL),
			ttlcache.WithDisableTouchOnHit[string, []string](),
		)
	}

	static := make([]Subscription, len(conf.Subscriptions.Static))
	for i, sc := range conf.Subscriptions.Static {
		static[i] = Subscription{ID: sc.ID, Prefix: sc.Prefix}

		if err := validator.ValidateStruct(static[i]); err != nil {
			return nil, errorchain.NewWithMessagef(hookr.ErrConfiguration,
				"invalid static subscription #%d", i).CausedBy(err)
		}
	}

	if err := reg.Replace(context.Background(), SourceConfig, static); err != nil {
		return nil, err
	}

	return reg, nil
}

func (r *registry) Start(_ context.Context) error {
	if r.cache != nil {
		go r.cache.Start()
	}

	return nil
}

func (r *registry) Stop(_ context.Context) error {
	if r.cache != nil {
		r.cache.Stop()
	}

	return nil
}

func (r *registry) Subscribe(ctx context.Context, sub Subscription) error {
	if len(sub.ID) == 0 {
		return errorchain.NewWithMessage(hookr.ErrArgument, "subscription id must not be empty")
	}

	r.mut.Lock()
	defer r.mut.Unlock()

	if !r.trie.Add(sub.Prefix, sub.ID) {
		return errorchain.NewWithMessagef(hookr.ErrSubscriptionExists,
			"subscription %s is already registered", sub.ID)
	}

	r.owner[sub.ID] = SourceAPI
	r.changed()

	r.logger(ctx).Debug().
		Str("_id", sub.ID).
		Str("_prefix", sub.Prefix).
		Msg("Subscription added")

	return nil
}

func (r *registry) Unsubscribe(ctx context.Context, id string) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	if !r.trie.Remove(id) {
		return errorchain.NewWithMessagef(hookr.ErrSubscriptionNotFound,
			"no subscription with id %s", id)
	}

	source := r.owner[id]
	delete(r.owner, id)
	r.changed()

	r.logger(ctx).Debug().
		Str("_id", id).
		Str("_source", source).
		Msg("Subscription removed")

	return nil
}

func (r *registry) Route(ctx context.Context, topic string) []string {
	if r.cache != nil {
		if item := r.cache.Get(topic); item != nil && !item.IsExpired() {
			r.observe(cacheHit, item.Value())

			return slices.Clone(item.Value())
		}
	}

	r.mut.RLock()
	matches := r.trie.Match(topic)
	// filled under the read lock, as mutations purge it under the write lock
	if r.cache != nil {
		r.cache.Set(topic, matches, ttlcache.DefaultTTL)
	}
	r.mut.RUnlock()

	r.observe(x.IfThenElse(r.cache != nil, cacheMiss, cacheOff), matches)

	r.logger(ctx).Trace().
		Str("_topic", topic).
		Strs("_matches", matches).
		Msg("Topic routed")

	return slices.Clone(matches)
}

func (r *registry) Replace(ctx context.Context, source string, subs []Subscription) error {
	requested := make(map[string]Subscription, len(subs))

	r.mut.Lock()
	defer r.mut.Unlock()

	for _, sub := range subs {
		if len(sub.ID) == 0 {
			return errorchain.NewWithMessagef(hookr.ErrArgument,
				"subscription from %s has no id", source)
		}

		if _, dup := requested[sub.ID]; dup {
			return errorchain.NewWithMessagef(hookr.ErrSubscriptionExists,
				"subscription %s is defined more than once in %s", sub.ID, source)
		}

		if owner, known := r.owner[sub.ID]; known && owner != source {
			return errorchain.NewWithMessagef(hookr.ErrSubscriptionExists,
				"subscription %s from %s is already registered by %s", sub.ID, source, owner)
		}

		requested[sub.ID] = sub
	}

	var owned []string

	for id, owner := range r.owner {
		if owner == source {
			owned = append(owned, id)
		}
	}

	removed := slicex.Subtract(owned, slices.Collect(maps.Keys(requested)))
	for _, id := range removed {
		r.trie.Remove(id)
		delete(r.owner, id)
	}

	added, updated := 0, 0

	for _, sub := range subs {
		if prefix, known := r.trie.Prefix(sub.ID); known {
			if prefix == sub.Prefix {
				continue
			}

			r.trie.Remove(sub.ID)

			updated++
		} else {
			added++
		}

		r.trie.Add(sub.Prefix, sub.ID)
		r.owner[sub.ID] = source
	}

	if added+updated+len(removed) != 0 {
		r.changed()
	}

	r.logger(ctx).Info().
		Str("_source", source).
		Int("_added", added).
		Int("_updated", updated).
		Int("_removed", len(removed)).
		Msg("Subscriptions replaced")

	return nil
}

func (r *registry) Get(id string) (Subscription, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	prefix, known := r.trie.Prefix(id)
	if !known {
		return Subscription{}, false
	}

	return Subscription{ID: id, Prefix: prefix}, true
}

func (r *registry) List() []Subscription {
	r.mut.RLock()
	defer r.mut.RUnlock()

	subs := make([]Subscription, 0, len(r.owner))

	for id := range r.owner {
		prefix, _ := r.trie.Prefix(id)
		subs = append(subs, Subscription{ID: id, Prefix: prefix})
	}

	slices.SortFunc(subs, func(a, b Subscription) int { return strings.Compare(a.ID, b.ID) })

	return subs
}

// changed must be called with the write lock held.
func (r *registry) changed() {
	if r.cache != nil {
		r.cache.DeleteAll()
	}

	r.m.subscriptions.Set(float64(r.trie.Len()))
}

func (r *registry) observe(cacheUsage string, matches []string) {
	r.m.routed.WithLabelValues(cacheUsage).Inc()
	r.m.matches.Observe(float64(len(matches)))
}

func (r *registry) logger(ctx context.Context) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}

	return &r.l
}
