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

import "context"

const (
	// SourceAPI owns subscriptions created via the management api.
	SourceAPI = "api"
	// SourceConfig owns subscriptions defined in hookr's configuration.
	SourceConfig = "config"
)

type Subscription struct {
	ID     string `json:"id"     mapstructure:"id"     validate:"required,subscription_id"`
	Prefix string `json:"prefix" mapstructure:"prefix"`
}

// Registry maintains subscriptions and routes topics to the subscriptions, the
// prefix of which the topic starts with. Every subscription is owned by exactly one
// source, which is either SourceAPI, SourceConfig, or the path of a subscription file.
type Registry interface {
	// Subscribe registers sub on behalf of SourceAPI.
	Subscribe(ctx context.Context, sub Subscription) error
	Unsubscribe(ctx context.Context, id string) error
	// Route returns the ids of all subscriptions matching topic. The order carries no meaning.
	Route(ctx context.Context, topic string) []string
	// Replace atomically swaps the subscriptions owned by source for subs. Either all of
	// subs become effective, or none.
	Replace(ctx context.Context, source string, subs []Subscription) error
	Get(id string) (Subscription, bool)
	// List returns all subscriptions ordered by their ids.
	List() []Subscription
}
