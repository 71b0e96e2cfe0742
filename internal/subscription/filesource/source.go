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
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/subscription"
	"github.com/dadrus/hookr/internal/validation"
	"github.com/dadrus/hookr/internal/x/errorchain"
)

type subscriptionSet struct {
	Subscriptions []subscription.Subscription `json:"subscriptions" validate:"dive"`
}

// fileSource owns the subscriptions defined in a single file. The absolute path of
// the file is used as the source name in the registry.
type fileSource struct {
	path string
	reg  subscription.Registry
	dec  *Decoder[subscriptionSet]
}

func newFileSource(path string, reg subscription.Registry, validator validation.Validator) (*fileSource, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(hookr.ErrConfiguration,
			"failed to get the absolute path of %s", path).CausedBy(err)
	}

	var contentType string

	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".json":
		contentType = "application/json"
	case ".yaml", ".yml":
		contentType = "application/yaml"
	default:
		return nil, errorchain.NewWithMessagef(hookr.ErrConfiguration,
			"subscription file %s is neither a yaml nor a json file", path)
	}

	return &fileSource{
		path: absPath,
		reg:  reg,
		dec: NewDecoder[subscriptionSet](
			WithSourceContentType(contentType),
			WithEnvVarsSubstitution(true),
			WithErrorOnUnused(true),
			WithValidator(validator),
		),
	}, nil
}

// load replaces all subscriptions of the source by the current file contents. An
// empty file removes them. On errors the registry is left untouched.
func (s *fileSource) load(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, errorchain.NewWithMessagef(hookr.ErrConfiguration,
			"failed reading subscription file %s", s.path).CausedBy(err)
	}

	set, err := s.dec.Decode(bytes.NewReader(data))
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, errorchain.NewWithMessagef(hookr.ErrConfiguration,
			"failed decoding subscription file %s", s.path).CausedBy(err)
	}

	if err = s.reg.Replace(ctx, s.path, set.Subscriptions); err != nil {
		return 0, err
	}

	return len(set.Subscriptions), nil
}

func (s *fileSource) OnChanged(logger zerolog.Logger) {
	count, err := s.load(logger.WithContext(context.Background()))
	if err != nil {
		logger.Warn().Err(err).
			Str("_source", s.path).
			Msg("Reloading subscriptions failed. Keeping the previous ones")

		return
	}

	logger.Info().
		Str("_source", s.path).
		Int("_count", count).
		Msg("Subscriptions reloaded")
}
