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
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/errorchain"
	"github.com/dadrus/hookr/internal/x/stringx"
)

// Decoder decodes yaml or json documents into T, using the json tags of T.
type Decoder[T any] struct {
	decoderOpts
}

func NewDecoder[T any](opts ...DecoderOption) *Decoder[T] {
	decoder := &Decoder[T]{
		decoderOpts: decoderOpts{
			validator: noopValidator{},
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

// Decode returns io.EOF if reader provides no document.
func (d *Decoder[T]) Decode(reader io.Reader) (T, error) {
	var (
		res       T
		rawConfig map[string]any
	)

	if d.contentType != "application/json" && d.contentType != "application/yaml" {
		return res, errorchain.NewWithMessagef(hookr.ErrInternal,
			"unsupported content type: %s", d.contentType)
	}

	if d.substituteEnvVars {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return res, errorchain.NewWithMessage(hookr.ErrInternal,
				"reading object failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(stringx.ToString(raw))
		if err != nil {
			return res, errorchain.NewWithMessage(hookr.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader(stringx.ToBytes(content))
	}

	// json is a subset of yaml
	if err := yaml.NewDecoder(reader).Decode(&rawConfig); err != nil {
		if errors.Is(err, io.EOF) {
			return res, err
		}

		return res, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"parsing of object failed").CausedBy(err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &res,
		ErrorUnused: d.errorOnUnused,
		TagName:     "json",
	})
	if err != nil {
		return res, errorchain.NewWithMessage(hookr.ErrInternal,
			"failed creating object decoder").CausedBy(err)
	}

	if err = dec.Decode(rawConfig); err != nil {
		return res, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"decoding of object failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(res); err != nil {
		return res, errorchain.NewWithMessage(hookr.ErrConfiguration,
			"object validation failed").CausedBy(err)
	}

	return res, nil
}
