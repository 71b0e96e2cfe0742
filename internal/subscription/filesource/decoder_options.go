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

import "github.com/dadrus/hookr/internal/validation"

type decoderOpts struct {
	validator         validation.Validator
	contentType       string
	substituteEnvVars bool
	errorOnUnused     bool
}

type DecoderOption func(o *decoderOpts)

func WithValidator(v validation.Validator) DecoderOption {
	return func(o *decoderOpts) {
		if v != nil {
			o.validator = v
		}
	}
}

func WithSourceContentType(contentType string) DecoderOption {
	return func(o *decoderOpts) {
		o.contentType = contentType
	}
}

func WithEnvVarsSubstitution(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.substituteEnvVars = flag
	}
}

func WithErrorOnUnused(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.errorOnUnused = flag
	}
}

type noopValidator struct{}

func (noopValidator) ValidateStruct(any) error { return nil }
