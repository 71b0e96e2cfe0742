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
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/dadrus/hookr/internal/validation"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9._~:-]+$`) //nolint:gochecknoglobals

// IDValidator ensures subscription ids can be used as a path segment of the management api
// without any escaping.
type IDValidator struct{}

func (IDValidator) Tag() string { return "subscription_id" }

func (IDValidator) Validate(fl validator.FieldLevel) bool {
	return idPattern.MatchString(fl.Field().String())
}

func (IDValidator) AlwaysValidate() bool { return false }

func (IDValidator) MessageTemplate() string {
	return "{0} must consist of letters, digits, '.', '_', '~', ':' or '-' only"
}

func (IDValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, _ := ut.T(fe.Tag(), fe.Field())

	return msg
}

// NewValidator returns a validator aware of the subscription_id tag.
func NewValidator() (validation.Validator, error) {
	return validation.NewValidator(
		validation.WithTagValidator(IDValidator{}),
		validation.WithErrorTranslator(IDValidator{}),
	)
}
