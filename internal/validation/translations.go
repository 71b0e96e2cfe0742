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

package validation

import (
	"reflect"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	for _, entry := range []struct {
		tag             string
		customRegisFunc validator.RegisterTranslationsFunc
		customTransFunc validator.TranslationFunc
	}{
		{
			tag: "gt",
			customRegisFunc: func(ut ut.Translator) error {
				return ut.Add("gt-duration", "{0} must be greater than {1}", false)
			},
			customTransFunc: durationAwareTranslation("gt"),
		},
		{
			tag: "gte",
			customRegisFunc: func(ut ut.Translator) error {
				return ut.Add("gte-duration", "{0} must be {1} or greater", false)
			},
			customTransFunc: durationAwareTranslation("gte"),
		},
	} {
		if err := validate.RegisterTranslation(entry.tag, trans, entry.customRegisFunc, entry.customTransFunc); err != nil {
			return err
		}
	}

	return nil
}

// durationAwareTranslation renders the parameter of duration fields as a duration and not as
// a number of nanoseconds. Numbers are rendered as by the default translation.
func durationAwareTranslation(tag string) validator.TranslationFunc {
	return func(ut ut.Translator, fe validator.FieldError) string {
		var (
			translation string
			err         error
		)

		switch {
		case fe.Type() == reflect.TypeOf(time.Duration(0)):
			translation, err = ut.T(tag+"-duration", fe.Field(), fe.Param())
		case fe.Kind() >= reflect.Int && fe.Kind() <= reflect.Float64:
			translation, err = ut.T(tag+"-number", fe.Field(), fe.Param())
		default:
			return fe.Error()
		}

		if err != nil {
			return fe.Error()
		}

		return translation
	}
}
