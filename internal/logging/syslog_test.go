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

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSyslogSeverity(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		level    zerolog.Level
		severity int8
	}{
		"trace is debugging":         {level: zerolog.TraceLevel, severity: sevDebugging},
		"debug is debugging":         {level: zerolog.DebugLevel, severity: sevDebugging},
		"info is informational":      {level: zerolog.InfoLevel, severity: sevInformational},
		"warn is warning":            {level: zerolog.WarnLevel, severity: sevWarning},
		"error is error":             {level: zerolog.ErrorLevel, severity: sevError},
		"fatal is critical":          {level: zerolog.FatalLevel, severity: sevCritical},
		"panic is alert":             {level: zerolog.PanicLevel, severity: sevAlert},
		"unknown level is emergency": {level: zerolog.Level(10), severity: sevEmergency},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.severity, syslogSeverity(tc.level))
		})
	}
}
