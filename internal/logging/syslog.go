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

import "github.com/rs/zerolog"

// syslog severities as used by the level field of gelf messages
const (
	sevEmergency int8 = iota
	sevAlert
	sevCritical
	sevError
	sevWarning
	sevNotice
	sevInformational
	sevDebugging
)

// nolint: gochecknoglobals
var syslogSeverities = map[zerolog.Level]int8{
	zerolog.TraceLevel: sevDebugging,
	zerolog.DebugLevel: sevDebugging,
	zerolog.InfoLevel:  sevInformational,
	zerolog.WarnLevel:  sevWarning,
	zerolog.ErrorLevel: sevError,
	zerolog.FatalLevel: sevCritical,
	zerolog.PanicLevel: sevAlert,
}

func syslogSeverity(level zerolog.Level) int8 {
	if sev, known := syslogSeverities[level]; known {
		return sev
	}

	return sevEmergency
}
