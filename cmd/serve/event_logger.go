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

package serve

import (
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// eventLogger renders fx lifecycle events as zerolog entries. Successful events
// are logged on trace level only.
type eventLogger struct {
	l zerolog.Logger
}

func (l *eventLogger) LogEvent(event fxevent.Event) { // nolint: gocyclo, cyclop, funlen
	switch evt := event.(type) {
	case *fxevent.OnStartExecuting:
		l.hook(evt.FunctionName, evt.CallerName).Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		if evt.Err != nil {
			l.failedHook(evt.FunctionName, evt.CallerName, evt.Err).Msg("OnStart hook failed")
		} else {
			l.hook(evt.FunctionName, evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuting:
		l.hook(evt.FunctionName, evt.CallerName).Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		if evt.Err != nil {
			l.failedHook(evt.FunctionName, evt.CallerName, evt.Err).Msg("OnStop hook failed")
		} else {
			l.hook(evt.FunctionName, evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStop hook executed")
		}
	case *fxevent.Supplied:
		if evt.Err != nil {
			l.moduleError(evt.ModuleName, evt.ModuleTrace, evt.StackTrace, evt.Err).
				Str("_type", evt.TypeName).
				Msg("Error encountered while supplying module")
		} else {
			l.l.Trace().
				Str("_type", evt.TypeName).
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Msg("Module supplied")
		}
	case *fxevent.Provided:
		if evt.Err != nil {
			l.moduleError(evt.ModuleName, evt.ModuleTrace, evt.StackTrace, evt.Err).
				Str("_constructor", evt.ConstructorName).
				Msg("Error encountered while providing module")

			return
		}

		for _, typeName := range evt.OutputTypeNames {
			l.l.Trace().
				Str("_constructor", evt.ConstructorName).
				Str("_module", evt.ModuleName).
				Str("_type", typeName).
				Bool("_private", evt.Private).
				Msg("Module provided")
		}
	case *fxevent.Run:
		if evt.Err != nil {
			l.l.Error().
				Str("_name", evt.Name).
				Str("_kind", evt.Kind).
				Str("_module", evt.ModuleName).
				Err(evt.Err).
				Msg("Error returned")
		} else {
			l.l.Trace().
				Str("_name", evt.Name).
				Str("_kind", evt.Kind).
				Str("_module", evt.ModuleName).
				Str("_runtime", evt.Runtime.String()).
				Msg("Constructor run")
		}
	case *fxevent.Invoking:
		l.l.Trace().
			Str("_function", evt.FunctionName).
			Str("_module", evt.ModuleName).
			Msg("Invoking module")
	case *fxevent.Invoked:
		if evt.Err != nil {
			l.l.Error().
				Str("_function", evt.FunctionName).
				Str("_module", evt.ModuleName).
				Str("_stack", evt.Trace).
				Err(evt.Err).
				Msg("Invoke failed")
		} else {
			l.l.Trace().
				Str("_function", evt.FunctionName).
				Str("_module", evt.ModuleName).
				Msg("Invoked module")
		}
	case *fxevent.Stopping:
		l.l.Trace().
			Str("_signal", strings.ToUpper(evt.Signal.String())).
			Msg("Received signal")
	case *fxevent.Stopped:
		l.outcome(evt.Err, "Stopped", "Stop failed")
	case *fxevent.RollingBack:
		l.l.Error().Err(evt.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		l.outcome(evt.Err, "Rollback succeeded", "Rollback failed")
	case *fxevent.Started:
		l.outcome(evt.Err, "Started", "Start failed")
	case *fxevent.LoggerInitialized:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Msg("Custom logger initialization failed")
		} else {
			l.l.Trace().Str("_function", evt.ConstructorName).Msg("Initialized custom fxevent.Logger")
		}
	}
}

func (l *eventLogger) hook(function, caller string) *zerolog.Event {
	return l.l.Trace().Str("_functionName", function).Str("_caller", caller)
}

func (l *eventLogger) failedHook(function, caller string, err error) *zerolog.Event {
	return l.l.Error().Str("_functionName", function).Str("_caller", caller).Err(err)
}

func (l *eventLogger) outcome(err error, success, failure string) {
	if err != nil {
		l.l.Error().Err(err).Msg(failure)
	} else {
		l.l.Trace().Msg(success)
	}
}

func (l *eventLogger) moduleError(module string, moduleTrace, stackTrace []string, err error) *zerolog.Event {
	return l.l.Error().
		Str("_module", module).
		Strs("_moduleTrace", moduleTrace).
		Strs("_stacktrace", stackTrace).
		Err(err)
}
