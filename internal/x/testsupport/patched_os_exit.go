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

package testsupport

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/undefinedlabs/go-mpatch"
)

// PatchedOSExit records calls to os.Exit, which happen e.g. on logging with
// fatal level from a server goroutine.
type PatchedOSExit struct {
	called atomic.Bool
	code   atomic.Int32
}

func (p *PatchedOSExit) Called() bool { return p.called.Load() }

func (p *PatchedOSExit) Code() int { return int(p.code.Load()) }

func PatchOSExit(t *testing.T, exitImpl func(int)) (*PatchedOSExit, error) {
	t.Helper()

	patchedExit := &PatchedOSExit{}

	patch, err := mpatch.PatchMethod(os.Exit, func(code int) {
		patchedExit.called.Store(true)
		patchedExit.code.Store(int32(code)) // nolint: gosec

		exitImpl(code)
	})
	if err != nil {
		return nil, err
	}

	t.Cleanup(func() { _ = patch.Unpatch() })

	return patchedExit, nil
}
