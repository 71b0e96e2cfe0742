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

package errorchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/hookr/internal/hookr"
	"github.com/dadrus/hookr/internal/x/errorchain"
)

var errTest = errors.New("test error")

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func TestErrorChainMessages(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		err    *errorchain.ErrorChain
		expMsg string
	}{
		"without message": {
			err:    errorchain.New(hookr.ErrArgument),
			expMsg: "argument error",
		},
		"with message": {
			err:    errorchain.NewWithMessage(hookr.ErrArgument, "foo"),
			expMsg: "argument error: foo",
		},
		"with formatted message": {
			err:    errorchain.NewWithMessagef(hookr.ErrArgument, "%s-%d", "foo", 1),
			expMsg: "argument error: foo-1",
		},
		"with cause": {
			err:    errorchain.NewWithMessage(hookr.ErrConfiguration, "foo").CausedBy(errTest),
			expMsg: "configuration error: foo: test error",
		},
		"with nil cause": {
			err:    errorchain.NewWithMessage(hookr.ErrConfiguration, "foo").CausedBy(nil),
			expMsg: "configuration error: foo",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expMsg, tc.err.Error())
		})
	}
}

func TestErrorChainIsAndAs(t *testing.T) {
	t.Parallel()

	// GIVEN
	cause := &testError{msg: "cause"}

	// WHEN
	err := errorchain.NewWithMessage(hookr.ErrSubscriptionExists, "foo").
		CausedBy(errTest).
		CausedBy(cause)

	// THEN
	require.ErrorIs(t, err, hookr.ErrSubscriptionExists)
	require.ErrorIs(t, err, errTest)
	require.NotErrorIs(t, err, hookr.ErrSubscriptionNotFound)

	var te *testError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, cause, te)

	assert.Equal(t, []error{hookr.ErrSubscriptionExists, errTest, cause}, err.Errors())
}

func TestErrorChainJSONMarshal(t *testing.T) {
	t.Parallel()

	// GIVEN
	testErr := errorchain.NewWithMessage(hookr.ErrSubscriptionNotFound, "foo").CausedBy(errTest)

	// WHEN
	res, err := testErr.MarshalJSON()

	// THEN
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"subscriptionNotFound","message":"foo"}`, string(res))
}
