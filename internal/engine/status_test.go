/*
Copyright 2025 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusUnknown, "UNKNOWN"},
		{StatusRegistered, "REGISTERED"},
		{StatusQueued, "QUEUED"},
		{StatusRunning, "RUNNING"},
		{StatusSkipped, "SKIP"},
		{StatusFailed, "FAIL"},
		{StatusDepFailed, "DEPFAIL"},
		{StatusPassed, "PASS"},
		{Status(42), "Status(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_SymbolAndTerminal(t *testing.T) {
	assert.Equal(t, "[✓]", StatusPassed.Symbol())
	assert.Equal(t, "[x]", StatusFailed.Symbol())
	assert.Equal(t, "[s]", StatusSkipped.Symbol())
	assert.Equal(t, "[!]", StatusDepFailed.Symbol())
	assert.Equal(t, "[ ]", StatusQueued.Symbol())

	for _, s := range []Status{StatusPassed, StatusFailed, StatusSkipped, StatusDepFailed} {
		assert.True(t, s.Terminal(), s.String())
	}

	for _, s := range []Status{StatusUnknown, StatusRegistered, StatusQueued, StatusRunning} {
		assert.False(t, s.Terminal(), s.String())
	}
}

func TestStatus_Text(t *testing.T) {
	text, err := StatusDepFailed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "DEPFAIL", string(text))

	var s Status
	require.NoError(t, s.UnmarshalText([]byte("pass")))
	assert.Equal(t, StatusPassed, s)

	err = s.UnmarshalText([]byte("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}
