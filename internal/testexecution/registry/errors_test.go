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

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing

	"github.com/kritic-dev/kritic/internal/api"
	unittestsUtils "github.com/kritic-dev/kritic/internal/unittests/utils"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		failureReason    string
		originalErr      error
		expectedErrorMsg string
		expectedStderr   []string
	}{
		{
			name:             "basic error reporting",
			target:           "math.add",
			failureReason:    "scheduling failed",
			originalErr:      assert.AnError,
			expectedErrorMsg: "scheduling failed: assert.AnError general error for testing",
			expectedStderr: []string{
				"# math.add",
				"scheduling failed in math.add: assert.AnError general error for testing",
				"FAIL\tmath.add\t[scheduling failed]",
			},
		},
		{
			name:             "empty strings",
			target:           "",
			failureReason:    "",
			originalErr:      assert.AnError,
			expectedErrorMsg: ": assert.AnError general error for testing",
			expectedStderr: []string{
				"# ",
				" in : assert.AnError general error for testing",
				"FAIL\t\t[]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderrOutput := unittestsUtils.CaptureStderr(func() {
				err := ReportError(tt.target, tt.failureReason, tt.originalErr)

				assert.Equal(t, tt.expectedErrorMsg, err.Error())
				assert.ErrorIs(t, err, tt.originalErr)
			})

			for _, expectedContent := range tt.expectedStderr {
				assert.Contains(t, stderrOutput, expectedContent)
			}
		})
	}
}

func TestReportDeclarationError(t *testing.T) {
	t.Run("names the offending test", func(t *testing.T) {
		declErr := &DeclarationError{
			Key:      api.Key{Suite: "math", Name: "add"},
			Location: api.Location{File: "math_test.go", Line: 7},
			Err:      ErrTooManyDependencies,
		}

		var err error

		stderr := unittestsUtils.CaptureStderr(func() {
			err = ReportDeclarationError(declErr)
		})

		require.ErrorIs(t, err, ErrTooManyDependencies)
		assert.Contains(t, stderr, "# math.add")
		assert.Contains(t, stderr, "math_test.go:7: test math.add: too many dependencies")
		assert.Contains(t, stderr, "FAIL\tmath.add\t[invalid test declaration]")
	})

	t.Run("plain errors", func(t *testing.T) {
		stderr := unittestsUtils.CaptureStderr(func() {
			_ = ReportDeclarationError(assert.AnError)
		})

		assert.Contains(t, stderr, "# registry")
	})
}
