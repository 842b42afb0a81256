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
	"time"

	"github.com/kritic-dev/kritic/internal/api"
)

// TestResult represents the result of a single test as exported in a run report.
type TestResult struct {
	Suite            string            `json:"suite"`
	Name             string            `json:"name"`
	Location         api.Location      `json:"location"`
	Status           Status            `json:"status"`
	Assertions       int               `json:"assertions"`
	FailedAssertions int               `json:"failedAssertions"`
	Iterations       int               `json:"iterations,omitempty"`
	Duration         time.Duration     `json:"durationNanoseconds"`
	SkipReason       string            `json:"skipReason,omitempty"`
	FailedDependency string            `json:"failedDependency,omitempty"`
	Failures         []AssertionResult `json:"failures,omitempty"`
	Output           []string          `json:"output,omitempty"`
}

// NewTestResult creates a new test result for a test about to run.
func NewTestResult(info TestInfo) *TestResult {
	return &TestResult{
		Suite:    info.Key.Suite,
		Name:     info.Key.Name,
		Location: info.Location,
		Status:   StatusRunning,
	}
}

// Key returns the suite and name of the test.
func (tr *TestResult) Key() api.Key {
	return api.Key{Suite: tr.Suite, Name: tr.Name}
}

// AddFailure records a failed assertion and returns the result for chaining.
func (tr *TestResult) AddFailure(failure AssertionResult) *TestResult {
	tr.Failures = append(tr.Failures, failure)
	return tr
}

// AddOutput appends captured output. Split fragments are joined to the previous line.
func (tr *TestResult) AddOutput(text string, split bool) {
	if split && len(tr.Output) > 0 {
		tr.Output[len(tr.Output)-1] += text
		return
	}

	tr.Output = append(tr.Output, text)
}

// DepFail marks the test as not run because dependency did not pass.
func (tr *TestResult) DepFail(dependency api.Key) *TestResult {
	tr.Status = StatusDepFailed
	tr.FailedDependency = dependency.String()

	return tr
}

// Complete copies the final execution state of info into the result and returns it for chaining.
func (tr *TestResult) Complete(info TestInfo) *TestResult {
	tr.Status = info.Status
	tr.Assertions = info.Assertions
	tr.FailedAssertions = info.FailedAssertions
	tr.Iterations = info.Iterations
	tr.Duration = info.Duration
	tr.SkipReason = info.SkipReason

	return tr
}
