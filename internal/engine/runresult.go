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
)

// RunResult represents the result of a whole run.
type RunResult struct {
	RunID     string        `json:"runID"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"durationNanoseconds"`
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	DepFailed int           `json:"depFailed"`
	PassRate  float64       `json:"passRate"`
	Results   []TestResult  `json:"results"`
}

// NewRunResult creates a new run result.
func NewRunResult(runID string) *RunResult {
	return &RunResult{
		RunID:     runID,
		StartTime: time.Now(),
	}
}

// AddResult adds a test result to the run.
func (rr *RunResult) AddResult(result *TestResult) {
	rr.Results = append(rr.Results, *result)
}

// Complete finalizes the run result with the run's counters and returns the result for chaining.
func (rr *RunResult) Complete(info RunInfo) *RunResult {
	rr.Duration = info.Duration
	rr.Total = info.Total
	rr.Passed = info.Passed
	rr.Failed = info.Failed
	rr.Skipped = info.Skipped
	rr.DepFailed = info.DepFailed
	rr.PassRate = info.PassRate()

	return rr
}

// HasFailures returns true if any test failed or was not run because of a failed dependency.
func (rr *RunResult) HasFailures() bool {
	return rr.Failed > 0 || rr.DepFailed > 0
}

// ExitCode returns the process exit code matching the run's outcome.
func (rr *RunResult) ExitCode() int {
	if rr.HasFailures() {
		return ExitTestsFailed
	}

	return ExitOK
}
