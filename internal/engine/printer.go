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
	"io"
	"time"

	"github.com/kritic-dev/kritic/internal/api"
)

// Printer receives the lifecycle events of a run. The runtime guarantees the
// call order: Init once, then per queued test PreTest, any number of Assert,
// Stdout and Skip events, then PostTest or DepFailed, and Summary once at the end.
type Printer interface {
	Init(run RunInfo)
	PreTest(test TestInfo)
	PostTest(test TestInfo)
	Summary(run RunInfo)
	Assert(event AssertionEvent)
	Stdout(line CapturedLine)
	Skip(event SkipEvent)
	DepFailed(test, dependency TestInfo)
}

// TestInfo is a snapshot of a test record and its execution state.
type TestInfo struct {
	Key              api.Key
	Location         api.Location
	Status           Status
	Index            int // arena index
	Position         int // 1-based position in the execution queue
	Assertions       int
	FailedAssertions int
	Skipped          bool
	SkipReason       string
	Duration         time.Duration
	Iterations       int
	CapturedLines    int
}

// RunInfo carries the aggregate counters of a run.
type RunInfo struct {
	Total     int
	Passed    int
	Failed    int
	Skipped   int
	DepFailed int
	Duration  time.Duration
}

// PassRate returns the percentage of passed tests among those not skipped.
func (r RunInfo) PassRate() float64 {
	executed := r.Total - r.Skipped
	if executed <= 0 {
		return 0
	}

	return float64(r.Passed) / float64(executed) * 100 //nolint:mnd // percentage
}

// AssertionEvent describes one evaluated assertion.
type AssertionEvent struct {
	Test      api.Key
	Location  api.Location
	Assertion Assertion
	Passed    bool
	Iteration int
}

// CapturedLine is one line, or fragment of a long line, written by a test body to standard output.
// Output is the original standard output, which stays writable while the body's output is captured.
type CapturedLine struct {
	Test   api.Key
	Text   string
	Split  bool
	Output io.Writer
}

// SkipEvent is emitted when a test body requests a skip.
type SkipEvent struct {
	Test     api.Key
	Location api.Location
	Reason   string
	Elapsed  time.Duration
	Output   io.Writer
}
