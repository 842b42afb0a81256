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

package runner

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/testexecution/registry"
	"github.com/kritic-dev/kritic/internal/timer"
)

// State is handed to a test body. It records assertions and skips and gives
// access to the current values of parameterized variables. One State is shared
// by all iterations of a test.
type State struct {
	rt       *Runtime
	test     *registry.Test
	position int
	timer    timer.Timer

	assertions int
	failed     int
	skipped    bool
	skipReason string
	panicked   bool
	duration   time.Duration
	iteration  int
	iterations int
	lines      int
}

func newState(rt *Runtime, test *registry.Test, position int) *State {
	return &State{rt: rt, test: test, position: position}
}

// Key returns the suite and name of the running test.
func (s *State) Key() api.Key {
	return s.test.Key
}

// Iteration returns the 0-based index of the current iteration.
func (s *State) Iteration() int {
	return s.iteration
}

// Failed returns true when an assertion of the test failed.
func (s *State) Failed() bool {
	return s.failed > 0
}

// Info returns a snapshot of the test and its execution state.
func (s *State) Info() engine.TestInfo {
	info := s.test.Info()
	info.Position = s.position
	info.Assertions = s.assertions
	info.FailedAssertions = s.failed
	info.Skipped = s.skipped
	info.SkipReason = s.skipReason
	info.Duration = s.duration
	info.Iterations = s.iterations
	info.CapturedLines = s.lines

	return info
}

// Assert checks that value is true.
func (s *State) Assert(value bool) bool {
	return s.check(engine.Assertion{Kind: engine.AssertTrue, Actual: value})
}

// AssertNot checks that value is false.
func (s *State) AssertNot(value bool) bool {
	return s.check(engine.Assertion{Kind: engine.AssertNot, Actual: value})
}

// AssertEqInt checks that actual equals expected.
func (s *State) AssertEqInt(actual, expected int64) bool {
	return s.check(engine.Assertion{Kind: engine.AssertEqInt, Actual: actual, Expected: expected})
}

// AssertNeInt checks that actual differs from expected.
func (s *State) AssertNeInt(actual, expected int64) bool {
	return s.check(engine.Assertion{Kind: engine.AssertNeInt, Actual: actual, Expected: expected})
}

// AssertEqFloat checks that actual is within engine.FloatTolerance of expected.
func (s *State) AssertEqFloat(actual, expected float64) bool {
	return s.check(engine.Assertion{Kind: engine.AssertEqFloat, Actual: actual, Expected: expected})
}

// AssertNeFloat checks that actual is farther than engine.FloatTolerance from expected.
func (s *State) AssertNeFloat(actual, expected float64) bool {
	return s.check(engine.Assertion{Kind: engine.AssertNeFloat, Actual: actual, Expected: expected})
}

// AssertEqStr checks that two strings are equal.
func (s *State) AssertEqStr(actual, expected string) bool {
	return s.check(engine.Assertion{Kind: engine.AssertEqStr, Actual: &actual, Expected: &expected})
}

// AssertNeStr checks that two strings differ.
func (s *State) AssertNeStr(actual, expected string) bool {
	return s.check(engine.Assertion{Kind: engine.AssertNeStr, Actual: &actual, Expected: &expected})
}

// AssertEqStrPtr checks that two optional strings are equal. Two nil strings are equal.
func (s *State) AssertEqStrPtr(actual, expected *string) bool {
	return s.check(engine.Assertion{Kind: engine.AssertEqStr, Actual: actual, Expected: expected})
}

// AssertNeStrPtr checks that two optional strings differ. nil differs from every string, including "".
func (s *State) AssertNeStrPtr(actual, expected *string) bool {
	return s.check(engine.Assertion{Kind: engine.AssertNeStr, Actual: actual, Expected: expected})
}

// Fail records a failed assertion.
func (s *State) Fail() {
	s.check(engine.Assertion{Kind: engine.AssertFail})
}

// Failf records a failed assertion with a message.
func (s *State) Failf(format string, args ...any) {
	s.check(engine.Assertion{Kind: engine.AssertFail, Message: fmt.Sprintf(format, args...)})
}

// Skip marks the test as skipped. The body should return right after.
// No further iteration runs and assertions that already failed stay counted.
// Only the first skip of a test is reported.
func (s *State) Skip(reason string) {
	s.skip(reason, caller(2), s.rt.output())
}

// Skipf is Skip with a formatted reason.
func (s *State) Skipf(format string, args ...any) {
	s.skip(fmt.Sprintf(format, args...), caller(2), s.rt.output())
}

func (s *State) skip(reason string, location api.Location, output io.Writer) {
	if s.skipped {
		return
	}

	s.skipped = true
	s.skipReason = reason

	var elapsed time.Duration
	if s.timer != nil {
		elapsed = s.timer.Elapsed()
	}

	s.rt.printer.Skip(engine.SkipEvent{
		Test:     s.test.Key,
		Location: location,
		Reason:   reason,
		Elapsed:  elapsed,
		Output:   output,
	})
}

// check evaluates a, records it and reports it. The call site is two frames up.
func (s *State) check(a engine.Assertion) bool {
	location := caller(3)
	a.ActualExpr, a.ExpectedExpr = s.rt.sources.expressions(location, a.Kind)

	passed := engine.Evaluate(a)

	s.assertions++
	if !passed {
		s.failed++
	}

	s.rt.printer.Assert(engine.AssertionEvent{
		Test:      s.test.Key,
		Location:  location,
		Assertion: a,
		Passed:    passed,
		Iteration: s.iteration,
	})

	return passed
}

func (s *State) recordPanic(recovered any) {
	s.panicked = true
	s.assertions++
	s.failed++

	s.rt.printer.Assert(engine.AssertionEvent{
		Test:      s.test.Key,
		Location:  s.test.Location,
		Assertion: engine.Assertion{Kind: engine.AssertFail, Message: fmt.Sprintf("test panicked: %v", recovered)},
		Iteration: s.iteration,
	})
}

// Param returns the value of the parameterized variable name for the current iteration.
// An undeclared variable or a type mismatch is a fatal declaration error.
func Param[T any](s *State, name string) T {
	value, err := s.test.Lookup(name, s.iteration)
	if err != nil {
		s.rt.declarationFatal(s.test, err)
	}

	typed, ok := value.(T)
	if !ok {
		var zero T

		s.rt.declarationFatal(s.test, fmt.Errorf("%w: %q holds %T, not %T", api.ErrInvalidParameter, name, value, zero))
	}

	return typed
}

// declarationFatal reports err, calls the exit hook and unwinds the running body.
func (r *Runtime) declarationFatal(test *registry.Test, err error) {
	_ = registry.ReportDeclarationError(&registry.DeclarationError{Key: test.Key, Location: test.Location, Err: err})

	code := r.fatal(engine.ExitDeclarationError)
	panic(fatalAbort{code: code})
}

func caller(skip int) api.Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return api.Location{File: "unknown"}
	}

	return api.Location{File: file, Line: line}
}
