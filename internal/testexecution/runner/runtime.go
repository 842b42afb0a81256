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

// Package runner executes scheduled tests and reports every lifecycle event to a printer.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/printer"
	"github.com/kritic-dev/kritic/internal/testexecution/redirect"
	"github.com/kritic-dev/kritic/internal/testexecution/registry"
	"github.com/kritic-dev/kritic/internal/testexecution/scheduler"
	testexecutionUtils "github.com/kritic-dev/kritic/internal/testexecution/utils"
	"github.com/kritic-dev/kritic/internal/timer"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Body is the code of a test.
type Body func(s *State)

// redirector is the part of redirect.Redirector used by the runtime.
type redirector interface {
	Start() error
	Stop() (int, error)
	Original() io.Writer
	Close() error
}

// fatalAbort unwinds a test body after a fatal error when the exit hook returned.
type fatalAbort struct {
	code int
}

// Runtime holds the registered tests and the state of a run.
// Several runtimes may coexist, each with its own registry.
type Runtime struct {
	*testexecutionUtils.Options

	registry   *registry.Registry
	bodies     []Body
	queue      []int
	printer    engine.Printer
	redirector redirector
	state      *State
	counters   engine.RunInfo
	sources    *sourceCache

	// Mockable function fields
	newTimer      func() timer.Timer
	newRedirector func(bufferSize int, sink redirect.Sink) (redirector, error)
	exit          func(code int)
}

// New creates a runtime. A nil printer discards every event.
func New(options *testexecutionUtils.Options, p engine.Printer) *Runtime {
	if options == nil {
		options = testexecutionUtils.DefaultOptions()
	}

	if p == nil {
		p = printer.Nop{}
	}

	return &Runtime{
		Options: options,
		registry: registry.New(registry.Limits{
			MaxDependencies: options.MaxDependencies,
			MaxParameters:   options.MaxParameters,
		}, options.Debug),
		printer:  p,
		sources:  newSourceCache(),
		newTimer: timer.Factory(options.Timer),
		newRedirector: func(bufferSize int, sink redirect.Sink) (redirector, error) {
			return redirect.New(bufferSize, sink)
		},
		exit: os.Exit,
	}
}

// SetExit replaces the function called on fatal errors. The default is os.Exit.
func (r *Runtime) SetExit(exit func(code int)) {
	r.exit = exit
}

// Register declares a test.
func (r *Runtime) Register(loc api.Location, suite, name string, body Body, attrs ...api.Attribute) (*registry.Test, error) {
	if body == nil {
		return nil, &registry.DeclarationError{
			Key:      api.Key{Suite: suite, Name: name},
			Location: loc,
			Err:      fmt.Errorf("%w: nil test body", registry.ErrInvalidTest),
		}
	}

	test, err := r.registry.Register(loc, suite, name, attrs...)
	if err != nil {
		return nil, err
	}

	r.bodies = append(r.bodies, body)

	return test, nil
}

// MustRegister declares a test and treats a declaration error as fatal.
func (r *Runtime) MustRegister(loc api.Location, suite, name string, body Body, attrs ...api.Attribute) *registry.Test {
	test, err := r.Register(loc, suite, name, body, attrs...)
	if err != nil {
		_ = registry.ReportDeclarationError(err)
		r.exit(engine.ExitDeclarationError)

		return nil
	}

	return test
}

// Tests returns the registered tests in registration order.
func (r *Runtime) Tests() []*registry.Test {
	return r.registry.Tests()
}

// Schedule computes the execution order without running anything.
func (r *Runtime) Schedule() ([]int, error) {
	return scheduler.Build(r.registry.Tests())
}

// Run schedules and executes every registered test and returns the exit code of the run.
func (r *Runtime) Run() int {
	runTimer := r.newTimer()
	runTimer.Start()

	queue, err := scheduler.Build(r.registry.Tests())
	if err != nil {
		_ = registry.ReportError("schedule", "scheduling failed", err)
		return r.fatal(engine.ExitSchedulingError)
	}

	r.queue = queue
	if r.Debug {
		r.debugPrintQueue()
	}

	if r.Capture {
		rd, err := r.newRedirector(r.BufferSize, r.capture)
		if err != nil {
			_ = registry.ReportError("capture", "output redirection failed", err)
			return r.fatal(engine.ExitRedirectError)
		}

		r.redirector = rd

		defer r.closeRedirector()
	}

	r.counters = engine.RunInfo{Total: len(queue)}
	r.printer.Init(r.counters)

	for position, index := range queue {
		if code, ok := r.runEntry(position+1, index); !ok {
			return code
		}
	}

	r.counters.Duration = runTimer.Elapsed()
	r.printer.Summary(r.counters)

	if r.counters.Failed > 0 || r.counters.DepFailed > 0 {
		return engine.ExitTestsFailed
	}

	return engine.ExitOK
}

// Counters returns the aggregate counters of the last run.
func (r *Runtime) Counters() engine.RunInfo {
	return r.counters
}

// runEntry runs the test at arena index. It returns false when the run must stop with code.
func (r *Runtime) runEntry(position, index int) (int, bool) {
	tests := r.registry.Tests()
	test := tests[index]

	r.state = newState(r, test, position)
	r.printer.PreTest(r.state.Info())

	if test.Status != engine.StatusQueued {
		utils.ErrorPrintf("test %s has status %s, expected %s, not running it\n", test.Key, test.Status, engine.StatusQueued)
		return 0, true
	}

	for _, dep := range test.Dependencies {
		dependency := tests[dep.Index]

		switch dependency.Status {
		case engine.StatusPassed:
			continue
		case engine.StatusFailed, engine.StatusDepFailed:
			r.setStatus(test, engine.StatusDepFailed)
			r.counters.DepFailed++
			r.printer.DepFailed(r.state.Info(), dependency.Info())

			return 0, true
		case engine.StatusSkipped:
			r.state.skip(fmt.Sprintf("dependency %s was skipped", dependency.Key), test.Location, r.output())
			r.finish(test)

			return 0, true
		case engine.StatusRegistered, engine.StatusQueued, engine.StatusRunning:
			utils.ErrorPrintf("dependency %s of test %s has not run yet, its status is %s\n", dependency.Key, test.Key, dependency.Status)
			return r.fatal(engine.ExitDependencyNotRun), false
		case engine.StatusUnknown:
			fallthrough
		default:
			utils.ErrorPrintf("dependency %s of test %s is in an unknown state (%s)\n", dependency.Key, test.Key, dependency.Status)
			return r.fatal(engine.ExitUnknownStatus), false
		}
	}

	if code, ok := r.execute(test, r.bodies[index]); !ok {
		return code, false
	}

	r.finish(test)

	return 0, true
}

// execute runs every iteration of body inside one capture cycle.
func (r *Runtime) execute(test *registry.Test, body Body) (int, bool) {
	r.setStatus(test, engine.StatusRunning)

	if r.redirector != nil {
		if err := r.redirector.Start(); err != nil {
			_ = registry.ReportError(test.Key.String(), "output redirection failed", err)
			return r.fatal(engine.ExitRedirectError), false
		}
	}

	testTimer := r.newTimer()
	r.state.timer = testTimer
	testTimer.Start()

	code, aborted := 0, false

	iterations := test.Iterations()
	for i := 0; i < iterations; i++ {
		r.state.iteration = i
		r.state.iterations++

		code, aborted = r.runBody(body)
		if aborted || r.state.skipped || r.state.panicked {
			break
		}
	}

	r.state.duration = testTimer.Elapsed()

	if r.redirector != nil {
		lines, err := r.redirector.Stop()
		r.state.lines = lines

		if err != nil && !aborted {
			_ = registry.ReportError(test.Key.String(), "output redirection failed", err)
			return r.fatal(engine.ExitRedirectError), false
		}
	}

	return code, !aborted
}

func (r *Runtime) runBody(body Body) (code int, aborted bool) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		if abort, ok := recovered.(fatalAbort); ok {
			code, aborted = abort.code, true
			return
		}

		r.state.recordPanic(recovered)
	}()

	body(r.state)

	return 0, false
}

// finish sets the terminal status of test and reports it.
func (r *Runtime) finish(test *registry.Test) {
	switch {
	case r.state.skipped:
		r.setStatus(test, engine.StatusSkipped)
		r.counters.Skipped++
	case r.state.failed > 0:
		r.setStatus(test, engine.StatusFailed)
		r.counters.Failed++
	default:
		r.setStatus(test, engine.StatusPassed)
		r.counters.Passed++
	}

	r.printer.PostTest(r.state.Info())
}

func (r *Runtime) setStatus(test *registry.Test, status engine.Status) {
	if r.Debug {
		utils.DebugPrintf("%s: %s -> %s\n", test.Key, test.Status, status)
	}

	test.Status = status
}

// capture forwards a captured line of the running test to the printer. It runs on the reader goroutine.
func (r *Runtime) capture(line redirect.Line) {
	r.printer.Stdout(engine.CapturedLine{
		Test:   r.state.test.Key,
		Text:   line.Text,
		Split:  line.Split,
		Output: line.Output,
	})
}

// output returns the writer printers use for events raised while a body runs.
func (r *Runtime) output() io.Writer {
	if r.redirector != nil {
		return r.redirector.Original()
	}

	return os.Stdout
}

// fatal calls the exit hook and returns code for when the hook returns.
func (r *Runtime) fatal(code int) int {
	r.closeRedirector()
	r.exit(code)

	return code
}

func (r *Runtime) closeRedirector() {
	if r.redirector == nil {
		return
	}

	if err := r.redirector.Close(); err != nil {
		utils.ErrorPrintf("failed to stop output redirection: %v\n", err)
	}

	r.redirector = nil
}
