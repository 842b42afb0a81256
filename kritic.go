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

// Package kritic is a unit-test framework runtime: tests are declared with
// dependencies and parameters, scheduled in dependency order and executed with
// their standard output captured and reported through a printer.
//
//	rt := kritic.New(nil, nil)
//
//	kritic.Test(rt, "math", "add", func(s *kritic.State) {
//		s.AssertEqInt(int64(1+1), 2)
//	})
//
//	os.Exit(rt.Run())
package kritic

import (
	"os"
	"runtime"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/printer"
	"github.com/kritic-dev/kritic/internal/testexecution/redirect"
	"github.com/kritic-dev/kritic/internal/testexecution/runner"
	testexecutionUtils "github.com/kritic-dev/kritic/internal/testexecution/utils"
	"github.com/kritic-dev/kritic/internal/utils"
)

type (
	// Runtime holds the declared tests of a run.
	Runtime = runner.Runtime
	// State is passed to a test body to assert, skip and read parameters.
	State = runner.State
	// Body is the code of a test.
	Body = runner.Body
	// Attribute is declarative metadata attached to a test.
	Attribute = api.Attribute
	// Options configures a run.
	Options = testexecutionUtils.Options
	// Printer receives the lifecycle events of a run.
	Printer = engine.Printer
)

// FloatTolerance is the absolute tolerance of float assertions.
const FloatTolerance = engine.FloatTolerance

// DefaultBufferSize is the default size of the captured line buffer.
const DefaultBufferSize = redirect.DefaultBufferSize

// DefaultOptions returns the options of a run without configuration.
func DefaultOptions() *Options {
	return testexecutionUtils.DefaultOptions()
}

// New creates a runtime. Nil options select DefaultOptions and a nil printer
// selects the default printer on standard output and standard error.
func New(options *Options, p Printer) *Runtime {
	if options == nil {
		options = DefaultOptions()
	}

	if err := printer.SetColor(options.Color); err != nil {
		utils.WarningPrintf("%v, falling back to %s\n", err, printer.ColorAuto)
		_ = printer.SetColor(printer.ColorAuto)
	}

	if p == nil {
		p = printer.New(os.Stdout, os.Stderr, options.Verbose)
	}

	return runner.New(options, p)
}

// Test declares a test of rt at the caller's location. A declaration error is fatal.
func Test(rt *Runtime, suite, name string, body Body, attrs ...Attribute) {
	rt.MustRegister(callerLocation(), suite, name, body, attrs...)
}

// DependsOn declares that a test may only run once suite.name passed.
func DependsOn(suite, name string) Attribute {
	return api.DependsOn(suite, name)
}

// Parameterized runs a test once per element of values, which must be a slice or an array.
func Parameterized(name string, values any) Attribute {
	return api.Parameterized(name, values)
}

// Param returns the value of the parameterized variable name for the running iteration.
func Param[T any](s *State, name string) T {
	return runner.Param[T](s, name)
}

// Main runs rt and exits the process with the run's exit code.
func Main(rt *Runtime) {
	os.Exit(rt.Run())
}

func callerLocation() api.Location {
	_, file, line, ok := runtime.Caller(2) //nolint:mnd // caller of Test
	if !ok {
		return api.Location{File: "unknown"}
	}

	return api.Location{File: file, Line: line}
}
