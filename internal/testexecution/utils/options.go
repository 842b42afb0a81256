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

// Package utils holds the options shared by the test execution packages.
package utils

// Options configures a run. It is derived from the loaded configuration and the command line flags.
type Options struct {
	Verbose bool
	Debug   bool
	Color   string

	// Capture redirects the standard output of test bodies through the printer.
	Capture bool
	// Timer enables duration measurement. When false every duration is unavailable.
	Timer      bool
	BufferSize int

	MaxDependencies int
	MaxParameters   int

	ReportPath   string
	ReportFormat string
	MetricsFile  string
}

// DefaultOptions returns the options of a run without configuration.
func DefaultOptions() *Options {
	return &Options{
		Color:           "auto",
		Capture:         true,
		Timer:           true,
		BufferSize:      4096, //nolint:mnd // default line buffer size
		MaxDependencies: 4,    //nolint:mnd // default attribute capacity
		MaxParameters:   4,    //nolint:mnd // default attribute capacity
		ReportFormat:    "json",
	}
}
