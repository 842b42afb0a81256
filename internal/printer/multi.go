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

package printer

import "github.com/kritic-dev/kritic/internal/engine"

// Multi forwards every event to each of its printers, in order.
type Multi []engine.Printer

// NewMulti returns a Multi of the non-nil printers.
func NewMulti(printers ...engine.Printer) Multi {
	m := make(Multi, 0, len(printers))

	for _, p := range printers {
		if p != nil {
			m = append(m, p)
		}
	}

	return m
}

func (m Multi) Init(run engine.RunInfo) {
	for _, p := range m {
		p.Init(run)
	}
}

func (m Multi) PreTest(test engine.TestInfo) {
	for _, p := range m {
		p.PreTest(test)
	}
}

func (m Multi) PostTest(test engine.TestInfo) {
	for _, p := range m {
		p.PostTest(test)
	}
}

func (m Multi) Summary(run engine.RunInfo) {
	for _, p := range m {
		p.Summary(run)
	}
}

func (m Multi) Assert(event engine.AssertionEvent) {
	for _, p := range m {
		p.Assert(event)
	}
}

func (m Multi) Stdout(line engine.CapturedLine) {
	for _, p := range m {
		p.Stdout(line)
	}
}

func (m Multi) Skip(event engine.SkipEvent) {
	for _, p := range m {
		p.Skip(event)
	}
}

func (m Multi) DepFailed(test, dependency engine.TestInfo) {
	for _, p := range m {
		p.DepFailed(test, dependency)
	}
}
