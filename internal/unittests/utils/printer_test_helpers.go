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

package utils

import (
	"fmt"
	"sync"

	"github.com/kritic-dev/kritic/internal/engine"
)

// RecordingPrinter is an engine.Printer that keeps every event it receives.
// Events holds a compact trace such as "pre math.add" or "stdout math.add hello\n".
type RecordingPrinter struct {
	mu sync.Mutex

	Events     []string
	Tests      []engine.TestInfo // PostTest snapshots
	Assertions []engine.AssertionEvent
	Lines      []engine.CapturedLine
	Skips      []engine.SkipEvent
	DepFails   [][2]engine.TestInfo
	Run        engine.RunInfo
}

func (p *RecordingPrinter) record(format string, args ...any) {
	p.Events = append(p.Events, fmt.Sprintf(format, args...))
}

// Init implements engine.Printer.
func (p *RecordingPrinter) Init(run engine.RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("init %d", run.Total)
}

// PreTest implements engine.Printer.
func (p *RecordingPrinter) PreTest(test engine.TestInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("pre %s", test.Key)
}

// PostTest implements engine.Printer.
func (p *RecordingPrinter) PostTest(test engine.TestInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("post %s %s", test.Key, test.Status)
	p.Tests = append(p.Tests, test)
}

// Summary implements engine.Printer.
func (p *RecordingPrinter) Summary(run engine.RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("summary")
	p.Run = run
}

// Assert implements engine.Printer.
func (p *RecordingPrinter) Assert(event engine.AssertionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("assert %s %t", event.Test, event.Passed)
	p.Assertions = append(p.Assertions, event)
}

// Stdout implements engine.Printer.
func (p *RecordingPrinter) Stdout(line engine.CapturedLine) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("stdout %s %s", line.Test, line.Text)
	p.Lines = append(p.Lines, line)
}

// Skip implements engine.Printer.
func (p *RecordingPrinter) Skip(event engine.SkipEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("skip %s", event.Test)
	p.Skips = append(p.Skips, event)
}

// DepFailed implements engine.Printer.
func (p *RecordingPrinter) DepFailed(test, dependency engine.TestInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.record("depfail %s %s", test.Key, dependency.Key)
	p.DepFails = append(p.DepFails, [2]engine.TestInfo{test, dependency})
}

// Ran returns the keys of the tests that reached PostTest, in order.
func (p *RecordingPrinter) Ran() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	keys := make([]string, 0, len(p.Tests))
	for _, test := range p.Tests {
		keys = append(keys, test.Key.String())
	}

	return keys
}
