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

// Package report collects the outcome of a run into a structured result and writes it to disk.
package report

import (
	"sync"

	"github.com/acarl005/stripansi"
	"github.com/google/uuid"

	"github.com/kritic-dev/kritic/internal/engine"
)

// Collector is an engine.Printer that builds an engine.RunResult.
type Collector struct {
	mu sync.Mutex

	result  *engine.RunResult
	current *engine.TestResult
}

// NewCollector returns a Collector for a new run with a random run id.
func NewCollector() *Collector {
	return &Collector{result: engine.NewRunResult(uuid.NewString())}
}

// Result returns the collected run result.
func (c *Collector) Result() *engine.RunResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.result
}

func (c *Collector) Init(engine.RunInfo) {}

func (c *Collector) PreTest(test engine.TestInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = engine.NewTestResult(test)
}

func (c *Collector) PostTest(test engine.TestInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result.AddResult(c.take(test).Complete(test))
}

func (c *Collector) Summary(run engine.RunInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result.Complete(run)
}

func (c *Collector) Assert(event engine.AssertionEvent) {
	if event.Passed {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.AddFailure(engine.NewAssertionResult(event))
	}
}

// Stdout keeps the captured line with its terminal escape sequences removed.
func (c *Collector) Stdout(line engine.CapturedLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.AddOutput(stripansi.Strip(line.Text), line.Split)
	}
}

func (c *Collector) Skip(engine.SkipEvent) {}

func (c *Collector) DepFailed(test, dependency engine.TestInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result.AddResult(c.take(test).DepFail(dependency.Key))
}

// take returns the result of the running test and clears it.
// Must be called with c.mu held.
func (c *Collector) take(test engine.TestInfo) *engine.TestResult {
	current := c.current
	if current == nil || current.Key() != test.Key {
		current = engine.NewTestResult(test)
	}

	c.current = nil

	return current
}
