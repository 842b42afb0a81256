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

// Package timer measures test and run durations.
package timer

import (
	"math"
	"time"
)

// Unavailable is the duration reported when timing is disabled.
const Unavailable = time.Duration(math.MaxInt64)

// Timer measures the time elapsed since Start.
type Timer interface {
	Start()
	Elapsed() time.Duration
}

// IsUnavailable returns true when d carries no timing information.
func IsUnavailable(d time.Duration) bool {
	return d == Unavailable
}

// Monotonic is a Timer backed by the monotonic clock reading of time.Now.
type Monotonic struct {
	start time.Time
	now   func() time.Time
}

// NewMonotonic returns a Monotonic timer.
func NewMonotonic() *Monotonic {
	return &Monotonic{now: time.Now}
}

// Start implements Timer.
func (m *Monotonic) Start() {
	m.start = m.now()
}

// Elapsed implements Timer. It returns 0 when the timer was never started.
func (m *Monotonic) Elapsed() time.Duration {
	if m.start.IsZero() {
		return 0
	}

	return m.now().Sub(m.start)
}

// Disabled is a Timer that never measures anything.
type Disabled struct{}

// Start implements Timer.
func (Disabled) Start() {}

// Elapsed implements Timer and always returns Unavailable.
func (Disabled) Elapsed() time.Duration {
	return Unavailable
}

// Factory returns a constructor for the monotonic timer, or for the disabled one when enabled is false.
func Factory(enabled bool) func() Timer {
	if !enabled {
		return func() Timer { return Disabled{} }
	}

	return func() Timer { return NewMonotonic() }
}
