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
	"fmt"
	"strings"
)

// Status is the lifecycle state of a test record.
// Transitions only move forward: Registered -> Queued -> Running -> terminal.
type Status int

// Test statuses. StatusUnknown is never assigned by the runtime.
const (
	StatusUnknown Status = iota
	StatusRegistered
	StatusQueued
	StatusRunning
	StatusSkipped
	StatusFailed
	StatusDepFailed
	StatusPassed
)

var statusNames = map[Status]string{
	StatusUnknown:    "UNKNOWN",
	StatusRegistered: "REGISTERED",
	StatusQueued:     "QUEUED",
	StatusRunning:    "RUNNING",
	StatusSkipped:    "SKIP",
	StatusFailed:     "FAIL",
	StatusDepFailed:  "DEPFAIL",
	StatusPassed:     "PASS",
}

// String implements fmt.Stringer so status prints as its canonical value.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Symbol returns the display symbol of a terminal status.
func (s Status) Symbol() string {
	switch s { //nolint:exhaustive // non-terminal states share a symbol
	case StatusPassed:
		return "[✓]"
	case StatusFailed:
		return "[x]"
	case StatusSkipped:
		return "[s]"
	case StatusDepFailed:
		return "[!]"
	default:
		return "[ ]"
	}
}

// Terminal returns true for statuses a test ends a run in.
func (s Status) Terminal() bool {
	switch s { //nolint:exhaustive // everything else is transient or invalid
	case StatusPassed, StatusFailed, StatusSkipped, StatusDepFailed:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	value := strings.ToUpper(string(text))
	for status, name := range statusNames {
		if name == value {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown status %q", text)
}
