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

package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kritic-dev/kritic/internal/api"
)

// ErrScheduling is wrapped by every error returned by Build.
var ErrScheduling = errors.New("scheduling failed")

// SelfDependencyError is returned when a test depends on itself.
type SelfDependencyError struct {
	Test     api.Key
	Location api.Location
}

func (e *SelfDependencyError) Error() string {
	return fmt.Sprintf("%s: test %s depends on itself", e.Location, e.Test)
}

func (e *SelfDependencyError) Unwrap() error {
	return ErrScheduling
}

// UnknownDependencyError is returned when a dependency names no registered test.
type UnknownDependencyError struct {
	Test       api.Key
	Location   api.Location
	Dependency api.Key
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("%s: test %s depends on unknown test %s", e.Location, e.Test, e.Dependency)
}

func (e *UnknownDependencyError) Unwrap() error {
	return ErrScheduling
}

// Blocked is a test left unscheduled by a cycle, with the dependencies it still waits for.
type Blocked struct {
	Test     api.Key
	Location api.Location
	Waiting  []api.Key
}

// CycleError is returned when the dependency graph contains at least one cycle.
type CycleError struct {
	Blocked []Blocked
}

func (e *CycleError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "dependency cycle detected, %d tests cannot be scheduled:", len(e.Blocked))

	for _, blocked := range e.Blocked {
		waiting := make([]string, 0, len(blocked.Waiting))
		for _, key := range blocked.Waiting {
			waiting = append(waiting, key.String())
		}

		fmt.Fprintf(&b, "\n    %s (%s) waits for %s", blocked.Test, blocked.Location, strings.Join(waiting, ", "))
	}

	return b.String()
}

func (e *CycleError) Unwrap() error {
	return ErrScheduling
}
