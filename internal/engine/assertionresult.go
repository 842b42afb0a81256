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

import "github.com/kritic-dev/kritic/internal/api"

// AssertionResult records a failed assertion for the run report.
type AssertionResult struct {
	Location  api.Location  `json:"location"`
	Kind      AssertionKind `json:"-"`
	Iteration int           `json:"iteration"`
	Message   string        `json:"message"`
}

// NewAssertionResult creates a new AssertionResult from an evaluated assertion.
func NewAssertionResult(event AssertionEvent) AssertionResult {
	return AssertionResult{
		Location:  event.Location,
		Kind:      event.Assertion.Kind,
		Iteration: event.Iteration,
		Message:   Describe(event.Assertion),
	}
}
