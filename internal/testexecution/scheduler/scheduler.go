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

// Package scheduler orders registered tests so that every test runs after its dependencies.
package scheduler

import (
	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/testexecution/registry"
)

// Build marks every test Queued, resolves dependencies to arena indices and
// returns the execution order as arena indices. Ready tests keep their
// registration order. On error no order is returned.
func Build(tests []*registry.Test) ([]int, error) {
	lookup := make(map[api.Key]int, len(tests))

	for i, test := range tests {
		test.Status = engine.StatusQueued
		lookup[test.Key] = i
	}

	inDegree := make([]int, len(tests))

	for i, test := range tests {
		for d := range test.Dependencies {
			dep := &test.Dependencies[d]

			if dep.Key == test.Key {
				return nil, &SelfDependencyError{Test: test.Key, Location: test.Location}
			}

			index, ok := lookup[dep.Key]
			if !ok {
				return nil, &UnknownDependencyError{Test: test.Key, Location: test.Location, Dependency: dep.Key}
			}

			dep.Index = index
			inDegree[i]++
		}
	}

	ready := make([]int, 0, len(tests))

	for i := range tests {
		if inDegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, len(tests))

	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		order = append(order, current)

		for i, test := range tests {
			for _, dep := range test.Dependencies {
				if dep.Index != current {
					continue
				}

				inDegree[i]--
				if inDegree[i] == 0 {
					ready = append(ready, i)
				}
			}
		}
	}

	if len(order) < len(tests) {
		return nil, cycleError(tests, inDegree, order)
	}

	return order, nil
}

func cycleError(tests []*registry.Test, inDegree, order []int) *CycleError {
	done := make([]bool, len(tests))
	for _, i := range order {
		done[i] = true
	}

	err := &CycleError{}

	for i, test := range tests {
		if inDegree[i] == 0 {
			continue
		}

		blocked := Blocked{Test: test.Key, Location: test.Location}

		for _, dep := range test.Dependencies {
			if !done[dep.Index] {
				blocked.Waiting = append(blocked.Waiting, dep.Key)
			}
		}

		err.Blocked = append(err.Blocked, blocked)
	}

	return err
}
