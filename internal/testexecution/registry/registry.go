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

// Package registry holds the declared tests of a run and parses their attributes.
package registry

import (
	"fmt"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Default capacities of the per-test attribute lists.
const (
	DefaultMaxDependencies = 4
	DefaultMaxParameters   = 4
)

// Limits bounds the attribute lists of every test.
type Limits struct {
	MaxDependencies int
	MaxParameters   int
}

// DefaultLimits returns the default capacities.
func DefaultLimits() Limits {
	return Limits{MaxDependencies: DefaultMaxDependencies, MaxParameters: DefaultMaxParameters}
}

// Test is a declared test record. Records are owned by a Registry and referred
// to by their arena index.
type Test struct {
	api.Key

	Location     api.Location
	Index        int
	Dependencies []api.Dependency
	Parameters   []api.Parameter
	Status       engine.Status
}

// Info returns a snapshot of the record for printers.
func (t *Test) Info() engine.TestInfo {
	return engine.TestInfo{
		Key:      t.Key,
		Location: t.Location,
		Status:   t.Status,
		Index:    t.Index,
	}
}

// Iterations returns how many times the body runs: the element count of the
// first parameterized variable, or 1.
func (t *Test) Iterations() int {
	if len(t.Parameters) == 0 {
		return 1
	}

	return t.Parameters[0].Len
}

// Lookup returns the value of the parameterized variable name for iteration.
func (t *Test) Lookup(name string, iteration int) (any, error) {
	if len(t.Parameters) == 0 {
		return nil, fmt.Errorf("%w: %s has no variable %q", ErrNoParameters, t.Key, name)
	}

	for _, p := range t.Parameters {
		if p.Name == name {
			return p.At(iteration)
		}
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownParameter, name, t.Key)
}

// Registry is the arena of declared tests, in registration order.
type Registry struct {
	limits Limits
	debug  bool
	tests  []*Test
	keys   map[api.Key]int
}

// New returns an empty registry. Non-positive limits fall back to the defaults.
func New(limits Limits, debug bool) *Registry {
	if limits.MaxDependencies <= 0 {
		limits.MaxDependencies = DefaultMaxDependencies
	}

	if limits.MaxParameters <= 0 {
		limits.MaxParameters = DefaultMaxParameters
	}

	return &Registry{
		limits: limits,
		debug:  debug,
		keys:   make(map[api.Key]int),
	}
}

// Limits returns the attribute capacities of the registry.
func (r *Registry) Limits() Limits {
	return r.limits
}

// Register declares a test and applies its attributes. The returned record has status Registered.
// Nothing is added when an error is returned.
func (r *Registry) Register(loc api.Location, suite, name string, attrs ...api.Attribute) (*Test, error) {
	key := api.Key{Suite: suite, Name: name}

	if suite == "" || name == "" {
		return nil, &DeclarationError{Key: key, Location: loc, Err: fmt.Errorf("%w: suite and name must not be empty", ErrInvalidTest)}
	}

	if prev, ok := r.keys[key]; ok {
		return nil, &DeclarationError{Key: key, Location: loc, Err: fmt.Errorf("%w: already declared at %s", ErrDuplicateTest, r.tests[prev].Location)}
	}

	test := &Test{
		Key:      key,
		Location: loc,
		Index:    len(r.tests),
		Status:   engine.StatusRegistered,
	}

	if err := Apply(test, r.limits, attrs...); err != nil {
		return nil, &DeclarationError{Key: key, Location: loc, Err: err}
	}

	r.keys[key] = test.Index
	r.tests = append(r.tests, test)

	if r.debug {
		utils.DebugPrintf("Registered %s at %s with %d dependencies and %d parameterized variables\n",
			key, loc, len(test.Dependencies), len(test.Parameters))
	}

	return test, nil
}

// Tests returns the arena in registration order.
func (r *Registry) Tests() []*Test {
	return r.tests
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.tests)
}

// Find returns the record declared under key.
func (r *Registry) Find(key api.Key) (*Test, bool) {
	i, ok := r.keys[key]
	if !ok {
		return nil, false
	}

	return r.tests[i], true
}
