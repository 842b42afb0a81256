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

// Package api provides the declaration types used to register tests: keys, source locations and attributes.
package api

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidParameter is returned when a parameterization descriptor cannot be iterated.
var ErrInvalidParameter = errors.New("invalid parameterized attribute")

// Key identifies a test by suite and name. Keys are unique within a run.
type Key struct {
	Suite string `json:"suite"`
	Name  string `json:"name"`
}

// String returns the key as "suite.name".
func (k Key) String() string {
	return k.Suite + "." + k.Name
}

// Location is the source position a test was declared at.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// String returns the location as "file:line".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// AttributeType tags the variant held by an Attribute.
type AttributeType int

// Attribute types.
const (
	AttributeUnknown AttributeType = iota
	AttributeDependsOn
	AttributeParameterized
)

// String implements fmt.Stringer.
func (t AttributeType) String() string {
	switch t {
	case AttributeDependsOn:
		return "depends-on"
	case AttributeParameterized:
		return "parameterized"
	case AttributeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("AttributeType(%d)", int(t))
	}
}

// Attribute is declarative metadata attached to a test at registration time.
// Only the field matching Type is meaningful.
type Attribute struct {
	Type      AttributeType
	DependsOn Key
	Parameter Parameter
}

// DependsOn declares that the test requires suite.name to have passed before it may run.
func DependsOn(suite, name string) Attribute {
	return Attribute{
		Type:      AttributeDependsOn,
		DependsOn: Key{Suite: suite, Name: name},
	}
}

// Parameterized binds the variable name to the successive elements of values, which must be a slice or an array.
// The test body runs once per element of the first parameterized attribute of a test.
func Parameterized(name string, values any) Attribute {
	return Attribute{
		Type:      AttributeParameterized,
		Parameter: NewParameter(name, values),
	}
}

// Dependency is a declared dependency of a test. Index is the arena index of the
// depended-upon test once the scheduler resolved it, -1 before.
type Dependency struct {
	Key

	Index int
}

// NewDependency returns an unresolved dependency on key.
func NewDependency(key Key) Dependency {
	return Dependency{Key: key, Index: -1}
}

// Resolved returns true once the scheduler stored the dependency's arena index.
func (d Dependency) Resolved() bool {
	return d.Index >= 0
}

// Parameter describes a caller-owned slice iterated by a parameterized test.
type Parameter struct {
	Name     string
	Values   any     // caller-owned slice or array, outlives the run
	Len      int     // element count, -1 when Values is not iterable
	ElemSize uintptr // element size in bytes
}

// NewParameter builds a descriptor for values, computing its element count and size.
func NewParameter(name string, values any) Parameter {
	p := Parameter{Name: name, Values: values, Len: -1}

	v := reflect.ValueOf(values)
	if !v.IsValid() {
		return p
	}

	switch v.Kind() { //nolint:exhaustive // only slices and arrays are iterable
	case reflect.Slice, reflect.Array:
		p.Len = v.Len()
		p.ElemSize = v.Type().Elem().Size()
	}

	return p
}

// Validate returns an error when the descriptor cannot be used for iteration.
func (p Parameter) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty variable name", ErrInvalidParameter)
	}

	if p.Len < 0 {
		return fmt.Errorf("%w: %q must be a slice or an array, got %T", ErrInvalidParameter, p.Name, p.Values)
	}

	return nil
}

// At returns the element for the given iteration.
func (p Parameter) At(iteration int) (any, error) {
	if p.Len < 0 {
		return nil, p.Validate()
	}

	if iteration < 0 || iteration >= p.Len {
		return nil, fmt.Errorf("%w: iteration %d out of range for %q with %d elements", ErrInvalidParameter, iteration, p.Name, p.Len)
	}

	return reflect.ValueOf(p.Values).Index(iteration).Interface(), nil
}
