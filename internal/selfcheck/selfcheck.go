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

// Package selfcheck declares the built-in suites run by "kritic run". Some of
// their tests fail, skip or print on purpose to show every kind of report.
package selfcheck

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kritic-dev/kritic"
)

// ErrUnknownSuite is returned when a requested suite does not exist.
var ErrUnknownSuite = errors.New("unknown suite")

var suites = map[string]func(rt *kritic.Runtime){
	"assertions":    assertions,
	"attributes":    attributes,
	"indirect":      indirect,
	"io":            output,
	"parameterized": parameterized,
}

// Suites returns the names of the built-in suites, sorted.
func Suites() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Register declares the tests of the named suites in rt, or of every suite when none is named.
// Suites are declared in sorted order whatever the order of names.
func Register(rt *kritic.Runtime, names ...string) error {
	if len(names) == 0 {
		names = Suites()
	}

	for _, name := range names {
		if _, ok := suites[name]; !ok {
			return fmt.Errorf("%w %q, must be one of %s", ErrUnknownSuite, name, strings.Join(Suites(), ", "))
		}
	}

	for _, name := range Suites() {
		if slices.Contains(names, name) {
			suites[name](rt)
		}
	}

	return nil
}
