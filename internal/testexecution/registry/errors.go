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

package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/kritic-dev/kritic/internal/api"
)

// Declaration errors. All of them are fatal for a run.
var (
	ErrInvalidTest         = errors.New("invalid test declaration")
	ErrDuplicateTest       = errors.New("duplicate test")
	ErrTooManyDependencies = errors.New("too many dependencies")
	ErrDuplicateParameter  = errors.New("duplicate parameterized variable")
	ErrTooManyParameters   = errors.New("too many parameterized variables")
	ErrNoParameters        = errors.New("test is not parameterized")
	ErrUnknownParameter    = errors.New("unknown parameterized variable")
)

// DeclarationError ties a declaration error to the test it was found in.
type DeclarationError struct {
	Key      api.Key
	Location api.Location
	Err      error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%s: test %s: %v", e.Location, e.Key, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

// ReportError prints a detailed error followed by a FAIL line to stderr and returns the error for tracking.
func ReportError(target, failureReason string, err error) error {
	errorMsg := fmt.Sprintf("%s in %s: %v", failureReason, target, err)
	fmt.Fprintf(os.Stderr, "# %s\n%s\n", target, errorMsg)           //nolint:errcheck // output function, error handling not practical
	fmt.Fprintf(os.Stderr, "FAIL\t%s\t[%s]\n", target, failureReason) //nolint:errcheck // output function, error handling not practical

	return fmt.Errorf("%s: %w", failureReason, err)
}

// ReportDeclarationError reports err, naming the offending test when err carries one.
func ReportDeclarationError(err error) error {
	var declErr *DeclarationError
	if errors.As(err, &declErr) {
		return ReportError(declErr.Key.String(), "invalid test declaration", err)
	}

	return ReportError("registry", "invalid test declaration", err)
}
