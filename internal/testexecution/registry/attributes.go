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
	"fmt"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Apply parses attrs into test. A duplicate dependency and an unknown attribute
// are reported and skipped; every other problem is returned as an error.
func Apply(test *Test, limits Limits, attrs ...api.Attribute) error {
	for _, attr := range attrs {
		switch attr.Type {
		case api.AttributeDependsOn:
			if err := addDependency(test, limits, attr.DependsOn); err != nil {
				return err
			}
		case api.AttributeParameterized:
			if err := addParameter(test, limits, attr.Parameter); err != nil {
				return err
			}
		case api.AttributeUnknown:
			fallthrough
		default:
			utils.ErrorPrintf("unknown attribute type %s on test %s, ignoring\n", attr.Type, test.Key)
		}
	}

	return nil
}

func addDependency(test *Test, limits Limits, key api.Key) error {
	for _, dep := range test.Dependencies {
		if dep.Key == key {
			utils.WarningPrintf("duplicate dependency %s on test %s, ignoring\n", key, test.Key)
			return nil
		}
	}

	if len(test.Dependencies) >= limits.MaxDependencies {
		return fmt.Errorf("%w: %s declares more than %d", ErrTooManyDependencies, test.Key, limits.MaxDependencies)
	}

	test.Dependencies = append(test.Dependencies, api.NewDependency(key))

	return nil
}

func addParameter(test *Test, limits Limits, param api.Parameter) error {
	if err := param.Validate(); err != nil {
		return err
	}

	for _, p := range test.Parameters {
		if p.Name == param.Name {
			return fmt.Errorf("%w: %q on test %s", ErrDuplicateParameter, param.Name, test.Key)
		}
	}

	if len(test.Parameters) >= limits.MaxParameters {
		return fmt.Errorf("%w: %s declares more than %d", ErrTooManyParameters, test.Key, limits.MaxParameters)
	}

	// The first variable drives the iteration count, later ones must cover it.
	if len(test.Parameters) > 0 && param.Len < test.Parameters[0].Len {
		return fmt.Errorf("%w: %q has %d elements, %q needs at least %d",
			api.ErrInvalidParameter, param.Name, param.Len, test.Parameters[0].Name, test.Parameters[0].Len)
	}

	test.Parameters = append(test.Parameters, param)

	return nil
}
