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

package runner

import (
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/kritic-dev/kritic/internal/utils"
)

// debugPrintQueue prints the execution order and the dependencies of every queued test.
func (r *Runtime) debugPrintQueue() {
	plural := pluralize.NewClient()
	tests := r.registry.Tests()

	utils.DebugPrintf("Scheduled %s\n", plural.Pluralize("test", len(r.queue), true))

	for position, index := range r.queue {
		test := tests[index]

		if len(test.Dependencies) == 0 {
			utils.DebugPrintf("  %d. %s\n", position+1, test.Key)
			continue
		}

		deps := make([]string, 0, len(test.Dependencies))
		for _, dep := range test.Dependencies {
			deps = append(deps, dep.Key.String())
		}

		utils.DebugPrintf("  %d. %s (after %s)\n", position+1, test.Key, strings.Join(deps, ", "))
	}
}
