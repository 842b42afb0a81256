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

package selfcheck

import "github.com/kritic-dev/kritic"

// attributes declares some dependents before their dependencies so that the
// schedule differs from the declaration order.
func attributes(rt *kritic.Runtime) {
	const suite = "attributes"

	pass := func(s *kritic.State) { s.Assert(true) }

	kritic.Test(rt, suite, "target_simple", pass)
	kritic.Test(rt, suite, "depends_on_simple", pass,
		kritic.DependsOn(suite, "target_simple"))
	kritic.Test(rt, suite, "depends_on_duplicate", pass,
		kritic.DependsOn(suite, "target_simple"),
		kritic.DependsOn(suite, "target_simple"))

	kritic.Test(rt, suite, "depends_on_cross_suite", pass,
		kritic.DependsOn("dependency_suite", "target_cross_suite"))
	kritic.Test(rt, "dependency_suite", "target_cross_suite", pass)

	kritic.Test(rt, suite, "dep_a", pass, kritic.DependsOn(suite, "dep_b"))
	kritic.Test(rt, suite, "dep_b", pass, kritic.DependsOn(suite, "dep_c"))
	kritic.Test(rt, suite, "dep_c", pass)

	kritic.Test(rt, suite, "diamond_d", pass,
		kritic.DependsOn(suite, "diamond_b"),
		kritic.DependsOn(suite, "diamond_c"))
	kritic.Test(rt, suite, "diamond_b", pass, kritic.DependsOn(suite, "diamond_a"))
	kritic.Test(rt, suite, "diamond_c", pass, kritic.DependsOn(suite, "diamond_a"))
	kritic.Test(rt, suite, "diamond_a", pass)

	kritic.Test(rt, suite, "broken", func(s *kritic.State) {
		s.Failf("broken on purpose")
	})
	kritic.Test(rt, suite, "after_broken", pass, kritic.DependsOn(suite, "broken"))
	kritic.Test(rt, suite, "after_after_broken", pass, kritic.DependsOn(suite, "after_broken"))

	kritic.Test(rt, suite, "skipped", func(s *kritic.State) {
		s.Skip("not supported here")
	})
	kritic.Test(rt, suite, "after_skipped", pass, kritic.DependsOn(suite, "skipped"))
}
