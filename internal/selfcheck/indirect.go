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

// Assertions made from helpers report the helper's line.

func assertZero(s *kritic.State) { s.Assert(false) }

func assertOne(s *kritic.State) { s.Assert(true) }

func assertNested(s *kritic.State, pass bool) {
	if pass {
		assertOne(s)
		return
	}

	assertZero(s)
}

func assertPositive(s *kritic.State, a, b int) {
	s.Assert(a > 0)
	s.Assert(b > 0)
}

func assertRecursive(s *kritic.State, depth, failAt int) {
	if depth == 0 {
		return
	}

	if depth == failAt {
		s.Assert(false)
	}

	assertRecursive(s, depth-1, failAt)
}

func assertOnEven(s *kritic.State, value int, pass bool) {
	if value%2 == 0 {
		s.Assert(pass)
	}
}

type checker struct {
	name  string
	check func(s *kritic.State, name string) bool
}

func indirect(rt *kritic.Runtime) {
	const suite = "indirect"

	kritic.Test(rt, suite, "direct_fail", assertZero)
	kritic.Test(rt, suite, "direct_pass", assertOne)

	kritic.Test(rt, suite, "nested_fail", func(s *kritic.State) { assertNested(s, false) })
	kritic.Test(rt, suite, "nested_pass", func(s *kritic.State) { assertNested(s, true) })

	kritic.Test(rt, suite, "multiple_fail", func(s *kritic.State) { assertPositive(s, -1, 5) })
	kritic.Test(rt, suite, "multiple_pass", func(s *kritic.State) { assertPositive(s, 1, 1) })

	kritic.Test(rt, suite, "recursion_fail", func(s *kritic.State) { assertRecursive(s, 3, 1) })
	kritic.Test(rt, suite, "recursion_pass", func(s *kritic.State) { assertRecursive(s, 3, -1) })

	kritic.Test(rt, suite, "loop_helper_fail", func(s *kritic.State) {
		for i := 0; i < 4; i++ {
			assertOnEven(s, i, false)
		}
	})
	kritic.Test(rt, suite, "loop_helper_pass", func(s *kritic.State) {
		for i := 0; i < 4; i++ {
			assertOnEven(s, i, true)
		}
	})

	kritic.Test(rt, suite, "struct_fail", func(s *kritic.State) {
		c := checker{name: "fail", check: func(s *kritic.State, name string) bool { return s.AssertEqStr(name, "pass") }}
		c.check(s, c.name)
	})
	kritic.Test(rt, suite, "struct_pass", func(s *kritic.State) {
		c := checker{name: "pass", check: func(s *kritic.State, name string) bool { return s.AssertEqStr(name, "pass") }}
		c.check(s, c.name)
	})
}
