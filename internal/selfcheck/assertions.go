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

const (
	pi = 3.1415926535
	e  = 2.7182818284
)

func assertions(rt *kritic.Runtime) {
	const suite = "assertions"

	kritic.Test(rt, suite, "assert_pass", func(s *kritic.State) {
		s.Assert(true)
	})
	kritic.Test(rt, suite, "assert_fail", func(s *kritic.State) {
		s.Assert(false)
	})
	kritic.Test(rt, suite, "assert_expr_pass", func(s *kritic.State) {
		count := 2
		s.Assert(count > 0)
	})
	kritic.Test(rt, suite, "assert_expr_fail", func(s *kritic.State) {
		count := 0
		s.Assert(count > 0)
	})

	kritic.Test(rt, suite, "assert_not_pass", func(s *kritic.State) {
		s.AssertNot(false)
	})
	kritic.Test(rt, suite, "assert_not_fail", func(s *kritic.State) {
		s.AssertNot(true)
	})

	kritic.Test(rt, suite, "assert_eq_pass", func(s *kritic.State) {
		s.AssertEqInt(42, 42)
	})
	kritic.Test(rt, suite, "assert_eq_fail", func(s *kritic.State) {
		s.AssertEqInt(1, 2)
	})
	kritic.Test(rt, suite, "assert_eq_expr_fail", func(s *kritic.State) {
		a, b := int64(5), int64(6)
		s.AssertEqInt(a, b)
	})
	kritic.Test(rt, suite, "assert_ne_pass", func(s *kritic.State) {
		s.AssertNeInt(1, 2)
	})
	kritic.Test(rt, suite, "assert_ne_fail", func(s *kritic.State) {
		a, b := int64(7), int64(7)
		s.AssertNeInt(a, b)
	})

	kritic.Test(rt, suite, "assert_eq_float_exact_pass", func(s *kritic.State) {
		s.AssertEqFloat(pi, pi)
	})
	kritic.Test(rt, suite, "assert_eq_float_exact_fail", func(s *kritic.State) {
		s.AssertEqFloat(e, pi)
	})
	kritic.Test(rt, suite, "assert_eq_float_pass", func(s *kritic.State) {
		a, b := 100.0, 100.0+kritic.FloatTolerance/2
		s.AssertEqFloat(a, b)
	})
	kritic.Test(rt, suite, "assert_eq_float_fail", func(s *kritic.State) {
		a, b := 1.0, 1.0+kritic.FloatTolerance*2
		s.AssertEqFloat(a, b)
	})
	kritic.Test(rt, suite, "assert_ne_float_pass", func(s *kritic.State) {
		a, b := 1.0, 1.0+kritic.FloatTolerance*2
		s.AssertNeFloat(a, b)
	})
	kritic.Test(rt, suite, "assert_ne_float_fail", func(s *kritic.State) {
		a, b := 100.0, 100.0+kritic.FloatTolerance/2
		s.AssertNeFloat(a, b)
	})

	kritic.Test(rt, suite, "assert_eq_str_pass", func(s *kritic.State) {
		hello1, hello2 := "Hello", "Hello"
		s.AssertEqStr(hello1, hello2)
	})
	kritic.Test(rt, suite, "assert_eq_str_fail", func(s *kritic.State) {
		s.AssertEqStr("Hello", "World")
	})
	kritic.Test(rt, suite, "assert_eq_str_multiline_fail", func(s *kritic.State) {
		got := "first\nsecond\nthird\n"
		want := "first\n2nd\nthird\n"
		s.AssertEqStr(got, want)
	})
	kritic.Test(rt, suite, "assert_eq_str_null_pass", func(s *kritic.State) {
		s.AssertEqStrPtr(nil, nil)
	})
	kritic.Test(rt, suite, "assert_eq_str_null_fail", func(s *kritic.State) {
		empty := ""
		s.AssertEqStrPtr(nil, &empty)
	})
	kritic.Test(rt, suite, "assert_ne_str_pass", func(s *kritic.State) {
		s.AssertNeStr("Hello", "World")
	})
	kritic.Test(rt, suite, "assert_ne_str_fail", func(s *kritic.State) {
		s.AssertNeStr("Hello", "Hello")
	})

	kritic.Test(rt, suite, "assert_fail_fail", func(s *kritic.State) {
		s.Fail()
	})
	kritic.Test(rt, suite, "assert_failf_fail", func(s *kritic.State) {
		s.Failf("unexpected state %q", "closed")
	})

	kritic.Test(rt, suite, "simple_skip", func(s *kritic.State) {
		s.Skip("Skip from assertions.simple_skip test")
	})
	kritic.Test(rt, suite, "dual_skip", func(s *kritic.State) {
		s.Skip("This should be shown on stdout")
		s.Skip("This should NOT be shown on stdout")
	})
	kritic.Test(rt, suite, "pass_then_skip", func(s *kritic.State) {
		s.Assert(true)
		s.Skip("Skipping after pass...")
	})
	kritic.Test(rt, suite, "fail_then_skip", func(s *kritic.State) {
		s.Assert(false)
		s.Skip("Skipping after fail...")
	})
	kritic.Test(rt, suite, "panic_fail", func(s *kritic.State) {
		var values []int
		s.AssertEqInt(int64(values[3]), 0)
	})
}
