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

package engine

import (
	"fmt"
	"math"
)

// FloatTolerance is the absolute tolerance used by float equality assertions.
const FloatTolerance = 1e-6

// AssertionKind selects how an assertion compares its values.
type AssertionKind int

// Assertion kinds.
const (
	AssertUnknown AssertionKind = iota
	AssertTrue
	AssertNot
	AssertEqInt
	AssertEqFloat
	AssertEqStr
	AssertNeInt
	AssertNeFloat
	AssertNeStr
	AssertFail
)

// String implements fmt.Stringer.
func (k AssertionKind) String() string {
	switch k {
	case AssertTrue:
		return "assert"
	case AssertNot:
		return "assert-not"
	case AssertEqInt:
		return "eq-int"
	case AssertEqFloat:
		return "eq-float"
	case AssertEqStr:
		return "eq-str"
	case AssertNeInt:
		return "ne-int"
	case AssertNeFloat:
		return "ne-float"
	case AssertNeStr:
		return "ne-str"
	case AssertFail:
		return "fail"
	case AssertUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("AssertionKind(%d)", int(k))
	}
}

// Operator returns the comparison operator for equality kinds, or "".
func (k AssertionKind) Operator() string {
	switch k { //nolint:exhaustive // only comparisons have operators
	case AssertEqInt, AssertEqFloat, AssertEqStr:
		return "=="
	case AssertNeInt, AssertNeFloat, AssertNeStr:
		return "!="
	default:
		return ""
	}
}

// Assertion is a single check as evaluated by the runtime.
//
// Actual and Expected hold a bool for AssertTrue/AssertNot, an int64 for the
// integer kinds, a float64 for the float kinds and a *string for the string
// kinds (nil models an absent string). Message explains a forced failure.
type Assertion struct {
	Kind         AssertionKind
	Actual       any
	Expected     any
	ActualExpr   string
	ExpectedExpr string
	Message      string
}

// Evaluate returns the verdict of a. Values of the wrong type never pass.
func Evaluate(a Assertion) bool {
	switch a.Kind {
	case AssertTrue:
		v, ok := a.Actual.(bool)
		return ok && v
	case AssertNot:
		v, ok := a.Actual.(bool)
		return ok && !v
	case AssertEqInt, AssertNeInt:
		actual, ok1 := a.Actual.(int64)
		expected, ok2 := a.Expected.(int64)

		if !ok1 || !ok2 {
			return false
		}

		return (actual == expected) == (a.Kind == AssertEqInt)
	case AssertEqFloat, AssertNeFloat:
		actual, ok1 := a.Actual.(float64)
		expected, ok2 := a.Expected.(float64)

		if !ok1 || !ok2 {
			return false
		}

		return FloatEqual(actual, expected) == (a.Kind == AssertEqFloat)
	case AssertEqStr, AssertNeStr:
		actual, ok1 := a.Actual.(*string)
		expected, ok2 := a.Expected.(*string)

		if !ok1 || !ok2 {
			return false
		}

		return StringEqual(actual, expected) == (a.Kind == AssertEqStr)
	case AssertFail, AssertUnknown:
		return false
	default:
		return false
	}
}

// FloatEqual compares with the fixed absolute tolerance.
func FloatEqual(actual, expected float64) bool {
	return math.Abs(actual-expected) <= FloatTolerance
}

// StringEqual treats two nil strings as equal and nil against non-nil as unequal.
func StringEqual(actual, expected *string) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	return *actual == *expected
}

// Describe returns a one-line description of a failed assertion.
func Describe(a Assertion) string {
	switch a.Kind {
	case AssertTrue:
		return fmt.Sprintf("assertion failed: %s", a.ActualExpr)
	case AssertNot:
		return fmt.Sprintf("assertion expected to fail: %s", a.ActualExpr)
	case AssertEqInt, AssertNeInt:
		return fmt.Sprintf("%s %s %s failed: %s = %v, %s = %v", a.ActualExpr, a.Kind.Operator(), a.ExpectedExpr,
			a.ActualExpr, a.Actual, a.ExpectedExpr, a.Expected)
	case AssertEqFloat, AssertNeFloat:
		actual, _ := a.Actual.(float64)
		expected, _ := a.Expected.(float64)

		return fmt.Sprintf("%s %s %s failed: %s = %.10f, %s = %.10f, delta = %.10f", a.ActualExpr, a.Kind.Operator(), a.ExpectedExpr,
			a.ActualExpr, actual, a.ExpectedExpr, expected, math.Abs(actual-expected))
	case AssertEqStr, AssertNeStr:
		actual, _ := a.Actual.(*string)
		expected, _ := a.Expected.(*string)

		return fmt.Sprintf("%s %s %s failed: %s = %s, %s = %s", a.ActualExpr, a.Kind.Operator(), a.ExpectedExpr,
			a.ActualExpr, QuoteNullable(actual), a.ExpectedExpr, QuoteNullable(expected))
	case AssertFail:
		if a.Message != "" {
			return a.Message
		}

		return "forced failure"
	case AssertUnknown:
		return "unknown assertion type"
	default:
		return "unknown assertion type"
	}
}

// QuoteNullable quotes s, rendering nil as (null).
func QuoteNullable(s *string) string {
	if s == nil {
		return "(null)"
	}

	return fmt.Sprintf("%q", *s)
}
