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
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func strPtr(s string) *string {
	return &s
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		want      bool
	}{
		{"true passes", Assertion{Kind: AssertTrue, Actual: true}, true},
		{"true fails", Assertion{Kind: AssertTrue, Actual: false}, false},
		{"not passes", Assertion{Kind: AssertNot, Actual: false}, true},
		{"not fails", Assertion{Kind: AssertNot, Actual: true}, false},
		{"eq int", Assertion{Kind: AssertEqInt, Actual: int64(3), Expected: int64(3)}, true},
		{"eq int mismatch", Assertion{Kind: AssertEqInt, Actual: int64(3), Expected: int64(4)}, false},
		{"ne int", Assertion{Kind: AssertNeInt, Actual: int64(3), Expected: int64(4)}, true},
		{"ne int equal", Assertion{Kind: AssertNeInt, Actual: int64(3), Expected: int64(3)}, false},
		{"eq float within tolerance", Assertion{Kind: AssertEqFloat, Actual: 1.0, Expected: 1.0 + 0.4e-6}, true},
		{"eq float outside tolerance", Assertion{Kind: AssertEqFloat, Actual: 1.0, Expected: 1.0 + 2e-6}, false},
		{"ne float outside tolerance", Assertion{Kind: AssertNeFloat, Actual: 1.0, Expected: 1.0 + 2e-6}, true},
		{"ne float within tolerance", Assertion{Kind: AssertNeFloat, Actual: 1.0, Expected: 1.0}, false},
		{"eq str", Assertion{Kind: AssertEqStr, Actual: strPtr("a"), Expected: strPtr("a")}, true},
		{"eq str nil nil", Assertion{Kind: AssertEqStr, Actual: (*string)(nil), Expected: (*string)(nil)}, true},
		{"eq str nil empty", Assertion{Kind: AssertEqStr, Actual: (*string)(nil), Expected: strPtr("")}, false},
		{"ne str nil empty", Assertion{Kind: AssertNeStr, Actual: strPtr(""), Expected: (*string)(nil)}, true},
		{"ne str equal", Assertion{Kind: AssertNeStr, Actual: strPtr("x"), Expected: strPtr("x")}, false},
		{"fail", Assertion{Kind: AssertFail}, false},
		{"unknown", Assertion{Kind: AssertUnknown}, false},
		{"wrong type", Assertion{Kind: AssertEqInt, Actual: 3, Expected: int64(3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.assertion))
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{
			name:      "truthiness",
			assertion: Assertion{Kind: AssertTrue, Actual: false, ActualExpr: "x > 1"},
			want:      "assertion failed: x > 1",
		},
		{
			name:      "int equality",
			assertion: Assertion{Kind: AssertEqInt, Actual: int64(1), Expected: int64(2), ActualExpr: "a", ExpectedExpr: "b"},
			want:      "a == b failed: a = 1, b = 2",
		},
		{
			name:      "string inequality with nil",
			assertion: Assertion{Kind: AssertNeStr, Actual: (*string)(nil), Expected: (*string)(nil), ActualExpr: "a", ExpectedExpr: "b"},
			want:      "a != b failed: a = (null), b = (null)",
		},
		{
			name:      "forced failure",
			assertion: Assertion{Kind: AssertFail},
			want:      "forced failure",
		},
		{
			name:      "forced failure with message",
			assertion: Assertion{Kind: AssertFail, Message: "panic: boom"},
			want:      "panic: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.assertion))
		})
	}

	t.Run("float reports delta", func(t *testing.T) {
		got := Describe(Assertion{Kind: AssertEqFloat, Actual: 1.0, Expected: 1.5, ActualExpr: "a", ExpectedExpr: "b"})
		assert.Contains(t, got, "a == b failed")
		assert.Contains(t, got, "delta = 0.5000000000")
	})
}

func TestAssertionKind_String(t *testing.T) {
	assert.Equal(t, "eq-float", AssertEqFloat.String())
	assert.Equal(t, "==", AssertEqStr.Operator())
	assert.Equal(t, "!=", AssertNeInt.Operator())
	assert.Empty(t, AssertTrue.Operator())
	assert.Equal(t, "AssertionKind(99)", AssertionKind(99).String())
}
