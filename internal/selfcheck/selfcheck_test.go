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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing

	"github.com/kritic-dev/kritic"
	"github.com/kritic-dev/kritic/internal/engine"
	unittestsUtils "github.com/kritic-dev/kritic/internal/unittests/utils"
)

func newRuntime(t *testing.T, capture bool) (*kritic.Runtime, *unittestsUtils.RecordingPrinter) {
	t.Helper()

	options := kritic.DefaultOptions()
	options.Capture = capture
	options.Color = "never"

	p := &unittestsUtils.RecordingPrinter{}
	rt := kritic.New(options, p)
	rt.SetExit(func(code int) { t.Fatalf("unexpected exit %d", code) })

	return rt, p
}

func statuses(p *unittestsUtils.RecordingPrinter) map[string]engine.Status {
	out := make(map[string]engine.Status)
	for _, test := range p.Tests {
		out[test.Key.String()] = test.Status
	}

	for _, pair := range p.DepFails {
		out[pair[0].Key.String()] = engine.StatusDepFailed
	}

	return out
}

func TestSuites(t *testing.T) {
	assert.Equal(t, []string{"assertions", "attributes", "indirect", "io", "parameterized"}, Suites())
}

func TestRegister_UnknownSuite(t *testing.T) {
	rt, _ := newRuntime(t, false)

	err := Register(rt, "io", "nope")
	require.ErrorIs(t, err, ErrUnknownSuite)
	assert.Empty(t, rt.Tests())
}

func TestRegister_All(t *testing.T) {
	rt, p := newRuntime(t, false)

	var err error

	stderr := unittestsUtils.CaptureStderr(func() { err = Register(rt) })
	require.NoError(t, err)
	assert.Contains(t, stderr, "WARNING:")
	assert.Len(t, rt.Tests(), 77)

	var code int

	_ = unittestsUtils.CaptureStdout(func() { code = rt.Run() })

	assert.Equal(t, engine.ExitTestsFailed, code)
	assert.Equal(t, engine.RunInfo{
		Total:     77,
		Passed:    44,
		Failed:    24,
		Skipped:   7,
		DepFailed: 2,
		Duration:  p.Run.Duration,
	}, p.Run)

	got := statuses(p)
	for key, want := range map[string]engine.Status{
		"assertions.assert_pass":              engine.StatusPassed,
		"assertions.assert_eq_float_pass":     engine.StatusPassed,
		"assertions.assert_eq_float_fail":     engine.StatusFailed,
		"assertions.assert_eq_str_null_pass":  engine.StatusPassed,
		"assertions.assert_eq_str_null_fail":  engine.StatusFailed,
		"assertions.fail_then_skip":           engine.StatusSkipped,
		"assertions.panic_fail":               engine.StatusFailed,
		"attributes.diamond_d":                engine.StatusPassed,
		"attributes.after_broken":             engine.StatusDepFailed,
		"attributes.after_after_broken":       engine.StatusDepFailed,
		"attributes.after_skipped":            engine.StatusSkipped,
		"indirect.recursion_fail":             engine.StatusFailed,
		"indirect.loop_helper_pass":           engine.StatusPassed,
		"parameterized.primes":                engine.StatusPassed,
		"parameterized.word_lengths":          engine.StatusPassed,
		"parameterized.halving_fail":          engine.StatusFailed,
		"parameterized.skip_short_words":      engine.StatusSkipped,
		"dependency_suite.target_cross_suite": engine.StatusPassed,
	} {
		assert.Equal(t, want, got[key], key)
	}
}

func TestRegister_Schedule(t *testing.T) {
	rt, _ := newRuntime(t, false)
	require.NoError(t, Register(rt, "attributes"))

	order, err := rt.Schedule()
	require.NoError(t, err)

	position := make(map[string]int, len(order))
	for i, index := range order {
		position[rt.Tests()[index].Key.String()] = i
	}

	before := func(a, b string) {
		t.Helper()
		assert.Less(t, position["attributes."+a], position["attributes."+b], "%s before %s", a, b)
	}

	before("dep_c", "dep_b")
	before("dep_b", "dep_a")
	before("diamond_a", "diamond_b")
	before("diamond_a", "diamond_c")
	before("diamond_b", "diamond_d")
	before("diamond_c", "diamond_d")
	assert.Less(t, position["dependency_suite.target_cross_suite"], position["attributes.depends_on_cross_suite"])
}

func TestRegister_Parameterized(t *testing.T) {
	rt, p := newRuntime(t, false)
	require.NoError(t, Register(rt, "parameterized"))

	rt.Run()

	iterations := make(map[string][]int)
	for _, event := range p.Assertions {
		iterations[event.Test.Name] = append(iterations[event.Test.Name], event.Iteration)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, iterations["primes"])
	assert.Equal(t, []int{0, 1, 2}, iterations["word_lengths"])
	assert.Equal(t, []int{0}, iterations["skip_short_words"])

	require.Len(t, p.Skips, 1)
	assert.Equal(t, `"go" is too short`, p.Skips[0].Reason)
}

func TestRegister_Output(t *testing.T) {
	rt, p := newRuntime(t, true)
	require.NoError(t, Register(rt, "io"))

	assert.Equal(t, engine.ExitOK, rt.Run())

	output := make(map[string]string)
	fragments := make(map[string]int)

	for _, line := range p.Lines {
		output[line.Test.Name] += line.Text
		fragments[line.Test.Name]++
	}

	assert.Equal(t, "Redirection of stdout works!\n", output["stdout_redirect"])
	assert.Equal(t, "This line should end with a newline\n", output["stdout_newline"])
	assert.Equal(t, "Hello\nWorld\n", output["stdout_multiline"])
	assert.Equal(t, "Hello World\n", output["stdout_monoline"])
	assert.Equal(t, "This will be flushed... and this follows.\n", output["stdout_flush"])
	assert.Equal(t, "Char-by-char\n", output["stdout_char_by_char"])
	assert.Equal(t, "before the assertion\nafter the assertion\n", output["stdout_then_assert"])

	assert.Equal(t, strings.Repeat("A", kritic.DefaultBufferSize-1)+"\n", output["stdout_exact_buffer"])
	assert.Equal(t, 1, fragments["stdout_exact_buffer"])

	assert.Len(t, output["stdout_long_line"], 2*kritic.DefaultBufferSize)
	assert.Greater(t, fragments["stdout_long_line"], 1)
}
