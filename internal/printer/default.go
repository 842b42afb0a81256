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

// Package printer renders the events of a run for humans.
package printer

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/timer"
)

const detailPrefix = labelBlank + "  -> "

// Default is the printer used by the command line. Lifecycle lines go to out
// and assertion diagnostics to errOut. Captured lines and skip messages are
// written to the original standard output carried by their event.
type Default struct {
	mu sync.Mutex

	out     io.Writer
	errOut  io.Writer
	verbose bool
	plural  *pluralize.Client

	// Version is shown in the run banner when set.
	Version string
}

// New returns a Default printer. Passing assertions are only shown when verbose is set.
func New(out, errOut io.Writer, verbose bool) *Default {
	return &Default{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		plural:  pluralize.NewClient(),
	}
}

func (p *Default) Init(run engine.RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, labelBlank) //nolint:errcheck // output function, error handling not practical

	if p.Version != "" {
		fmt.Fprintf(p.out, "%s kritic %s\n%s\n", labelBlank, p.Version, labelBlank) //nolint:errcheck // output function, error handling not practical
	}

	if run.Total == 0 {
		fmt.Fprintf(p.out, "%s No registered test found\n", labelBlank) //nolint:errcheck // output function, error handling not practical
		return
	}

	fmt.Fprintf(p.out, "%s Running %s:\n", labelBlank, p.plural.Pluralize("test", run.Total, true)) //nolint:errcheck // output function, error handling not practical
}

func (p *Default) PreTest(test engine.TestInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s %s at %s\n", labelExec(), test.Key, test.Location) //nolint:errcheck // output function, error handling not practical
}

// PostTest prints the verdict of a test. Skipped tests already printed their skip line.
func (p *Default) PostTest(test engine.TestInfo) {
	if test.Skipped || test.Status == engine.StatusSkipped {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	label := labelPass()
	if test.FailedAssertions > 0 || test.Status == engine.StatusFailed {
		label = labelFail()
	}

	passed := test.Assertions - test.FailedAssertions

	fmt.Fprintf(p.out, "%s %s (%d/%d)%s\n", label, test.Key, passed, test.Assertions, formatTook(" in ", test.Duration)) //nolint:errcheck // output function, error handling not practical
}

func (p *Default) Summary(run engine.RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := []string{
		fmt.Sprintf("Finished running %s!", p.plural.Pluralize("test", run.Total, true)),
		"",
		"Statistics:",
		fmt.Sprintf("  Total     : %d", run.Total),
		fmt.Sprintf("  Passed    : %d", run.Passed),
		fmt.Sprintf("  Failed    : %d", run.Failed),
		fmt.Sprintf("  Skipped   : %d", run.Skipped),
		fmt.Sprintf("  DepFailed : %d", run.DepFailed),
		fmt.Sprintf("  Rate      : %.1f%%", run.PassRate()),
		fmt.Sprintf("  Time      : %s", formatDuration(run.Duration)),
		"",
	}

	for _, line := range lines {
		fmt.Fprintln(p.out, strings.TrimRight(labelBlank+" "+line, " ")) //nolint:errcheck // output function, error handling not practical
	}

	if run.Failed > 0 || run.DepFailed > 0 {
		fmt.Fprintf(p.out, "%s Some tests failed!\n", labelFail()) //nolint:errcheck // output function, error handling not practical
		return
	}

	fmt.Fprintf(p.out, "%s All tests passed!\n", labelPass()) //nolint:errcheck // output function, error handling not practical
}

// Assert prints failed assertions, and passing ones in verbose mode.
func (p *Default) Assert(event engine.AssertionEvent) {
	if event.Passed && !p.verbose {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	label := labelFail()
	if event.Passed {
		label = labelPass()
	}

	iteration := ""
	if event.Iteration > 0 {
		iteration = fmt.Sprintf(" (iteration %d)", event.Iteration)
	}

	fmt.Fprintf(p.errOut, "%s  %s: %s at %s%s\n", label, event.Test, headline(event), event.Location, iteration) //nolint:errcheck // output function, error handling not practical

	if event.Passed {
		return
	}

	for _, detail := range details(event.Assertion) {
		fmt.Fprintln(p.errOut, detailPrefix+detail) //nolint:errcheck // output function, error handling not practical
	}
}

// Stdout prints a captured line. Continuations of a split line are printed without a label.
func (p *Default) Stdout(line engine.CapturedLine) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !line.Split {
		fmt.Fprint(line.Output, labelInfo()+" ") //nolint:errcheck // output function, error handling not practical
	}

	fmt.Fprint(line.Output, line.Text) //nolint:errcheck // output function, error handling not practical
}

func (p *Default) Skip(event engine.SkipEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(event.Output, "%s Reason: %s at %s%s\n", labelSkip(), event.Reason, event.Location, formatTook(" after ", event.Elapsed)) //nolint:errcheck // output function, error handling not practical
}

func (p *Default) DepFailed(test, dependency engine.TestInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s Test %q at %s is being skipped because underlying dependency %q failed\n", //nolint:errcheck // output function, error handling not practical
		labelSkip(), test.Key.String(), test.Location, dependency.Key.String())
}

// formatTook returns prefix followed by the duration, or "" when timing is unavailable.
func formatTook(prefix string, d time.Duration) string {
	if timer.IsUnavailable(d) {
		return ""
	}

	return prefix + formatDuration(d)
}

func formatDuration(d time.Duration) string {
	if timer.IsUnavailable(d) {
		return "unavailable"
	}

	ms := float64(d) / float64(time.Millisecond)
	if ms < 0.001 { //nolint:mnd // display resolution
		return "less than 0.001ms"
	}

	return fmt.Sprintf("%.3fms", ms)
}

func headline(event engine.AssertionEvent) string {
	a := event.Assertion

	switch a.Kind {
	case engine.AssertTrue:
		if event.Passed {
			return "assertion passed: " + a.ActualExpr
		}

		return "assertion failed: " + a.ActualExpr
	case engine.AssertNot:
		if event.Passed {
			return "assertion failed as expected: " + a.ActualExpr
		}

		return "assertion expected to fail: " + a.ActualExpr
	case engine.AssertEqInt, engine.AssertNeInt, engine.AssertEqFloat, engine.AssertNeFloat, engine.AssertEqStr, engine.AssertNeStr:
		verdict := "failed"
		if event.Passed {
			verdict = "passed"
		}

		return fmt.Sprintf("%s %s %s %s", a.ActualExpr, a.Kind.Operator(), a.ExpectedExpr, verdict)
	case engine.AssertFail:
		return engine.Describe(a)
	case engine.AssertUnknown:
		return "unknown assertion type"
	default:
		return "unknown assertion type"
	}
}

func details(a engine.Assertion) []string {
	switch a.Kind {
	case engine.AssertTrue:
		return []string{"value = false"}
	case engine.AssertNot:
		return []string{"value = true (was truthy)"}
	case engine.AssertEqInt:
		return []string{fmt.Sprintf("%s = %v, %s = %v", a.ActualExpr, a.Actual, a.ExpectedExpr, a.Expected)}
	case engine.AssertNeInt:
		return []string{fmt.Sprintf("both = %v", a.Actual)}
	case engine.AssertEqFloat, engine.AssertNeFloat:
		actual, _ := a.Actual.(float64)
		expected, _ := a.Expected.(float64)

		return []string{
			fmt.Sprintf("%s = %.10f, %s = %.10f", a.ActualExpr, actual, a.ExpectedExpr, expected),
			fmt.Sprintf("delta = %.10f", math.Abs(actual-expected)),
		}
	case engine.AssertEqStr, engine.AssertNeStr:
		actual, _ := a.Actual.(*string)
		expected, _ := a.Expected.(*string)

		out := []string{fmt.Sprintf("%s = %s, %s = %s", a.ActualExpr, engine.QuoteNullable(actual), a.ExpectedExpr, engine.QuoteNullable(expected))}
		if a.Kind == engine.AssertEqStr {
			out = append(out, stringDiff(actual, expected)...)
		}

		return out
	case engine.AssertFail, engine.AssertUnknown:
		return nil
	default:
		return nil
	}
}

// stringDiff returns a unified diff of two multi-line strings, or nothing for single-line values.
func stringDiff(actual, expected *string) []string {
	if actual == nil || expected == nil {
		return nil
	}

	if !strings.Contains(*actual, "\n") && !strings.Contains(*expected, "\n") {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(*expected),
		B:        difflib.SplitLines(*actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2, //nolint:mnd // lines of context
	})
	if err != nil || diff == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
}
