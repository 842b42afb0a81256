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
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sync"

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
)

// assertionMethods are the State methods whose arguments are shown in diagnostics.
var assertionMethods = map[string]bool{ //nolint:gochecknoglobals // lookup table
	"Assert":         true,
	"AssertNot":      true,
	"AssertEqInt":    true,
	"AssertNeInt":    true,
	"AssertEqFloat":  true,
	"AssertNeFloat":  true,
	"AssertEqStr":    true,
	"AssertNeStr":    true,
	"AssertEqStrPtr": true,
	"AssertNeStrPtr": true,
}

// call holds the source text of the arguments of one assertion call.
type call struct {
	args      []string
	ambiguous bool
}

// sourceCache maps assertion call sites to the source text of their arguments.
// Files are parsed once; unreadable files and lines holding several assertions
// fall back to generic names.
type sourceCache struct {
	mu    sync.Mutex
	files map[string]map[int]call
}

func newSourceCache() *sourceCache {
	return &sourceCache{files: make(map[string]map[int]call)}
}

func (c *sourceCache) expressions(loc api.Location, kind engine.AssertionKind) (string, string) {
	actual, expected := "actual", "expected"

	switch kind { //nolint:exhaustive // only the single-value kinds differ
	case engine.AssertTrue, engine.AssertNot:
		actual, expected = "value", ""
	case engine.AssertFail:
		return "", ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	calls, ok := c.files[loc.File]
	if !ok {
		calls = parseCalls(loc.File)
		c.files[loc.File] = calls
	}

	found, ok := calls[loc.Line]
	if !ok || found.ambiguous {
		return actual, expected
	}

	if len(found.args) > 0 {
		actual = found.args[0]
	}

	if len(found.args) > 1 && expected != "" {
		expected = found.args[1]
	}

	return actual, expected
}

func parseCalls(file string) map[int]call {
	calls := make(map[int]call)

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if err != nil {
		return calls
	}

	ast.Inspect(f, func(n ast.Node) bool {
		expr, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		sel, ok := expr.Fun.(*ast.SelectorExpr)
		if !ok || !assertionMethods[sel.Sel.Name] {
			return true
		}

		args := make([]string, 0, len(expr.Args))
		for _, arg := range expr.Args {
			args = append(args, types.ExprString(arg))
		}

		// The reported line is the one of the selector or of the closing parenthesis.
		lines := []int{fset.Position(sel.Sel.Pos()).Line, fset.Position(expr.Rparen).Line}
		for i, line := range lines {
			if i > 0 && line == lines[0] {
				continue
			}

			if _, seen := calls[line]; seen {
				calls[line] = call{ambiguous: true}
				continue
			}

			calls[line] = call{args: args}
		}

		return true
	})

	return calls
}
