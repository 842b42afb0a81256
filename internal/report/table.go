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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kritic-dev/kritic/internal/testexecution/registry"
)

// ScheduleTable renders tests in execution order. order holds arena indices as returned by the scheduler.
func ScheduleTable(w io.Writer, tests []*registry.Test, order []int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Execution order (%d)", len(order)))

	t.AppendHeader(table.Row{"#", "Test", "Location", "Depends on", "Iterations"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Depends on", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft}, //nolint:mnd // column width
		{Name: "Iterations", Align: text.AlignRight},
	})

	for position, index := range order {
		test := tests[index]

		deps := make([]string, 0, len(test.Dependencies))
		for _, dep := range test.Dependencies {
			deps = append(deps, dep.Key.String())
		}

		t.AppendRow(table.Row{
			position + 1,
			test.Key.String(),
			test.Location.String(),
			strings.Join(deps, ", "),
			test.Iterations(),
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
