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

// Package list provides the list subcommand for the kritic tool.
package list

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/kritic-dev/kritic"
	internalcfg "github.com/kritic-dev/kritic/internal/config"
	"github.com/kritic-dev/kritic/internal/printer"
	"github.com/kritic-dev/kritic/internal/report"
	"github.com/kritic-dev/kritic/internal/selfcheck"
	"github.com/kritic-dev/kritic/internal/testexecution/registry"
)

// Cmd represents the list subcommand.
type Cmd struct {
	Suites []string            `arg:"" help:"Suites to list, all when omitted" optional:""`
	Config *internalcfg.Config `kong:"-"`
}

// Run executes the list subcommand. A scheduling error is reported like in a run.
func (c *Cmd) Run(_ *kong.Context) error {
	cfg := c.Config
	if cfg == nil {
		cfg = internalcfg.Default()
	}

	rt := kritic.New(cfg.Options(), printer.Nop{})

	if err := selfcheck.Register(rt, c.Suites...); err != nil {
		return err
	}

	order, err := rt.Schedule()
	if err != nil {
		return registry.ReportError("schedule", "scheduling failed", err)
	}

	report.ScheduleTable(os.Stdout, rt.Tests(), order)

	return nil
}
