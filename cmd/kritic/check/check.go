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

// Package check provides the check subcommand for the kritic tool.
package check

import (
	"fmt"

	"github.com/alecthomas/kong"

	configtypes "github.com/kritic-dev/kritic/internal/config"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Cmd represents the check subcommand.
type Cmd struct {
	Config     *configtypes.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
}

// Run executes the check subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	if c.ConfigPath == "" {
		utils.OutputPrintf("No configuration file found, using defaults\n")
	} else {
		utils.OutputPrintf("Configuration file: %s\n\n", utils.DisplayPath(c.ConfigPath))
	}

	if c.Config == nil {
		c.Config = configtypes.Default()
	}

	if err := c.Config.Check(); err != nil {
		return fmt.Errorf("configuration check failed:\n%w", err)
	}

	utils.OutputPrintf("Configuration check successful\n")

	utils.OutputPrintf("\nRun:\n")
	utils.OutputPrintf("- color: %s\n", c.Config.Color)
	utils.OutputPrintf("- capture: %t\n", c.Config.Capture)
	utils.OutputPrintf("- timer: %t\n", c.Config.Timer)
	utils.OutputPrintf("- buffer-size: %d\n", c.Config.BufferSize)

	utils.OutputPrintf("\nLimits:\n")
	utils.OutputPrintf("- max-dependencies: %d\n", c.Config.Limits.MaxDependencies)
	utils.OutputPrintf("- max-parameters: %d\n", c.Config.Limits.MaxParameters)

	if c.Config.Report.Path != "" {
		utils.OutputPrintf("\nReport:\n")
		utils.OutputPrintf("- %s (%s)\n", c.Config.Report.Path, c.Config.Report.Format)
	}

	if c.Config.MetricsFile != "" {
		utils.OutputPrintf("\nMetrics:\n")
		utils.OutputPrintf("- %s\n", c.Config.MetricsFile)
	}

	return nil
}
