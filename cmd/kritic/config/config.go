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

// Package config provides the config subcommand for the kritic tool.
package config

import (
	"github.com/alecthomas/kong"

	internalcfg "github.com/kritic-dev/kritic/internal/config"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Cmd represents the config subcommand.
type Cmd struct {
	Show   ShowCmd   `cmd:"" default:"1" help:"Print the effective configuration"`
	Schema SchemaCmd `cmd:""             help:"Print the JSON schema of the configuration file"`
}

// ShowCmd prints the effective configuration as YAML.
type ShowCmd struct {
	Config     *internalcfg.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
}

// Run executes the config show subcommand.
func (c *ShowCmd) Run(_ *kong.Context) error {
	cfg := c.Config
	if cfg == nil {
		cfg = internalcfg.Default()
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if c.ConfigPath == "" {
		utils.OutputPrintf("# defaults, no configuration file found\n")
	} else {
		utils.OutputPrintf("# %s\n", utils.DisplayPath(c.ConfigPath))
	}

	utils.OutputPrintf("%s", data)

	return nil
}

// SchemaCmd prints the JSON schema of the configuration file.
type SchemaCmd struct{}

// Run executes the config schema subcommand.
func (c *SchemaCmd) Run(_ *kong.Context) error {
	data, err := internalcfg.Schema()
	if err != nil {
		return err
	}

	utils.OutputPrintf("%s", data)

	return nil
}
