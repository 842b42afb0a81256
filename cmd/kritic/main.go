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

// Package main is the main package for the kritic tool.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	checkCmd "github.com/kritic-dev/kritic/cmd/kritic/check"
	configCmd "github.com/kritic-dev/kritic/cmd/kritic/config"
	"github.com/kritic-dev/kritic/cmd/kritic/list"
	"github.com/kritic-dev/kritic/cmd/kritic/run"
	"github.com/kritic-dev/kritic/cmd/kritic/version"
	internalConfig "github.com/kritic-dev/kritic/internal/config"
)

// CLI represents the command-line interface.
type CLI struct {
	ConfigFile string        `default:"~/.config/kritic.yaml" help:"Path to kritic config file"          short:"c" type:"path"`
	Run        run.Cmd       `cmd:""                          help:"Run the built-in test suites"`
	List       list.Cmd      `cmd:""                          help:"Print the execution order of the built-in test suites"`
	Check      checkCmd.Cmd  `cmd:""                          help:"Check the configuration"`
	Config     configCmd.Cmd `cmd:""                          help:"Manage kritic configuration"`
	Version    version.Cmd   `cmd:""                          help:"Print the version of kritic"`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("kritic"),
		kong.Description("A unit-test framework runtime with dependency-ordered execution and output capture."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary: true,
		}),
	)

	configPath := cli.ConfigFile
	fs := afero.NewOsFs()

	cfg, err := internalConfig.Load(fs, configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		configPath = ""
		cfg = internalConfig.Default()
	}

	// Set config in the command structs
	cli.Run.Config = cfg
	cli.List.Config = cfg
	cli.Check.Config = cfg
	cli.Check.ConfigPath = configPath
	cli.Config.Show.Config = cfg
	cli.Config.Show.ConfigPath = configPath

	// Run the selected command
	err = ctx.Run()

	var exit *run.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}
