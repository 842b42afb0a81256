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

// Package run provides the run subcommand for the kritic tool.
package run

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/kritic-dev/kritic"
	internalcfg "github.com/kritic-dev/kritic/internal/config"
	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/metrics"
	"github.com/kritic-dev/kritic/internal/printer"
	"github.com/kritic-dev/kritic/internal/report"
	"github.com/kritic-dev/kritic/internal/selfcheck"
	testexecutionUtils "github.com/kritic-dev/kritic/internal/testexecution/utils"
	"github.com/kritic-dev/kritic/internal/utils"
	"github.com/kritic-dev/kritic/internal/version"
)

// ExitError carries a non-zero exit code of a run.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("run finished with exit code %d", e.Code)
}

// Cmd represents the run subcommand.
type Cmd struct {
	Suites       []string            `arg:"" help:"Suites to run, all when omitted" optional:""`
	Verbose      bool                `help:"Show passing assertions" short:"v"`
	Debug        bool                `help:"Print the schedule and every status transition"`
	NoCapture    bool                `help:"Let test bodies write to standard output directly" name:"no-capture"`
	NoTimer      bool                `help:"Do not measure durations" name:"no-timer"`
	Color        string              `help:"Colored output: auto, always or never"`
	BufferSize   int                 `help:"Size of the captured line buffer in bytes" name:"buffer-size"`
	Report       string              `help:"Write a run report to this file" type:"path"`
	ReportFormat string              `help:"Report format: json or yaml" name:"report-format"`
	MetricsFile  string              `help:"Write Prometheus metrics of the run to this file" name:"metrics-file" type:"path"`
	Config       *internalcfg.Config `kong:"-"`
	fs           afero.Fs
}

// AfterApply implements kong.AfterApply.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the run subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	options := c.newOptions(c.Config)
	if err := checkOptions(options); err != nil {
		return err
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	def := printer.New(os.Stdout, os.Stderr, options.Verbose)
	def.Version = version.GetVersion()

	printers := []engine.Printer{def}

	var collector *report.Collector
	if options.ReportPath != "" {
		collector = report.NewCollector()
		printers = append(printers, collector)
	}

	var recorder *metrics.Recorder
	if options.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		printers = append(printers, recorder)
	}

	rt := kritic.New(options, printer.NewMulti(printers...))

	if err := selfcheck.Register(rt, c.Suites...); err != nil {
		return err
	}

	code := rt.Run()

	if collector != nil {
		if err := report.Write(c.fs, options.ReportPath, options.ReportFormat, collector.Result()); err != nil {
			return err
		}

		if options.Debug {
			utils.DebugPrintf("Report written to %s\n", utils.DisplayPath(options.ReportPath))
		}
	}

	if recorder != nil {
		path, err := utils.ExpandTildeAbs(options.MetricsFile)
		if err != nil {
			return fmt.Errorf("failed to expand metrics path %s: %w", options.MetricsFile, err)
		}

		if err := utils.EnsureParentDir(afero.NewOsFs(), path); err != nil {
			return err
		}

		if err := recorder.WriteTextfile(path); err != nil {
			return err
		}
	}

	if code != engine.ExitOK {
		return &ExitError{Code: code}
	}

	return nil
}

// checkOptions validates the values the flags may have overridden.
func checkOptions(options *testexecutionUtils.Options) error {
	if options.BufferSize < internalcfg.MinBufferSize {
		return fmt.Errorf("buffer size must be at least %d, got %d", internalcfg.MinBufferSize, options.BufferSize)
	}

	if err := printer.SetColor(options.Color); err != nil {
		return err
	}

	if _, err := report.Marshal(options.ReportFormat, &engine.RunResult{}); err != nil {
		return err
	}

	return nil
}

// newOptions creates a testexecutionUtils.Options struct from the config, overridden by the flags that were set.
func (c *Cmd) newOptions(cfg *internalcfg.Config) *testexecutionUtils.Options {
	if cfg == nil {
		cfg = internalcfg.Default()
	}

	options := cfg.Options()

	options.Verbose = options.Verbose || c.Verbose
	options.Debug = options.Debug || c.Debug

	if c.NoCapture {
		options.Capture = false
	}

	if c.NoTimer {
		options.Timer = false
	}

	if c.Color != "" {
		options.Color = c.Color
	}

	if c.BufferSize != 0 {
		options.BufferSize = c.BufferSize
	}

	if c.Report != "" {
		options.ReportPath = c.Report
	}

	if c.ReportFormat != "" {
		options.ReportFormat = c.ReportFormat
	}

	if c.MetricsFile != "" {
		options.MetricsFile = c.MetricsFile
	}

	return options
}
