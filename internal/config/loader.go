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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	testexecutionUtils "github.com/kritic-dev/kritic/internal/testexecution/utils"
	"github.com/kritic-dev/kritic/internal/utils"
)

// DefaultPath is where the configuration is looked up when no path is given.
const DefaultPath = "~/.config/kritic.yaml"

// Default values.
const (
	DefaultColor           = "auto"
	DefaultBufferSize      = 4096
	MinBufferSize          = 64
	DefaultMaxDependencies = 4
	DefaultMaxParameters   = 4
	DefaultReportFormat    = "json"
)

// Config represents the main configuration structure.
type Config struct {
	Color       string `json:"color,omitempty" jsonschema:"enum=auto,enum=always,enum=never,default=auto"`
	Verbose     bool   `json:"verbose,omitempty" jsonschema:"description=Show passing assertions"`
	Debug       bool   `json:"debug,omitempty" jsonschema:"description=Print the schedule and every status transition"`
	Capture     bool   `json:"capture" jsonschema:"default=true,description=Capture the standard output of test bodies"`
	Timer       bool   `json:"timer" jsonschema:"default=true,description=Measure test durations"`
	BufferSize  int    `json:"buffer-size,omitempty" jsonschema:"minimum=64,default=4096,description=Size of the captured line buffer in bytes"`
	Limits      Limits `json:"limits,omitempty"`
	Report      Report `json:"report,omitempty"`
	MetricsFile string `json:"metrics-file,omitempty" jsonschema:"description=Write Prometheus metrics of the run to this file"`
}

// Limits holds the per-test attribute capacities.
type Limits struct {
	MaxDependencies int `json:"max-dependencies,omitempty" jsonschema:"minimum=1,default=4"`
	MaxParameters   int `json:"max-parameters,omitempty" jsonschema:"minimum=1,default=4"`
}

// Report configures the structured run report.
type Report struct {
	Path   string `json:"path,omitempty" jsonschema:"description=Write the run report to this file"`
	Format string `json:"format,omitempty" jsonschema:"enum=json,enum=yaml,default=json"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Color:      DefaultColor,
		Capture:    true,
		Timer:      true,
		BufferSize: DefaultBufferSize,
		Limits: Limits{
			MaxDependencies: DefaultMaxDependencies,
			MaxParameters:   DefaultMaxParameters,
		},
		Report: Report{Format: DefaultReportFormat},
	}
}

// Load loads a kritic configuration file. Values missing from the file keep their defaults.
// It returns os.ErrNotExist when the file does not exist.
func Load(fs afero.Fs, configPath string) (*Config, error) {
	if ext := filepath.Ext(configPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml extension: %s", configPath)
	}

	expandedPath, err := utils.ExpandTildeAbs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := afero.ReadFile(fs, expandedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := utils.ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", utils.DisplayPath(expandedPath), err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", utils.DisplayPath(expandedPath), err)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads configPath, falling back to Default when the file does not exist.
func LoadOrDefault(fs afero.Fs, configPath string) (*Config, error) {
	cfg, err := Load(fs, configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// applyDefaults replaces zero values that were explicitly written as such.
func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = DefaultColor
	}

	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}

	if c.Limits.MaxDependencies == 0 {
		c.Limits.MaxDependencies = DefaultMaxDependencies
	}

	if c.Limits.MaxParameters == 0 {
		c.Limits.MaxParameters = DefaultMaxParameters
	}

	if c.Report.Format == "" {
		c.Report.Format = DefaultReportFormat
	}
}

// Options converts the configuration into run options.
func (c *Config) Options() *testexecutionUtils.Options {
	return &testexecutionUtils.Options{
		Verbose:         c.Verbose,
		Debug:           c.Debug,
		Color:           c.Color,
		Capture:         c.Capture,
		Timer:           c.Timer,
		BufferSize:      c.BufferSize,
		MaxDependencies: c.Limits.MaxDependencies,
		MaxParameters:   c.Limits.MaxParameters,
		ReportPath:      c.Report.Path,
		ReportFormat:    c.Report.Format,
		MetricsFile:     c.MetricsFile,
	}
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}
