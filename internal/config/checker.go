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

// Package config loads and checks the configuration file of the kritic tool.
package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validColors        = []string{"auto", "always", "never"}
	validReportFormats = []string{"json", "yaml"}
)

// Check validates every value of the configuration and reports all problems at once.
func (c *Config) Check() error {
	var errs []string

	if !slices.Contains(validColors, c.Color) {
		errs = append(errs, fmt.Sprintf("color: must be one of %s, got %q", strings.Join(validColors, ", "), c.Color))
	}

	if c.BufferSize < MinBufferSize {
		errs = append(errs, fmt.Sprintf("buffer-size: must be at least %d, got %d", MinBufferSize, c.BufferSize))
	}

	if c.Limits.MaxDependencies < 1 {
		errs = append(errs, fmt.Sprintf("limits.max-dependencies: must be positive, got %d", c.Limits.MaxDependencies))
	}

	if c.Limits.MaxParameters < 1 {
		errs = append(errs, fmt.Sprintf("limits.max-parameters: must be positive, got %d", c.Limits.MaxParameters))
	}

	if !slices.Contains(validReportFormats, c.Report.Format) {
		errs = append(errs, fmt.Sprintf("report.format: must be one of %s, got %q", strings.Join(validReportFormats, ", "), c.Report.Format))
	}

	if c.Report.Path != "" && strings.TrimSpace(c.Report.Path) != c.Report.Path {
		errs = append(errs, "report.path: must not have leading or trailing whitespace")
	}

	if c.MetricsFile != "" && strings.TrimSpace(c.MetricsFile) != c.MetricsFile {
		errs = append(errs, "metrics-file: must not have leading or trailing whitespace")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
