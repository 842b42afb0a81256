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

package check

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing

	configtypes "github.com/kritic-dev/kritic/internal/config"
	unittestsUtils "github.com/kritic-dev/kritic/internal/unittests/utils"
)

func TestCmd_Run(t *testing.T) {
	withReport := configtypes.Default()
	withReport.Report.Path = "/tmp/report.json"
	withReport.MetricsFile = "/tmp/kritic.prom"

	invalid := configtypes.Default()
	invalid.Color = "rainbow"

	tests := []struct {
		name           string
		cmd            *Cmd
		wantOutput     []string
		wantErrContain string
	}{
		{
			name:       "defaults without a file",
			cmd:        &Cmd{},
			wantOutput: []string{"No configuration file found", "Configuration check successful", "- buffer-size: 4096"},
		},
		{
			name: "config file with report and metrics",
			cmd:  &Cmd{Config: withReport, ConfigPath: "/etc/kritic.yaml"},
			wantOutput: []string{
				"Configuration file: /etc/kritic.yaml",
				"Report:",
				"- /tmp/report.json (json)",
				"Metrics:",
			},
		},
		{
			name:           "invalid config",
			cmd:            &Cmd{Config: invalid, ConfigPath: "/etc/kritic.yaml"},
			wantOutput:     []string{"Configuration file:"},
			wantErrContain: "color: must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			output := unittestsUtils.CaptureStdout(func() {
				err = tt.cmd.Run(&kong.Context{})
			})

			if tt.wantErrContain != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.wantErrContain)
				}
			} else {
				assert.NoError(t, err)
			}

			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}
