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
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing

	internalcfg "github.com/kritic-dev/kritic/internal/config"
	unittestsUtils "github.com/kritic-dev/kritic/internal/unittests/utils"
)

func TestShowCmd_Run(t *testing.T) {
	cfg := internalcfg.Default()
	cfg.Verbose = true
	cfg.Report.Path = "/tmp/run.json"

	tests := []struct {
		name       string
		cmd        *ShowCmd
		wantOutput []string
	}{
		{
			name:       "defaults",
			cmd:        &ShowCmd{},
			wantOutput: []string{"# defaults, no configuration file found", "buffer-size: 4096", "capture: true"},
		},
		{
			name:       "loaded file",
			cmd:        &ShowCmd{Config: cfg, ConfigPath: "/etc/kritic.yaml"},
			wantOutput: []string{"# /etc/kritic.yaml", "verbose: true", "path: /tmp/run.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			output := unittestsUtils.CaptureStdout(func() {
				err = tt.cmd.Run(&kong.Context{})
			})

			require.NoError(t, err)

			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestSchemaCmd_Run(t *testing.T) {
	var err error

	output := unittestsUtils.CaptureStdout(func() {
		err = (&SchemaCmd{}).Run(&kong.Context{})
	})

	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.NewDecoder(strings.NewReader(output)).Decode(&schema))
	assert.Equal(t, "kritic configuration", schema["title"])
}
