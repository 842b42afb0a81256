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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/utils"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a report format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// Marshal encodes result in the given format.
func Marshal(format string, result *engine.RunResult) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w %q, must be %s or %s", ErrUnknownFormat, format, FormatJSON, FormatYAML)
	}
}

// Write writes result to path, creating its parent directory when needed.
func Write(fs afero.Fs, path, format string, result *engine.RunResult) error {
	data, err := Marshal(format, result)
	if err != nil {
		return err
	}

	expanded, err := utils.ExpandTildeAbs(path)
	if err != nil {
		return fmt.Errorf("failed to expand report path %s: %w", path, err)
	}

	if err := utils.EnsureParentDir(fs, expanded); err != nil {
		return err
	}

	if err := afero.WriteFile(fs, expanded, data, 0o644); err != nil { //nolint:mnd // standard file permissions
		return fmt.Errorf("failed to write report %s: %w", expanded, err)
	}

	return nil
}
