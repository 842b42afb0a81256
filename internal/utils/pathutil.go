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

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ExpandTilde replaces a leading "~/" with the user's home directory.
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[2:]), nil
}

// ExpandAbs returns the absolute form of path without expanding a tilde.
func ExpandAbs(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}

	return filepath.Abs(path)
}

// ExpandTildeAbs expands a tilde and then makes the path absolute.
func ExpandTildeAbs(path string) (string, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return "", err
	}

	return ExpandAbs(expanded)
}

// Exists returns true if path exists on fs.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// VerifyPathExists returns the stat error for path, or nil when it exists.
func VerifyPathExists(fs afero.Fs, path string) error {
	_, err := fs.Stat(path)
	return err
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := fs.MkdirAll(dir, 0o755); err != nil { //nolint:mnd // standard directory permissions
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// DisplayPath returns path relative to the working directory when it lies below it.
func DisplayPath(path string) string {
	pwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(pwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

// ValidateYAML checks that data is a YAML mapping or empty.
func ValidateYAML(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	return nil
}
