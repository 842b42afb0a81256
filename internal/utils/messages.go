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

// Package utils provides the message helpers and path utilities shared by kritic's packages.
package utils

import (
	"fmt"
	"os"
)

// Message prefixes.
const (
	DebugPrefix   = "DEBUG: "
	WarningPrefix = "WARNING: "
	ErrorPrefix   = "ERROR: "
)

// DebugPrintf prints a debug message to stderr. Callers check their debug option first.
func DebugPrintf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, DebugPrefix+format, args...) //nolint:errcheck // output function, error handling not practical
}

// WarningPrintf prints a non-fatal diagnostic to stderr.
func WarningPrintf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, WarningPrefix+format, args...) //nolint:errcheck // output function, error handling not practical
}

// ErrorPrintf prints an error diagnostic to stderr.
func ErrorPrintf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ErrorPrefix+format, args...) //nolint:errcheck // output function, error handling not practical
}

// OutputPrintf prints regular output to stdout.
func OutputPrintf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...) //nolint:errcheck // output function, error handling not practical
}
