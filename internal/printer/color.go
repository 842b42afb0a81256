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

package printer

import (
	"fmt"

	"github.com/gonvenience/bunt"
)

// Color modes accepted by SetColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SetColor configures colored output for the whole process.
func SetColor(mode string) error {
	switch mode {
	case ColorAuto, "":
		bunt.SetColorSettings(bunt.AUTO, bunt.AUTO)
	case ColorAlways:
		bunt.SetColorSettings(bunt.ON, bunt.OFF)
	case ColorNever:
		bunt.SetColorSettings(bunt.OFF, bunt.OFF)
	default:
		return fmt.Errorf("invalid color mode %q, must be one of %s, %s or %s", mode, ColorAuto, ColorAlways, ColorNever)
	}

	return nil
}

// Labels are rendered on every use so that SetColor applies to them.
func labelExec() string { return bunt.Sprintf("[ *Cyan{EXEC}* ]") }
func labelPass() string { return bunt.Sprintf("[ *Green{PASS}* ]") }
func labelFail() string { return bunt.Sprintf("[ *Red{FAIL}* ]") }
func labelInfo() string { return bunt.Sprintf("[ Blue{INFO} ]") }
func labelSkip() string { return bunt.Sprintf("[ Yellow{SKIP} ]") }

const labelBlank = "[      ]"
