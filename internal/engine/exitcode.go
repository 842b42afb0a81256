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

package engine

// Exit codes returned by a run. Codes above ExitTestsFailed signal a defect in
// the declarations or in the framework rather than a failing test.
const (
	ExitOK               = 0
	ExitTestsFailed      = 1
	ExitDependencyNotRun = 2
	ExitUnknownStatus    = 3
	ExitSchedulingError  = 4
	ExitDeclarationError = 5
	ExitRedirectError    = 6
)
