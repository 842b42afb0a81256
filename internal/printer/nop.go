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

import "github.com/kritic-dev/kritic/internal/engine"

// Nop ignores every event.
type Nop struct{}

func (Nop) Init(engine.RunInfo) {}
func (Nop) PreTest(engine.TestInfo) {}
func (Nop) PostTest(engine.TestInfo) {}
func (Nop) Summary(engine.RunInfo) {}
func (Nop) Assert(engine.AssertionEvent) {}
func (Nop) Stdout(engine.CapturedLine) {}
func (Nop) Skip(engine.SkipEvent) {}
func (Nop) DepFailed(engine.TestInfo, engine.TestInfo) {}
