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
	"io"
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
	testutils "github.com/kritic-dev/kritic/internal/unittests/utils"
)

func TestMulti(t *testing.T) {
	first := &testutils.RecordingPrinter{}
	second := &testutils.RecordingPrinter{}

	m := NewMulti(first, nil, Nop{}, second)
	assert.Len(t, m, 3)

	key := api.Key{Suite: "s", Name: "t"}
	info := engine.TestInfo{Key: key, Status: engine.StatusPassed}

	m.Init(engine.RunInfo{Total: 1})
	m.PreTest(info)
	m.Assert(engine.AssertionEvent{Test: key, Passed: true})
	m.Stdout(engine.CapturedLine{Test: key, Text: "x\n", Output: io.Discard})
	m.Skip(engine.SkipEvent{Test: key, Reason: "r", Output: io.Discard})
	m.DepFailed(info, engine.TestInfo{Key: api.Key{Suite: "s", Name: "d"}})
	m.PostTest(info)
	m.Summary(engine.RunInfo{Total: 1, Passed: 1})

	assert.Equal(t, first.Events, second.Events)
	assert.Len(t, first.Events, 8)
	assert.Equal(t, "init 1", first.Events[0])
	assert.Equal(t, "summary", first.Events[7])
}
