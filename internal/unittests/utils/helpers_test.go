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
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing

	"github.com/kritic-dev/kritic/internal/api"
	"github.com/kritic-dev/kritic/internal/engine"
)

func TestCapture(t *testing.T) {
	t.Run("stdout and stderr are separated", func(t *testing.T) {
		out := CaptureOutput(func() {
			fmt.Fprint(os.Stdout, "to stdout")
			fmt.Fprint(os.Stderr, "to stderr")
		})

		assert.Equal(t, "to stdout", out.Stdout)
		assert.Equal(t, "to stderr", out.Stderr)
	})

	t.Run("large output does not block", func(t *testing.T) {
		big := strings.Repeat("x", 1<<18)
		out := CaptureStdout(func() {
			fmt.Fprint(os.Stdout, big)
		})

		assert.Len(t, out, len(big))
	})

	t.Run("originals are restored after a panic", func(t *testing.T) {
		oldOut, oldErr := os.Stdout, os.Stderr

		out := CaptureOutput(func() {
			fmt.Fprint(os.Stdout, "before")
			panic("boom")
		})

		assert.Equal(t, "before", out.Stdout)
		assert.Same(t, oldOut, os.Stdout)
		assert.Same(t, oldErr, os.Stderr)
	})
}

func TestFixtures(t *testing.T) {
	fs := afero.NewMemMapFs()

	path := WriteFixture(t, fs, "/a/b/c.yaml", "k: v\n")

	assert.Equal(t, "/a/b/c.yaml", path)
	assert.Equal(t, "k: v\n", ReadFixture(t, fs, path))
}

func TestRecordingPrinter(t *testing.T) {
	var p RecordingPrinter

	var _ engine.Printer = &p

	key := api.Key{Suite: "s", Name: "t"}

	p.Init(engine.RunInfo{Total: 1})
	p.PreTest(engine.TestInfo{Key: key})
	p.Stdout(engine.CapturedLine{Test: key, Text: "hi\n"})
	p.PostTest(engine.TestInfo{Key: key, Status: engine.StatusPassed})
	p.Summary(engine.RunInfo{Total: 1, Passed: 1})

	assert.Equal(t, []string{"init 1", "pre s.t", "stdout s.t hi\n", "post s.t PASS", "summary"}, p.Events)
	assert.Equal(t, []string{"s.t"}, p.Ran())
	assert.Equal(t, 1, p.Run.Passed)
}
