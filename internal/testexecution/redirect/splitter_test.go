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

package redirect

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing
)

type collected struct {
	lines []Line
}

func (c *collected) sink(line Line) {
	c.lines = append(c.lines, line)
}

func (c *collected) texts() []string {
	out := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.Text)
	}

	return out
}

func (c *collected) splits() []bool {
	out := make([]bool, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.Split)
	}

	return out
}

func TestSplitter_Drain(t *testing.T) {
	const size = 16

	tests := []struct {
		name       string
		input      string
		wantTexts  []string
		wantSplits []bool
	}{
		{
			name: "empty",
		},
		{
			name:       "complete lines",
			input:      "one\ntwo\n",
			wantTexts:  []string{"one\n", "two\n"},
			wantSplits: []bool{false, false},
		},
		{
			name:       "trailing partial line gets a newline",
			input:      "one\ntwo",
			wantTexts:  []string{"one\n", "two\n"},
			wantSplits: []bool{false, false},
		},
		{
			name:       "empty lines are kept",
			input:      "\n\nx\n",
			wantTexts:  []string{"\n", "\n", "x\n"},
			wantSplits: []bool{false, false, false},
		},
		{
			name:       "buffer size minus one without newline",
			input:      strings.Repeat("a", size-1),
			wantTexts:  []string{strings.Repeat("a", size-1) + "\n"},
			wantSplits: []bool{false},
		},
		{
			name:       "line exactly filling the buffer",
			input:      strings.Repeat("b", size-1) + "\n",
			wantTexts:  []string{strings.Repeat("b", size-1) + "\n"},
			wantSplits: []bool{false},
		},
		{
			name:       "twice the buffer size without newline",
			input:      strings.Repeat("c", 2*size),
			wantTexts:  []string{strings.Repeat("c", size), strings.Repeat("c", size) + "\n"},
			wantSplits: []bool{false, true},
		},
		{
			name:  "split flag resets after the newline",
			input: strings.Repeat("d", size+4) + "\nnext\n",
			wantTexts: []string{
				strings.Repeat("d", size),
				"dddd\n",
				"next\n",
			},
			wantSplits: []bool{false, true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, reader := range map[string]io.Reader{
				"chunked":  strings.NewReader(tt.input),
				"one byte": iotest.OneByteReader(strings.NewReader(tt.input)),
				"half":     iotest.HalfReader(strings.NewReader(tt.input)),
			} {
				var c collected

				lines, err := NewSplitter(size, io.Discard, c.sink).Drain(reader)

				require.NoError(t, err)
				assert.Equal(t, len(tt.wantTexts), lines)
				assert.Equal(t, tt.wantTexts, nilIfEmpty(c.texts()))
				assert.Equal(t, tt.wantSplits, nilIfEmptyBool(c.splits()))
				assert.Equal(t, tt.input+trailingNewline(tt.input), strings.Join(c.texts(), ""), "no byte is dropped")
			}
		})
	}
}

func TestSplitter_ReadError(t *testing.T) {
	var c collected

	reader := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("boom")))

	lines, err := NewSplitter(8, io.Discard, c.sink).Drain(reader)

	require.EqualError(t, err, "boom")
	assert.Equal(t, 1, lines)
	assert.Equal(t, []string{"partial\n"}, c.texts())
}

func TestSplitter_OutputAndDefaults(t *testing.T) {
	var (
		c   collected
		out bytes.Buffer
	)

	s := NewSplitter(0, &out, c.sink)
	assert.Equal(t, DefaultBufferSize, s.bufferSize)

	_, err := s.Drain(strings.NewReader(strings.Repeat("x", DefaultBufferSize+1)))
	require.NoError(t, err)
	require.Len(t, c.lines, 2)
	assert.Same(t, &out, c.lines[0].Output)
	assert.Len(t, c.lines[0].Text, DefaultBufferSize)
	assert.True(t, c.lines[1].Split)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}

func nilIfEmptyBool(s []bool) []bool {
	if len(s) == 0 {
		return nil
	}

	return s
}

func trailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return ""
	}

	return "\n"
}
