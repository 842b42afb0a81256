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
)

// DefaultBufferSize is the default capacity of the line buffer.
const DefaultBufferSize = 4096

// Line is a captured line, or a fragment of a line longer than the buffer.
// Text always ends with a newline unless a longer line continues in the next fragment.
type Line struct {
	Text   string
	Split  bool      // continuation of a line already partially emitted
	Output io.Writer // the original standard output
}

// Sink receives captured lines in order.
type Sink func(line Line)

// Splitter reassembles lines from a stream read in chunks of at most bufferSize bytes.
type Splitter struct {
	bufferSize int
	output     io.Writer
	sink       Sink

	line  []byte
	split bool
	lines int
}

// NewSplitter returns a Splitter emitting to sink. Lines carry output as their Output.
func NewSplitter(bufferSize int, output io.Writer, sink Sink) *Splitter {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Splitter{
		bufferSize: bufferSize,
		output:     output,
		sink:       sink,
		line:       make([]byte, 0, bufferSize),
	}
}

// Drain reads r until EOF and returns the number of lines and fragments emitted.
// A trailing partial line is emitted with a newline appended.
func (s *Splitter) Drain(r io.Reader) (int, error) {
	chunk := make([]byte, s.bufferSize)

	for {
		n, err := r.Read(chunk)
		s.Write(chunk[:n])

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			s.Flush()
			return s.lines, err
		}
	}

	s.Flush()

	return s.lines, nil
}

// Write splits data into lines, holding back an incomplete last line.
func (s *Splitter) Write(data []byte) {
	for len(data) > 0 {
		var segment []byte

		i := bytes.IndexByte(data, '\n')
		complete := i >= 0

		if complete {
			segment, data = data[:i+1], data[i+1:]
		} else {
			segment, data = data, nil
		}

		for len(s.line)+len(segment) > s.bufferSize {
			room := s.bufferSize - len(s.line)
			s.line = append(s.line, segment[:room]...)
			segment = segment[room:]

			s.emit()
			s.split = true
		}

		s.line = append(s.line, segment...)

		if complete {
			s.emit()
			s.split = false
		}
	}
}

// Flush emits a pending partial line, terminated with a newline.
func (s *Splitter) Flush() {
	if len(s.line) == 0 {
		return
	}

	s.line = append(s.line, '\n')
	s.emit()
	s.split = false
}

func (s *Splitter) emit() {
	s.lines++

	if s.sink != nil {
		s.sink(Line{Text: string(s.line), Split: s.split, Output: s.output})
	}

	s.line = s.line[:0]
}
