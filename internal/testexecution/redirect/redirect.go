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

// Package redirect captures what a test body writes to standard output.
//
// A Redirector owns one long-lived reader goroutine. Each Start/Stop cycle
// points file descriptor 1 at a fresh pipe, and Stop blocks until the reader
// has drained the pipe, so every captured line reaches the sink before Stop returns.
package redirect

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrRedirect is wrapped by every error returned while redirecting standard output.
var ErrRedirect = errors.New("output redirection failed")

// fdOps is the narrow OS interface used to swap standard output.
type fdOps interface {
	// redirect points standard output at w and returns a handle on the previous standard output.
	redirect(w *os.File) (*os.File, error)
	// restore points standard output back at original.
	restore(original *os.File) error
	// release frees the handle returned by redirect.
	release(original *os.File) error
}

type cycle struct {
	reader *os.File
	output io.Writer
}

type drained struct {
	lines int
	err   error
}

// Redirector captures standard output in cycles.
type Redirector struct {
	bufferSize int
	sink       Sink
	ops        fdOps

	start  chan cycle
	done   chan drained
	exited chan struct{}

	active   bool
	closed   bool
	reader   *os.File
	writer   *os.File
	original *os.File
}

// New returns a Redirector delivering captured lines to sink and starts its reader goroutine.
func New(bufferSize int, sink Sink) (*Redirector, error) {
	return newRedirector(bufferSize, sink, platformOps())
}

func newRedirector(bufferSize int, sink Sink, ops fdOps) (*Redirector, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: nil sink", ErrRedirect)
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	r := &Redirector{
		bufferSize: bufferSize,
		sink:       sink,
		ops:        ops,
		start:      make(chan cycle),
		done:       make(chan drained),
		exited:     make(chan struct{}),
	}

	go r.read()

	return r, nil
}

func (r *Redirector) read() {
	defer close(r.exited)

	for c := range r.start {
		lines, err := NewSplitter(r.bufferSize, c.output, r.sink).Drain(c.reader)
		r.done <- drained{lines: lines, err: err}
	}
}

// Start begins a capture cycle.
func (r *Redirector) Start() error {
	if r.closed {
		return fmt.Errorf("%w: redirector is closed", ErrRedirect)
	}

	if r.active {
		return fmt.Errorf("%w: capture already started", ErrRedirect)
	}

	_ = os.Stdout.Sync()

	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%w: create pipe: %w", ErrRedirect, err)
	}

	original, err := r.ops.redirect(pw)
	if err != nil {
		pr.Close() //nolint:errcheck // already failing
		pw.Close() //nolint:errcheck // already failing

		return err
	}

	r.reader, r.writer, r.original = pr, pw, original
	r.active = true
	r.start <- cycle{reader: pr, output: original}

	return nil
}

// Stop ends the capture cycle and returns once every captured line was delivered.
// It returns the number of lines and fragments delivered.
func (r *Redirector) Stop() (int, error) {
	if !r.active {
		return 0, nil
	}

	r.active = false

	var errs []error

	if err := r.ops.restore(r.original); err != nil {
		errs = append(errs, err)
	}

	if err := r.writer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("%w: close pipe: %w", ErrRedirect, err))
	}

	result := <-r.done
	if result.err != nil {
		errs = append(errs, fmt.Errorf("%w: read pipe: %w", ErrRedirect, result.err))
	}

	if err := r.ops.release(r.original); err != nil {
		errs = append(errs, err)
	}

	r.reader.Close() //nolint:errcheck // fully drained

	r.reader, r.writer, r.original = nil, nil, nil

	return result.lines, errors.Join(errs...)
}

// Active returns true during a capture cycle.
func (r *Redirector) Active() bool {
	return r.active
}

// Original returns the standard output in effect before the current cycle,
// or os.Stdout outside of a cycle.
func (r *Redirector) Original() io.Writer {
	if r.active && r.original != nil {
		return r.original
	}

	return os.Stdout
}

// Close stops a running cycle and terminates the reader goroutine.
func (r *Redirector) Close() error {
	if r.closed {
		return nil
	}

	_, err := r.Stop()

	r.closed = true
	close(r.start)
	<-r.exited

	return err
}
