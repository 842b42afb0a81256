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

//go:build unix

package redirect

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const stdoutFd = 1

type descriptorOps struct{}

func platformOps() fdOps {
	return descriptorOps{}
}

func (descriptorOps) redirect(w *os.File) (*os.File, error) {
	saved, err := unix.Dup(stdoutFd)
	if err != nil {
		return nil, fmt.Errorf("%w: duplicate stdout: %w", ErrRedirect, err)
	}

	// Fd puts the write end in blocking mode, which fd 1 inherits.
	if err := dupTo(int(w.Fd()), stdoutFd); err != nil {
		unix.Close(saved) //nolint:errcheck // already failing

		return nil, fmt.Errorf("%w: redirect stdout: %w", ErrRedirect, err)
	}

	return os.NewFile(uintptr(saved), "/dev/stdout"), nil
}

func (descriptorOps) restore(original *os.File) error {
	if err := dupTo(int(original.Fd()), stdoutFd); err != nil {
		return fmt.Errorf("%w: restore stdout: %w", ErrRedirect, err)
	}

	return nil
}

func (descriptorOps) release(original *os.File) error {
	if err := original.Close(); err != nil {
		return fmt.Errorf("%w: close saved stdout: %w", ErrRedirect, err)
	}

	return nil
}
