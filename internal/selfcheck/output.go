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

package selfcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/kritic-dev/kritic"
)

// output declares the "io" suite, which writes to standard output in every way the capture has to handle.
func output(rt *kritic.Runtime) {
	const suite = "io"

	kritic.Test(rt, suite, "stdout_redirect", func(*kritic.State) {
		fmt.Println("Redirection of stdout works!")
	})
	kritic.Test(rt, suite, "stdout_newline", func(*kritic.State) {
		fmt.Print("This line should end with a newline")
	})
	kritic.Test(rt, suite, "stdout_multiline", func(*kritic.State) {
		fmt.Println("Hello")
		fmt.Print("World")
	})
	kritic.Test(rt, suite, "stdout_monoline", func(*kritic.State) {
		fmt.Print("Hello ")
		fmt.Print("World")
	})
	kritic.Test(rt, suite, "stdout_space_only", func(*kritic.State) {
		fmt.Print(" \t \n")
	})
	kritic.Test(rt, suite, "stdout_flush", func(*kritic.State) {
		fmt.Print("This will be flushed... ")
		_ = os.Stdout.Sync()
		fmt.Print("and this follows.")
	})
	kritic.Test(rt, suite, "stdout_exact_buffer", func(*kritic.State) {
		fmt.Print(strings.Repeat("A", kritic.DefaultBufferSize-1))
	})
	kritic.Test(rt, suite, "stdout_long_line", func(*kritic.State) {
		var b strings.Builder
		for i := 0; i < 2*kritic.DefaultBufferSize-1; i++ {
			b.WriteByte(byte('A' + i%26))
		}

		fmt.Print(b.String())
	})
	kritic.Test(rt, suite, "stdout_mixed_lines", func(*kritic.State) {
		fmt.Println("Line 1")
		fmt.Print("Line 2 without newline")
		fmt.Print("\nLine 3\twith tab and \x1b[36mcyan ANSI escape\x1b[0m\n")
	})
	kritic.Test(rt, suite, "stdout_char_by_char", func(*kritic.State) {
		for _, c := range []byte("Char-by-char\n") {
			_, _ = os.Stdout.Write([]byte{c})
		}
	})
	kritic.Test(rt, suite, "stdout_then_assert", func(s *kritic.State) {
		fmt.Println("before the assertion")
		s.AssertEqInt(int64(len("four")), 4)
		fmt.Println("after the assertion")
	})
}
