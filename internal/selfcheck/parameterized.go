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
	"strings"

	"github.com/kritic-dev/kritic"
)

var (
	primes  = []int{2, 3, 5, 7, 11, 13, 17}
	words   = []string{"kritic", "go", "schedule"}
	lengths = [4]int64{6, 2, 8, 0}
	ratios  = []float64{0.5, 0.25, 0.125}
)

func isPrime(n int) bool {
	if n < 2 { //nolint:mnd // smallest prime
		return false
	}

	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

func parameterized(rt *kritic.Runtime) {
	const suite = "parameterized"

	kritic.Test(rt, suite, "primes", func(s *kritic.State) {
		n := kritic.Param[int](s, "n")
		s.Assert(isPrime(n))
	}, kritic.Parameterized("n", primes))

	kritic.Test(rt, suite, "word_lengths", func(s *kritic.State) {
		word := kritic.Param[string](s, "word")
		length := kritic.Param[int64](s, "length")
		s.AssertEqInt(int64(len(word)), length)
	}, kritic.Parameterized("word", words), kritic.Parameterized("length", lengths))

	kritic.Test(rt, suite, "halving_fail", func(s *kritic.State) {
		ratio := kritic.Param[float64](s, "ratio")
		s.AssertEqFloat(ratio*2, 0.5)
	}, kritic.Parameterized("ratio", ratios))

	kritic.Test(rt, suite, "skip_short_words", func(s *kritic.State) {
		word := kritic.Param[string](s, "word")
		if len(word) < 3 { //nolint:mnd // shortest word worth checking
			s.Skipf("%q is too short", word)
			return
		}

		s.AssertEqStr(strings.ToLower(word), word)
	}, kritic.Parameterized("word", words))

	kritic.Test(rt, suite, "after_primes", func(s *kritic.State) {
		s.AssertEqInt(int64(len(primes)), 7)
	}, kritic.DependsOn(suite, "primes"))
}
