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

//go:build !unix

package redirect

import "os"

// writerOps swaps the os.Stdout variable. Writes made through the raw
// descriptor by foreign code are not captured on these platforms.
type writerOps struct{}

func platformOps() fdOps {
	return writerOps{}
}

func (writerOps) redirect(w *os.File) (*os.File, error) {
	original := os.Stdout
	os.Stdout = w

	return original, nil
}

func (writerOps) restore(original *os.File) error {
	os.Stdout = original
	return nil
}

func (writerOps) release(*os.File) error {
	return nil
}
