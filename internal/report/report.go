// Copyright 2026 The checkstyle-go Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package report collects and renders check diagnostics.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Diagnostic is one reported violation. Line is 1-based and Column is the
// 1-based rendering column.
type Diagnostic struct {
	File    string
	Line    int
	Column  int
	Key     string
	Message string
	Check   string
}

// String renders the diagnostic in the audit console format.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[ERROR] %s:%d:%d: %s [%s]", d.File, d.Line, d.Column, d.Message, d.Check)
}

// Sort orders diagnostics by file, then line, then column.
func Sort(diagnostics []Diagnostic) {
	slices.SortFunc(diagnostics, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.File, b.File); c != 0 {
			return c
		}

		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}

		return cmp.Compare(a.Column, b.Column)
	})
}

// Render writes the diagnostics to w, one per line.
func Render(w io.Writer, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}

	return nil
}
