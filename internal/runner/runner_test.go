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

//go:build cgo

package runner_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ILMTitan/checkstyle/internal/config"
	. "github.com/ILMTitan/checkstyle/internal/runner"
)

const cleanSource = `class Main {
    void m() {
        if (a) {
            b();
        } else {
            c();
        }
    }
}
`

const elseOnOwnLine = `class Main {
    void m() {
        if (a) {
            b();
        }
        else {
            c();
        }
    }
}
`

func testConfig() *config.File {
	return &config.File{
		Policy:  "same",
		Workers: 2,
		Log:     config.LogConfig{Level: "info", Format: "text"},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeJava(t *testing.T, dir, name, source string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJava(t, dir, "Main.java", cleanSource)
	writeJava(t, dir, "ignored.txt", "not java")

	r, err := New(testConfig(), discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	diagnostics, err := r.Run(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Run = %v, want no diagnostics", diagnostics)
	}
}

func TestRunReportsViolation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeJava(t, dir, "Main.java", elseOnOwnLine)

	r, err := New(testConfig(), discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	diagnostics, err := r.Run(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("Run = %v, want exactly one diagnostic", diagnostics)
	}

	d := diagnostics[0]
	if d.File != path || d.Line != 5 || d.Column != 9 {
		t.Errorf("diagnostic at %s:%d:%d, want %s:5:9", d.File, d.Line, d.Column, path)
	}

	if got, want := d.Key, "line.same"; got != want {
		t.Errorf("diagnostic key = %q, want %q", got, want)
	}

	if got, want := d.Check, "RightCurly"; got != want {
		t.Errorf("diagnostic check = %q, want %q", got, want)
	}
}

func TestRunSortsAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJava(t, dir, "B.java", elseOnOwnLine)
	writeJava(t, dir, "A.java", elseOnOwnLine)

	r, err := New(testConfig(), discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	diagnostics, err := r.Run(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) != 2 {
		t.Fatalf("Run = %v, want two diagnostics", diagnostics)
	}

	if filepath.Base(diagnostics[0].File) != "A.java" || filepath.Base(diagnostics[1].File) != "B.java" {
		t.Errorf("diagnostics not sorted by file: %v", diagnostics)
	}
}

func TestRunMissingPath(t *testing.T) {
	t.Parallel()

	r, err := New(testConfig(), discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := r.Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("Run accepted a missing path")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Policy = "sideways"

	if _, err := New(cfg, discard()); err == nil {
		t.Error("New accepted an unknown policy")
	}

	cfg = testConfig()
	cfg.Tokens = []string{"RCURLY"}

	if _, err := New(cfg, discard()); err == nil {
		t.Error("New accepted an unacceptable token")
	}
}

func TestCheckFileTokensOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Single-line method body; only reported when METHOD_DEF analysis is
	// enabled and the policy demands a lone brace.
	path := writeJava(t, dir, "Main.java", "class Main {\n    void m() { a(); }\n}\n")

	cfg := testConfig()
	cfg.Policy = "alone"
	cfg.Tokens = []string{"METHOD_DEF"}

	r, err := New(cfg, discard())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	diagnostics, err := r.CheckFile(context.Background(), path)
	if err != nil {
		t.Fatalf("CheckFile failed: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("CheckFile = %v, want exactly one diagnostic", diagnostics)
	}

	if got, want := diagnostics[0].Line, 2; got != want {
		t.Errorf("diagnostic line = %d, want %d", got, want)
	}
}
