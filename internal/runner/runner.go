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

// Package runner drives the configured checks over a set of Java files.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ILMTitan/checkstyle/internal/config"
	"github.com/ILMTitan/checkstyle/internal/javatree"
	"github.com/ILMTitan/checkstyle/internal/report"
	"github.com/ILMTitan/checkstyle/rightcurly"
)

// Runner analyzes Java source files. Checks are stateless, so files are
// analyzed concurrently.
type Runner struct {
	check   *rightcurly.Check
	workers int
	log     *slog.Logger
}

// New builds a Runner from validated configuration. Policy and token
// resolution happen here, before any file is touched.
func New(cfg *config.File, log *slog.Logger) (*Runner, error) {
	policy, err := rightcurly.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	kinds, err := cfg.TokenKinds()
	if err != nil {
		return nil, err
	}

	opts := rightcurly.Options{rightcurly.WithPolicy(policy)}
	if kinds != nil {
		opts = append(opts, rightcurly.WithTokens(kinds...))
	}

	check, err := rightcurly.New(opts)
	if err != nil {
		return nil, err
	}

	log.LogAttrs(context.Background(), slog.LevelDebug, "configured check",
		slog.String("check", rightcurly.Name), opts.LogAttr())

	return &Runner{
		check:   check,
		workers: cfg.Workers,
		log:     log.With("component", "runner"),
	}, nil
}

// Run analyzes every Java file under the given paths and returns the
// sorted diagnostics.
func (r *Runner) Run(ctx context.Context, paths []string) ([]report.Diagnostic, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}

	r.log.Debug("analyzing", "files", len(files), "workers", r.workers)

	var (
		mu          sync.Mutex
		diagnostics []report.Diagnostic
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, file := range files {
		g.Go(func() error {
			ds, err := r.CheckFile(ctx, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			mu.Lock()
			diagnostics = append(diagnostics, ds...)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Sort(diagnostics)

	return diagnostics, nil
}

// CheckFile parses and analyzes a single file.
func (r *Runner) CheckFile(ctx context.Context, path string) ([]report.Diagnostic, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tree, err := javatree.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	var diagnostics []report.Diagnostic

	for node := range tree.Root().Preorder() {
		if !r.check.Analyzes(node.Kind()) {
			continue
		}

		v, ok := r.check.Visit(node)
		if !ok {
			continue
		}

		diagnostics = append(diagnostics, report.Diagnostic{
			File:    path,
			Line:    v.Line,
			Column:  v.Column + 1,
			Key:     v.Key,
			Message: v.Message(),
			Check:   rightcurly.Name,
		})
	}

	return diagnostics, nil
}

// collectFiles expands files and directories into the list of Java files
// to analyze. Directories are walked recursively; explicitly named files
// are taken as-is.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.HasSuffix(p, ".java") {
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
