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

package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ILMTitan/checkstyle/internal/report"
	"github.com/ILMTitan/checkstyle/internal/runner"
)

// batchDelay coalesces bursts of file system events into one audit.
const batchDelay = 500 * time.Millisecond

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Audit a directory and re-audit whenever Java files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}

			r, err := runner.New(cfg, log)
			if err != nil {
				return err
			}

			return watch(cmd.Context(), r, args[0], log.With("component", "watcher"))
		},
	}
}

func watch(ctx context.Context, r *runner.Runner, path string, log *slog.Logger) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// Initial audit
	audit(ctx, r, absPath, log)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	err = filepath.WalkDir(absPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Error walking path", "path", p, "error", err)

			return filepath.SkipDir
		}

		if d.IsDir() {
			return fsWatcher.Add(p)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Watching for changes", "path", absPath)

	var timer *time.Timer

	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-trigger:
			audit(ctx, r, absPath, log)

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = fsWatcher.Add(event.Name)
				}
			}

			if !strings.HasSuffix(event.Name, ".java") {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(batchDelay, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}

			log.Warn("Watcher error", "error", err)
		}
	}
}

func audit(ctx context.Context, r *runner.Runner, path string, log *slog.Logger) {
	diagnostics, err := r.Run(ctx, []string{path})
	if err != nil {
		log.Error("Audit failed", "error", err)

		return
	}

	if err := report.Render(os.Stdout, diagnostics); err != nil {
		log.Error("Rendering failed", "error", err)

		return
	}

	log.Info("Audit finished", "violations", len(diagnostics))
}
