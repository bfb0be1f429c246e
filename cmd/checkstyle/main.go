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

// Command checkstyle checks Java sources for right curly brace placement.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ILMTitan/checkstyle/internal/config"
	"github.com/ILMTitan/checkstyle/internal/report"
	"github.com/ILMTitan/checkstyle/internal/runner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errViolations signals a clean run that found style violations.
var errViolations = errors.New("violations found")

func main() {
	rootCmd := &cobra.Command{
		Use:   "checkstyle",
		Short: "checkstyle checks Java sources for adherence to a set of rules",
		Long: `checkstyle verifies the placement of right curly braces ('}') for
if-else, try-catch-finally blocks, loops, method, class, constructor,
initializer and annotation definitions.

Run 'checkstyle check <path>...' for a one-shot audit.
Run 'checkstyle watch <path>' to re-audit on changes.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("policy", "", "right curly policy (same, alone, alone_or_empty, alone_or_singleline)")
	rootCmd.PersistentFlags().StringSlice("tokens", nil, "construct kinds to analyze (e.g. LITERAL_IF,METHOD_DEF)")

	rootCmd.AddCommand(
		checkCmd(),
		watchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Audit the given files or directories once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}

			r, err := runner.New(cfg, log)
			if err != nil {
				return err
			}

			diagnostics, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			if err := report.Render(os.Stdout, diagnostics); err != nil {
				return err
			}

			if len(diagnostics) > 0 {
				log.Debug("audit finished", "violations", len(diagnostics))

				return errViolations
			}

			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("checkstyle %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*config.File, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if policy, _ := cmd.Flags().GetString("policy"); policy != "" {
		cfg.Policy = policy
	}

	if tokens, _ := cmd.Flags().GetStringSlice("tokens"); len(tokens) > 0 {
		cfg.Tokens = tokens
	}

	return cfg, newLogger(cfg.Log), nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
