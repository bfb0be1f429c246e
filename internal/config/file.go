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

package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ILMTitan/checkstyle/token"
)

// File holds the tool configuration. Precedence is defaults, then the
// YAML configuration file, then environment variables.
type File struct {
	// Policy selects the right curly placement policy, one of
	// same, alone, alone_or_empty or alone_or_singleline.
	Policy string `envconfig:"CHECKSTYLE_POLICY" yaml:"policy"`

	// Tokens lists the construct kinds to analyze by their Checkstyle
	// names. Empty means the default set.
	Tokens []string `envconfig:"CHECKSTYLE_TOKENS" yaml:"tokens"`

	// Workers bounds the number of files analyzed concurrently.
	Workers int `envconfig:"CHECKSTYLE_WORKERS" yaml:"workers"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"CHECKSTYLE_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"CHECKSTYLE_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from an optional YAML file and the
// environment, validating the result.
func Load(path string) (*File, error) {
	cfg := &File{}
	setDefaults(cfg)

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFromFile(cfg *File, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *File) {
	cfg.Policy = "same"
	cfg.Workers = runtime.GOMAXPROCS(0)
	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate checks structural settings and token names. The policy string
// is validated by the check construction, before any analysis runs.
func (c *File) Validate() error {
	var errs []string

	if c.Workers < 1 {
		errs = append(errs, "workers must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if _, err := c.TokenKinds(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// TokenKinds resolves the configured token names into construct kinds.
// An empty configuration yields nil, meaning the check's default set.
func (c *File) TokenKinds() ([]token.Kind, error) {
	if len(c.Tokens) == 0 {
		return nil, nil
	}

	kinds := make([]token.Kind, 0, len(c.Tokens))
	for _, name := range c.Tokens {
		kind, err := token.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}

		if _, err := TokenFlag(kind); err != nil {
			return nil, err
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}
