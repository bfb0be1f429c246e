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

package rightcurly

import (
	"fmt"

	"github.com/ILMTitan/checkstyle/ast"
	"github.com/ILMTitan/checkstyle/internal/config"
	"github.com/ILMTitan/checkstyle/token"
)

// Name is the check name used in rendered diagnostics.
const Name = "RightCurly"

// Message keys of the violations this check reports.
const (
	// MsgLineBreakBefore reports a brace that ends a multi-line block
	// without starting its own line.
	MsgLineBreakBefore = "line.break.before"

	// MsgLineAlone reports a brace that shares its line with other code.
	MsgLineAlone = "line.alone"

	// MsgLineSame reports a brace whose chained continuation sits on a
	// different line.
	MsgLineSame = "line.same"
)

var messages = map[string]string{
	MsgLineBreakBefore: "'%s' at column %d should have line break before.",
	MsgLineAlone:       "'%s' at column %d should be alone on a line.",
	MsgLineSame: "'%s' at column %d should be on the same line as the next part of a " +
		"multi-block statement (one that directly contains multiple blocks: " +
		"if/else-if, do/while or try/catch/finally).",
}

// Violation is one diagnostic produced by [Check.Visit]. Line and Column
// are the position of the offending right curly brace; Column is 0-based.
type Violation struct {
	Key    string
	Line   int
	Column int
}

// Message renders the violation text. The rendering arguments are the
// literal brace and its 1-based column.
func (v Violation) Message() string {
	return fmt.Sprintf(messages[v.Key], "}", v.Column+1)
}

type runOptions struct {
	policy Policy
	tokens config.Tokens
}

func defaultRunOptions() *runOptions {
	return &runOptions{
		policy: Same,
		tokens: config.DefaultTokens(),
	}
}

// Check verifies right curly brace placement. It holds only immutable
// configuration, so one Check may visit distinct nodes concurrently.
type Check struct {
	policy Policy
	tokens config.Tokens
}

// New creates a new right curly check with overriding [Option] values
// applied. Configuration errors are reported here, never during analysis.
func New(opts ...Option) (*Check, error) {
	r := defaultRunOptions()
	if err := Options(opts).apply(r); err != nil {
		return nil, fmt.Errorf("rightcurly: %w", err)
	}

	return &Check{policy: r.policy, tokens: r.tokens}, nil
}

// Policy returns the configured placement policy.
func (c *Check) Policy() Policy { return c.policy }

// Analyzes reports whether the check is configured to visit nodes of the
// given kind.
func (c *Check) Analyzes(kind token.Kind) bool {
	flag, err := config.TokenFlag(kind)
	if err != nil {
		return false
	}

	return c.tokens.Enabled(flag)
}

// Visit analyzes one construct node and reports its violation, if any.
// Constructs without a closing brace (abstract methods, bodyless loops)
// never yield a violation.
func (c *Check) Visit(n ast.Node) (Violation, bool) {
	d := newBraceContext(n)
	if !d.rcurly.Valid() {
		return Violation{}, false
	}

	key := c.validate(d, n.Tree().SourceLine(d.rcurly.Line()))
	if key == "" {
		return Violation{}, false
	}

	return Violation{
		Key:    key,
		Line:   d.rcurly.Line(),
		Column: d.rcurly.Column(),
	}, true
}
