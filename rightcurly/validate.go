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
	"unicode"

	"github.com/ILMTitan/checkstyle/ast"
	"github.com/ILMTitan/checkstyle/token"
)

// validate runs the decision cascade over one brace context and returns
// the violated message key, or the empty string. The rules are an ordered
// list; the first match wins.
func (c *Check) validate(d braceContext, targetSrcLine string) string {
	rules := [...]struct {
		violated func() bool
		key      string
	}{
		{func() bool { return c.shouldHaveLineBreakBefore(d) }, MsgLineBreakBefore},
		{func() bool { return c.shouldBeOnSameLine(d) }, MsgLineSame},
		{func() bool { return c.shouldBeAloneOnLine(d, targetSrcLine) }, MsgLineAlone},
	}

	for _, rule := range rules {
		if rule.violated() {
			return rule.key
		}
	}

	return ""
}

// shouldHaveLineBreakBefore reports a multi-line block under the same
// policy whose closing brace does not start its own line.
func (c *Check) shouldHaveLineBreakBefore(d braceContext) bool {
	return c.policy == Same &&
		!hasLineBreakBefore(d.rcurly) &&
		d.lcurly.Line() != d.rcurly.Line()
}

// shouldBeOnSameLine reports a chained continuation that does not share
// the closing brace's line under the same policy.
func (c *Check) shouldBeOnSameLine(d braceContext) bool {
	return c.policy == Same &&
		!d.rcurlyEndsSyntax &&
		d.rcurly.Line() != d.nextToken.Line()
}

// shouldBeAloneOnLine applies the policy-specific alone-on-line check.
func (c *Check) shouldBeAloneOnLine(d braceContext, targetSrcLine string) bool {
	switch c.policy {
	case Alone:
		return !isAloneOnLine(d, targetSrcLine)

	case AloneOrEmpty:
		return !isAloneOnLine(d, targetSrcLine) && !isEmptyBlock(d)

	case AloneOrSingleline:
		return !isAloneOnLine(d, targetSrcLine) && !isBlockAloneOnSingleLine(d)

	default: // Same
		return d.rcurlyEndsSyntax &&
			!isAloneOnLine(d, targetSrcLine) &&
			!isBlockAloneOnSingleLine(d)
	}
}

// isEmptyBlock reports whether the construct body contains nothing
// between its braces. For class and annotation bodies the closing brace
// immediately follows the opening brace as its sibling; elsewhere it is
// the statement list's only child.
func isEmptyBlock(d braceContext) bool {
	var emptyRcurlyLocation ast.Node
	if d.lcurly.Parent().Kind() == token.ObjBlock {
		emptyRcurlyLocation = d.lcurly.NextSibling()
	} else {
		emptyRcurlyLocation = d.lcurly.FirstChild()
	}

	return emptyRcurlyLocation == d.rcurly
}

// isAloneOnLine reports whether the closing brace is the only
// non-whitespace content up to its column, with nothing after it on the
// line (subject to the double brace initialization exception).
func isAloneOnLine(d braceContext, targetSrcLine string) bool {
	return (d.rcurly.Line() != d.nextToken.Line() || skipDoubleBraceInstInit(d)) &&
		hasWhitespaceBefore(d.rcurly.Column(), targetSrcLine)
}

// skipDoubleBraceInstInit recognizes the inner closing brace of a double
// brace initialization:
//
//	Map<String, String> map = new LinkedHashMap<>() {{
//	        put("alpha", "man");
//	    }}; // no violation
//
// The inner brace is treated as alone on its line even though the outer
// brace and a semicolon follow it, as long as nothing else follows on
// that line.
func skipDoubleBraceInstInit(d braceContext) bool {
	tokenAfterNextToken := nextLexicalToken(d.nextToken)

	return d.rcurly.Parent().Parent().Kind() == token.InstanceInit &&
		d.nextToken.Kind() == token.RCurly &&
		d.rcurly.Line() != nextLexicalToken(tokenAfterNextToken).Line()
}

// isBlockAloneOnSingleLine reports whether the whole block occupies a
// single line that it does not share with the rest of the statement. The
// comparison token is found past any chain of else branches and past a
// trailing do-while condition clause.
func isBlockAloneOnSingleLine(d braceContext) bool {
	nextToken := d.nextToken
	for nextToken.Kind() == token.LiteralElse {
		nextToken = nextLexicalToken(nextToken)
	}

	if nextToken.Kind() == token.DoWhile {
		doWhileSemi := nextToken.Parent().LastChild()
		nextToken = nextLexicalToken(doWhileSemi)
	}

	return d.rcurly.Line() == d.lcurly.Line() &&
		(d.rcurly.Line() != nextToken.Line() || isRightcurlyFollowedBySemicolon(d))
}

func isRightcurlyFollowedBySemicolon(d braceContext) bool {
	return d.nextToken.Kind() == token.Semi
}

// hasLineBreakBefore reports whether the closing brace starts its own
// line relative to the preceding token.
func hasLineBreakBefore(rcurly ast.Node) bool {
	previousToken := rcurly.PreviousSibling()
	if !previousToken.Valid() {
		previousToken = rcurly.Parent()
	}

	return rcurly.Line() != previousToken.Line()
}

// hasWhitespaceBefore reports whether every character of line before the
// given column is whitespace.
func hasWhitespaceBefore(column int, line string) bool {
	for i, r := range line {
		if i >= column {
			break
		}

		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
