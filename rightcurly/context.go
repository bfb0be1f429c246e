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
	"github.com/ILMTitan/checkstyle/ast"
	"github.com/ILMTitan/checkstyle/token"
)

// braceContext holds the lexical landmarks of one analyzed construct. It
// is built fresh per visited node and discarded after validation.
type braceContext struct {
	// lcurly is the opening brace of the construct body, or the zero
	// node when the construct has no braced body.
	lcurly ast.Node

	// rcurly is the closing brace, or the zero node. Validation is
	// skipped entirely when rcurly is absent.
	rcurly ast.Node

	// nextToken is the first lexical token following the construct. At
	// the end of the compilation unit it is the zero node, whose line 0
	// never matches a real line.
	nextToken ast.Node

	// rcurlyEndsSyntax is true when no syntactically required
	// continuation (else, catch, finally, do-while condition) follows.
	rcurlyEndsSyntax bool
}

// newBraceContext collects the brace context for a construct node,
// dispatching on its category.
func newBraceContext(n ast.Node) braceContext {
	switch n.Kind() {
	case token.LiteralTry, token.LiteralCatch, token.LiteralFinally:
		return braceContextTryCatchFinally(n)

	case token.LiteralIf, token.LiteralElse:
		return braceContextIfElse(n)

	case token.LiteralDo, token.LiteralWhile, token.LiteralFor:
		return braceContextLoops(n)

	default:
		return braceContextOthers(n)
	}
}

func braceContextTryCatchFinally(n ast.Node) braceContext {
	var lcurly, nextToken ast.Node
	if n.Kind() == token.LiteralTry {
		if n.FirstChild().Kind() == token.ResourceSpecification {
			lcurly = n.FirstChild().NextSibling()
		} else {
			lcurly = n.FirstChild()
		}

		nextToken = lcurly.NextSibling()
	} else {
		nextToken = n.NextSibling()
		lcurly = n.LastChild()
	}

	rcurlyEndsSyntax := false
	if !nextToken.Valid() {
		rcurlyEndsSyntax = true
		nextToken = nextLexicalToken(n)
	}

	return braceContext{
		lcurly:           lcurly,
		rcurly:           lcurly.LastChild(),
		nextToken:        nextToken,
		rcurlyEndsSyntax: rcurlyEndsSyntax,
	}
}

func braceContextIfElse(n ast.Node) braceContext {
	var lcurly ast.Node

	rcurlyEndsSyntax := false

	nextToken := n.FindFirstToken(token.LiteralElse)
	if !nextToken.Valid() {
		rcurlyEndsSyntax = true
		nextToken = nextLexicalToken(n)
		lcurly = n.LastChild()
	} else {
		lcurly = nextToken.PreviousSibling()
	}

	// A single-statement branch without braces has no rcurly and is
	// exempt from validation.
	var rcurly ast.Node
	if lcurly.Kind() == token.Slist {
		rcurly = lcurly.LastChild()
	}

	return braceContext{
		lcurly:           lcurly,
		rcurly:           rcurly,
		nextToken:        nextToken,
		rcurlyEndsSyntax: rcurlyEndsSyntax,
	}
}

func braceContextLoops(n ast.Node) braceContext {
	var nextToken ast.Node

	rcurlyEndsSyntax := false
	if n.Kind() == token.LiteralDo {
		nextToken = n.FindFirstToken(token.DoWhile)
	} else {
		rcurlyEndsSyntax = true
		nextToken = nextLexicalToken(n)
	}

	// Slist is absent in code like "while (true);".
	var rcurly ast.Node

	lcurly := n.FindFirstToken(token.Slist)
	if lcurly.Valid() {
		rcurly = lcurly.LastChild()
	}

	return braceContext{
		lcurly:           lcurly,
		rcurly:           rcurly,
		nextToken:        nextToken,
		rcurlyEndsSyntax: rcurlyEndsSyntax,
	}
}

// braceContextOthers covers CLASS_DEF, METHOD_DEF, CTOR_DEF, STATIC_INIT,
// INSTANCE_INIT and ANNOTATION_DEF.
func braceContextOthers(n ast.Node) braceContext {
	var lcurly, rcurly ast.Node
	if kind := n.Kind(); kind == token.ClassDef || kind == token.AnnotationDef {
		body := n.LastChild()
		lcurly = body.FirstChild()
		rcurly = body.LastChild()
	} else {
		// Slist is absent for abstract methods.
		lcurly = n.FindFirstToken(token.Slist)
		if lcurly.Valid() {
			rcurly = lcurly.LastChild()
		}
	}

	return braceContext{
		lcurly:           lcurly,
		rcurly:           rcurly,
		nextToken:        nextLexicalToken(n),
		rcurlyEndsSyntax: true,
	}
}

// nextLexicalToken finds the token that lexically follows the subtree of
// n: it ascends through ancestors until one has a next sibling and
// descends into that sibling's earliest token. At the end of the
// compilation unit it returns the zero node.
func nextLexicalToken(n ast.Node) ast.Node {
	for cur := n; cur.Valid(); cur = cur.Parent() {
		if next := cur.NextSibling(); next.Valid() {
			return next.FirstToken()
		}
	}

	return ast.Node{}
}
