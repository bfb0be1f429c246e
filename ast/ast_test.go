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

package ast_test

import (
	"testing"

	. "github.com/ILMTitan/checkstyle/ast"
	"github.com/ILMTitan/checkstyle/token"
)

// buildStatement builds the tree for "if (x) { y(); }" on one line.
func buildStatement() (*Tree, Node) {
	b := NewBuilder()
	root := b.AddRoot(token.CompilationUnit, 1, 0)
	ifNode := b.Add(root, token.LiteralIf, 1, 0)
	b.Add(ifNode, token.Expr, 1, 3)
	slist := b.Add(ifNode, token.Slist, 1, 7)
	b.Add(slist, token.Expr, 1, 9)
	b.Add(slist, token.Semi, 1, 13)
	b.Add(slist, token.RCurly, 1, 14)

	tree := b.Finish("if (x) { y(); }")

	return tree, ifNode
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	tree, ifNode := buildStatement()

	if got, want := tree.Root().Kind(), token.CompilationUnit; got != want {
		t.Errorf("Root kind = %v, want %v", got, want)
	}

	if got, want := ifNode.Parent(), tree.Root(); got != want {
		t.Errorf("Parent = %v, want root", got)
	}

	slist := ifNode.LastChild()
	if got, want := slist.Kind(), token.Slist; got != want {
		t.Fatalf("LastChild kind = %v, want %v", got, want)
	}

	if got, want := slist.PreviousSibling().Kind(), token.Expr; got != want {
		t.Errorf("PreviousSibling kind = %v, want %v", got, want)
	}

	if got := slist.NextSibling(); got.Valid() {
		t.Errorf("NextSibling = %v, want invalid", got)
	}

	if got, want := slist.NumChildren(), 3; got != want {
		t.Errorf("NumChildren = %d, want %d", got, want)
	}

	rcurly := slist.LastChild()
	if got, want := rcurly.Kind(), token.RCurly; got != want {
		t.Errorf("rcurly kind = %v, want %v", got, want)
	}

	if got, want := rcurly.Line(), 1; got != want {
		t.Errorf("rcurly line = %d, want %d", got, want)
	}

	if got, want := rcurly.Column(), 14; got != want {
		t.Errorf("rcurly column = %d, want %d", got, want)
	}
}

func TestZeroNode(t *testing.T) {
	t.Parallel()

	var zero Node

	if zero.Valid() {
		t.Error("zero node reports valid")
	}

	if got, want := zero.Kind(), token.Invalid; got != want {
		t.Errorf("Kind = %v, want %v", got, want)
	}

	// Line 0 can never match a 1-based source line.
	if got, want := zero.Line(), 0; got != want {
		t.Errorf("Line = %d, want %d", got, want)
	}

	if zero.Parent().Valid() || zero.FirstChild().Valid() || zero.NextSibling().Valid() {
		t.Error("navigation from the zero node yields valid nodes")
	}
}

func TestFindFirstToken(t *testing.T) {
	t.Parallel()

	_, ifNode := buildStatement()

	if got, want := ifNode.FindFirstToken(token.Slist), ifNode.LastChild(); got != want {
		t.Errorf("FindFirstToken(Slist) = %v, want %v", got, want)
	}

	if got := ifNode.FindFirstToken(token.LiteralElse); got.Valid() {
		t.Errorf("FindFirstToken(LiteralElse) = %v, want invalid", got)
	}

	// Only immediate children are searched.
	if got := ifNode.FindFirstToken(token.RCurly); got.Valid() {
		t.Errorf("FindFirstToken(RCurly) = %v, want invalid", got)
	}
}

func TestFirstToken(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	root := b.AddRoot(token.CompilationUnit, 1, 0)
	stmt := b.Add(root, token.Generic, 2, 4)
	inner := b.Add(stmt, token.Generic, 2, 4)
	first := b.Add(inner, token.Ident, 2, 4)
	b.Add(inner, token.Generic, 2, 8)
	b.Add(stmt, token.Semi, 2, 12)
	b.Finish("")

	got := stmt.FirstToken()
	if got != first && got != inner && got != stmt {
		t.Fatalf("FirstToken = %v, want earliest position", got)
	}

	if got.Line() != 2 || got.Column() != 4 {
		t.Errorf("FirstToken position = %d:%d, want 2:4", got.Line(), got.Column())
	}
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	tree, _ := buildStatement()

	var kinds []token.Kind
	for n := range tree.Root().Preorder() {
		kinds = append(kinds, n.Kind())
	}

	want := []token.Kind{
		token.CompilationUnit, token.LiteralIf, token.Expr,
		token.Slist, token.Expr, token.Semi, token.RCurly,
	}

	if len(kinds) != len(want) {
		t.Fatalf("Preorder yielded %d nodes, want %d", len(kinds), len(want))
	}

	for i, kind := range want {
		if kinds[i] != kind {
			t.Errorf("Preorder[%d] = %v, want %v", i, kinds[i], kind)
		}
	}
}

func TestSourceLine(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.AddRoot(token.CompilationUnit, 1, 0)
	tree := b.Finish("first\r\nsecond\nthird")

	tests := []struct {
		line int
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
	}

	for _, tt := range tests {
		if got, want := tree.SourceLine(tt.line), tt.want; got != want {
			t.Errorf("SourceLine(%d) = %q, want %q", tt.line, got, want)
		}
	}
}
