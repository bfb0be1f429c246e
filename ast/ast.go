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

// Package ast provides the syntax tree consumed by the block checks.
//
// The tree is an arena: all nodes live in a single slice owned by [Tree],
// and parent, child and sibling links are stored as plain indices. [Node]
// is a lightweight cursor over the arena; the zero Node represents an
// absent node, so navigation never returns nil pointers.
package ast

import (
	"iter"
	"strings"

	"github.com/ILMTitan/checkstyle/token"
)

type nodeData struct {
	kind     token.Kind
	line     int32
	column   int32
	parent   int32
	children []int32
}

// Tree is an immutable parsed compilation unit together with its source
// lines. Trees are safe for concurrent readers.
type Tree struct {
	nodes []nodeData
	lines []string
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	if t == nil || len(t.nodes) == 0 {
		return Node{}
	}

	return Node{tree: t, index: 0}
}

// SourceLine returns the raw text of the 1-based line number, or the empty
// string when the line does not exist.
func (t *Tree) SourceLine(line int) string {
	if line < 1 || line > len(t.lines) {
		return ""
	}

	return t.lines[line-1]
}

// Node is a cursor addressing one node of a [Tree]. The zero value is
// invalid and reports kind [token.Invalid] and line 0; since source lines
// are 1-based, an invalid node never shares a line with a real one.
type Node struct {
	tree  *Tree
	index int32
}

// Valid reports whether the cursor addresses a node.
func (n Node) Valid() bool { return n.tree != nil }

// Kind returns the node kind, or [token.Invalid] for the zero Node.
func (n Node) Kind() token.Kind {
	if !n.Valid() {
		return token.Invalid
	}

	return n.data().kind
}

// Line returns the 1-based source line, or 0 for the zero Node.
func (n Node) Line() int {
	if !n.Valid() {
		return 0
	}

	return int(n.data().line)
}

// Column returns the 0-based source column, or 0 for the zero Node.
func (n Node) Column() int {
	if !n.Valid() {
		return 0
	}

	return int(n.data().column)
}

// Tree returns the tree this node belongs to.
func (n Node) Tree() *Tree { return n.tree }

// Parent returns the parent node, or the zero Node for the root.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}

	return n.at(n.data().parent)
}

// NumChildren returns the number of children.
func (n Node) NumChildren() int {
	if !n.Valid() {
		return 0
	}

	return len(n.data().children)
}

// Child returns the i-th child, or the zero Node when out of range.
func (n Node) Child(i int) Node {
	if !n.Valid() {
		return Node{}
	}

	children := n.data().children
	if i < 0 || i >= len(children) {
		return Node{}
	}

	return n.at(children[i])
}

// FirstChild returns the first child, or the zero Node.
func (n Node) FirstChild() Node { return n.Child(0) }

// LastChild returns the last child, or the zero Node.
func (n Node) LastChild() Node { return n.Child(n.NumChildren() - 1) }

// NextSibling returns the following sibling in the parent's child order,
// or the zero Node.
func (n Node) NextSibling() Node { return n.sibling(1) }

// PreviousSibling returns the preceding sibling in the parent's child
// order, or the zero Node.
func (n Node) PreviousSibling() Node { return n.sibling(-1) }

// FindFirstToken returns the first immediate child of the given kind, or
// the zero Node.
func (n Node) FindFirstToken(kind token.Kind) Node {
	for i := range n.NumChildren() {
		if child := n.Child(i); child.Kind() == kind {
			return child
		}
	}

	return Node{}
}

// Preorder returns an iterator over the subtree rooted at n in
// depth-first source order, including n itself.
func (n Node) Preorder() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.preorder(yield)
	}
}

func (n Node) preorder(yield func(Node) bool) bool {
	if !n.Valid() {
		return true
	}

	if !yield(n) {
		return false
	}

	for i := range n.NumChildren() {
		if !n.Child(i).preorder(yield) {
			return false
		}
	}

	return true
}

// FirstToken returns the node with the earliest source position in the
// subtree rooted at n, including n itself.
func (n Node) FirstToken() Node {
	first := n
	for i := range n.NumChildren() {
		if candidate := n.Child(i).FirstToken(); candidate.before(first) {
			first = candidate
		}
	}

	return first
}

func (n Node) before(other Node) bool {
	if n.Line() != other.Line() {
		return n.Line() < other.Line()
	}

	return n.Column() < other.Column()
}

func (n Node) data() *nodeData { return &n.tree.nodes[n.index] }

func (n Node) at(index int32) Node {
	if index < 0 {
		return Node{}
	}

	return Node{tree: n.tree, index: index}
}

func (n Node) sibling(offset int) Node {
	parent := n.Parent()
	if !parent.Valid() {
		return Node{}
	}

	children := parent.data().children
	for i, c := range children {
		if c == n.index {
			return parent.Child(i + offset)
		}
	}

	return Node{}
}

// Builder constructs a [Tree] top-down. Children are appended in source
// order; the finished tree is immutable.
type Builder struct {
	tree *Tree
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tree: &Tree{}}
}

// AddRoot creates the root node. It must be called exactly once, before
// any Add call.
func (b *Builder) AddRoot(kind token.Kind, line, column int) Node {
	return b.append(-1, kind, line, column)
}

// Add appends a child to parent and returns it.
func (b *Builder) Add(parent Node, kind token.Kind, line, column int) Node {
	n := b.append(parent.index, kind, line, column)
	parent.data().children = append(parent.data().children, n.index)

	return n
}

// Finish attaches the source text and returns the completed tree. Line
// endings may be LF or CRLF.
func (b *Builder) Finish(source string) *Tree {
	t := b.tree
	t.lines = splitLines(source)

	return t
}

func (b *Builder) append(parent int32, kind token.Kind, line, column int) Node {
	index := int32(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, nodeData{
		kind:   kind,
		line:   int32(line),
		column: int32(column),
		parent: parent,
	})

	return Node{tree: b.tree, index: index}
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
