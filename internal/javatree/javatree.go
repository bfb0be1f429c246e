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

// Package javatree parses Java source into the token tree consumed by the
// block checks. Parsing is done by tree-sitter; the concrete tree is then
// reshaped into the Checkstyle token vocabulary: statement lists carry
// their closing brace as their last child, class bodies become OBJBLOCK
// with explicit LCURLY/RCURLY children, and initializer blocks are
// wrapped in STATIC_INIT/INSTANCE_INIT nodes.
package javatree

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/ILMTitan/checkstyle/ast"
	"github.com/ILMTitan/checkstyle/token"
)

// ErrParse is returned when tree-sitter produces no tree for the input.
var ErrParse = errors.New("javatree: cannot parse source")

// Parse parses Java source into an [ast.Tree].
//
// Parsers are created per call; tree-sitter parsers are not safe for
// concurrent use, and creation is cheap next to parsing.
func Parse(ctx context.Context, source []byte) (*ast.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, ErrParse
	}

	b := ast.NewBuilder()
	unit := b.AddRoot(token.CompilationUnit, 1, 0)

	c := converter{b: b}
	for i := 0; i < int(root.ChildCount()); i++ {
		c.convert(unit, root.Child(i))
	}

	return b.Finish(string(source)), nil
}

type converter struct {
	b *ast.Builder
}

// convert appends the arena node(s) for one tree-sitter node under parent.
func (c converter) convert(parent ast.Node, n *sitter.Node) {
	switch n.Type() {
	case "class_declaration":
		c.convertChildren(c.add(parent, token.ClassDef, n), n)

	case "annotation_type_declaration":
		c.convertChildren(c.add(parent, token.AnnotationDef, n), n)

	case "class_body", "interface_body", "enum_body", "annotation_type_body":
		c.convertObjBlock(parent, n)

	case "method_declaration":
		c.convertChildren(c.add(parent, token.MethodDef, n), n)

	case "constructor_declaration":
		c.convertChildren(c.add(parent, token.CtorDef, n), n)

	case "constructor_body", "block":
		c.convertSlist(parent, n)

	case "static_initializer":
		c.convertChildren(c.add(parent, token.StaticInit, n), n)

	case "if_statement":
		c.convertIf(parent, n)

	case "while_statement":
		c.convertChildren(c.add(parent, token.LiteralWhile, n), n)

	case "do_statement":
		c.convertDo(parent, n)

	case "for_statement", "enhanced_for_statement":
		c.convertChildren(c.add(parent, token.LiteralFor, n), n)

	case "try_statement", "try_with_resources_statement":
		c.convertChildren(c.add(parent, token.LiteralTry, n), n)

	case "catch_clause":
		c.convertChildren(c.add(parent, token.LiteralCatch, n), n)

	case "finally_clause":
		c.convertChildren(c.add(parent, token.LiteralFinally, n), n)

	case "resource_specification":
		c.convertChildren(c.add(parent, token.ResourceSpecification, n), n)

	default:
		c.convertGeneric(parent, n)
	}
}

// convertChildren converts all children of n under node, dropping the
// leading keyword tokens the node itself stands for.
func (c converter) convertChildren(node ast.Node, n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "if", "while", "for", "do", "try", "catch", "finally", "static":
			// The construct node carries the keyword's position.

		default:
			c.convert(node, child)
		}
	}
}

// convertObjBlock maps a class-like body to OBJBLOCK. The braces become
// explicit LCURLY/RCURLY children and a bare block member becomes an
// instance initializer.
func (c converter) convertObjBlock(parent ast.Node, n *sitter.Node) {
	objBlock := c.add(parent, token.ObjBlock, n)

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "{":
			c.add(objBlock, token.LCurly, child)

		case "}":
			c.add(objBlock, token.RCurly, child)

		case "block":
			c.convertSlist(c.add(objBlock, token.InstanceInit, child), child)

		default:
			c.convert(objBlock, child)
		}
	}
}

// convertSlist maps a braced statement list to SLIST. The SLIST node
// takes the opening brace's position and the closing brace is its last
// child; the opening brace itself is not materialized.
func (c converter) convertSlist(parent ast.Node, n *sitter.Node) {
	slist := c.add(parent, token.Slist, n)

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "{":

		case "}":
			c.add(slist, token.RCurly, child)

		default:
			c.convert(slist, child)
		}
	}
}

// convertIf maps an if statement. The else keyword becomes a LITERAL_ELSE
// child of the if node, owning the alternative branch, so that the if
// body is the else's preceding sibling.
func (c converter) convertIf(parent ast.Node, n *sitter.Node) {
	ifNode := c.add(parent, token.LiteralIf, n)
	owner := ifNode

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "if":

		case "else":
			owner = c.add(ifNode, token.LiteralElse, child)

		default:
			c.convert(owner, child)
		}
	}
}

// convertDo maps a do-while loop. The trailing while keyword becomes the
// DO_WHILE marker and the terminating semicolon stays the loop's last
// child.
func (c converter) convertDo(parent ast.Node, n *sitter.Node) {
	doNode := c.add(parent, token.LiteralDo, n)

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "do":

		case "while":
			c.add(doNode, token.DoWhile, child)

		default:
			c.convert(doNode, child)
		}
	}
}

func (c converter) convertGeneric(parent ast.Node, n *sitter.Node) {
	count := int(n.ChildCount())
	if count == 0 {
		c.add(parent, leafKind(n), n)

		return
	}

	node := c.add(parent, token.Generic, n)
	for i := 0; i < count; i++ {
		c.convert(node, n.Child(i))
	}
}

func leafKind(n *sitter.Node) token.Kind {
	switch n.Type() {
	case ";":
		return token.Semi

	case "{":
		return token.LCurly

	case "}":
		return token.RCurly

	case "identifier":
		return token.Ident

	default:
		return token.Generic
	}
}

func (c converter) add(parent ast.Node, kind token.Kind, n *sitter.Node) ast.Node {
	start := n.StartPoint()

	return c.b.Add(parent, kind, int(start.Row)+1, int(start.Column))
}
