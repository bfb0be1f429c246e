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

// Package token defines the kinds of syntax tree nodes produced for Java
// sources. The names mirror the Checkstyle token vocabulary so that
// configuration files remain compatible with existing Checkstyle setups.
package token

import "fmt"

// Kind identifies the grammatical role of a syntax tree node.
type Kind uint8

const (
	// Invalid is the kind of the zero node. No parsed node carries it.
	Invalid Kind = iota

	// CompilationUnit is the root of a parsed source file.
	CompilationUnit

	// LiteralTry is a try statement, with or without resources.
	LiteralTry
	// LiteralCatch is a catch clause of a try statement.
	LiteralCatch
	// LiteralFinally is a finally clause of a try statement.
	LiteralFinally
	// LiteralIf is an if statement.
	LiteralIf
	// LiteralElse is the else branch attached to an if statement.
	LiteralElse
	// LiteralFor is a basic or enhanced for loop.
	LiteralFor
	// LiteralWhile is a while loop.
	LiteralWhile
	// LiteralDo is a do-while loop.
	LiteralDo

	// ClassDef is a class or interface definition.
	ClassDef
	// MethodDef is a method definition.
	MethodDef
	// CtorDef is a constructor definition.
	CtorDef
	// StaticInit is a static initialization block.
	StaticInit
	// InstanceInit is an instance initialization block.
	InstanceInit
	// AnnotationDef is an annotation type definition.
	AnnotationDef

	// Slist is a braced statement list. Its position is the position of
	// the opening brace; the closing brace is its last child.
	Slist
	// ObjBlock is a class, interface or annotation body. Its first child
	// is LCurly and its last child is RCurly.
	ObjBlock
	// ResourceSpecification is the resource clause of a try-with-resources.
	ResourceSpecification
	// DoWhile is the trailing "while" keyword of a do-while loop.
	DoWhile

	// LCurly is an opening brace token.
	LCurly
	// RCurly is a closing brace token.
	RCurly
	// Semi is a statement terminator token.
	Semi
	// Expr is an expression subtree.
	Expr
	// Ident is an identifier token.
	Ident
	// Generic covers tokens and subtrees the analyzer does not inspect.
	Generic

	numKinds
)

var kindNames = [numKinds]string{
	Invalid:               "INVALID",
	CompilationUnit:       "COMPILATION_UNIT",
	LiteralTry:            "LITERAL_TRY",
	LiteralCatch:          "LITERAL_CATCH",
	LiteralFinally:        "LITERAL_FINALLY",
	LiteralIf:             "LITERAL_IF",
	LiteralElse:           "LITERAL_ELSE",
	LiteralFor:            "LITERAL_FOR",
	LiteralWhile:          "LITERAL_WHILE",
	LiteralDo:             "LITERAL_DO",
	ClassDef:              "CLASS_DEF",
	MethodDef:             "METHOD_DEF",
	CtorDef:               "CTOR_DEF",
	StaticInit:            "STATIC_INIT",
	InstanceInit:          "INSTANCE_INIT",
	AnnotationDef:         "ANNOTATION_DEF",
	Slist:                 "SLIST",
	ObjBlock:              "OBJBLOCK",
	ResourceSpecification: "RESOURCE_SPECIFICATION",
	DoWhile:               "DO_WHILE",
	LCurly:                "LCURLY",
	RCurly:                "RCURLY",
	Semi:                  "SEMI",
	Expr:                  "EXPR",
	Ident:                 "IDENT",
	Generic:               "TOKEN",
}

// String returns the Checkstyle-compatible name of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		m[kindNames[k]] = k
	}

	return m
}()

// Parse resolves a Checkstyle token name like "LITERAL_TRY" to its [Kind].
func Parse(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok || k == Invalid {
		return Invalid, fmt.Errorf("unknown token %q", name)
	}

	return k, nil
}
