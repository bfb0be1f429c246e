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

	"github.com/ILMTitan/checkstyle/token"
)

// TokenFlags represents the construct kinds a check analyzes.
type TokenFlags uint16

const (
	// TokenTry enables analysis of try statements.
	TokenTry TokenFlags = 1 << iota

	// TokenCatch enables analysis of catch clauses.
	TokenCatch

	// TokenFinally enables analysis of finally clauses.
	TokenFinally

	// TokenIf enables analysis of if statements.
	TokenIf

	// TokenElse enables analysis of else branches.
	TokenElse

	// TokenFor enables analysis of for loops.
	TokenFor

	// TokenWhile enables analysis of while loops.
	TokenWhile

	// TokenDo enables analysis of do-while loops.
	TokenDo

	// TokenClassDef enables analysis of class definitions.
	TokenClassDef

	// TokenMethodDef enables analysis of method definitions.
	TokenMethodDef

	// TokenCtorDef enables analysis of constructor definitions.
	TokenCtorDef

	// TokenStaticInit enables analysis of static initialization blocks.
	TokenStaticInit

	// TokenInstanceInit enables analysis of instance initialization blocks.
	TokenInstanceInit

	// TokenAnnotationDef enables analysis of annotation type definitions.
	TokenAnnotationDef
)

// Tokens is a set of analyzable construct kinds.
type Tokens = BitMask[TokenFlags]

var tokenFlags = map[token.Kind]TokenFlags{
	token.LiteralTry:     TokenTry,
	token.LiteralCatch:   TokenCatch,
	token.LiteralFinally: TokenFinally,
	token.LiteralIf:      TokenIf,
	token.LiteralElse:    TokenElse,
	token.LiteralFor:     TokenFor,
	token.LiteralWhile:   TokenWhile,
	token.LiteralDo:      TokenDo,
	token.ClassDef:       TokenClassDef,
	token.MethodDef:      TokenMethodDef,
	token.CtorDef:        TokenCtorDef,
	token.StaticInit:     TokenStaticInit,
	token.InstanceInit:   TokenInstanceInit,
	token.AnnotationDef:  TokenAnnotationDef,
}

// TokenFlag maps a construct kind to its flag. Kinds outside the
// acceptable set of the check are a configuration error.
func TokenFlag(kind token.Kind) (TokenFlags, error) {
	flag, ok := tokenFlags[kind]
	if !ok {
		return 0, fmt.Errorf("token %s is not checked for brace placement", kind)
	}

	return flag, nil
}

// Flag maps a construct kind to its flag, panicking on kinds outside the
// acceptable set. Use for statically known kinds.
func Flag(kind token.Kind) TokenFlags {
	flag, err := TokenFlag(kind)
	if err != nil {
		panic(err)
	}

	return flag
}

// DefaultTokens returns the construct kinds analyzed when no token
// configuration is given: try, catch, finally, if and else.
func DefaultTokens() Tokens {
	return NewBitMask(TokenTry, TokenCatch, TokenFinally, TokenIf, TokenElse)
}
