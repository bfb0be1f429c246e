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

//go:build !cgo

// Package javatree parses Java source into the token tree consumed by the
// block checks. The tree-sitter parser requires cgo; this stub keeps
// cgo-less builds working.
package javatree

import (
	"context"
	"errors"

	"github.com/ILMTitan/checkstyle/ast"
)

// ErrUnavailable is returned when the binary was built without cgo.
var ErrUnavailable = errors.New("javatree: built without cgo, parser unavailable")

// Parse is unavailable without cgo.
func Parse(_ context.Context, _ []byte) (*ast.Tree, error) {
	return nil, ErrUnavailable
}
