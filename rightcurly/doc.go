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

// Package rightcurly checks the placement of right curly braces ('}') for
// if-else, try-catch-finally blocks, while loops, for loops, method
// definitions, class definitions, constructor definitions, instance and
// static initialization blocks and annotation definitions.
//
// # Policies
//
// Four placement policies are supported:
//
//   - same: the brace ends the line, and a chained continuation (else,
//     catch, finally, the while of a do-while) shares its line;
//
//     } else {
//
//   - alone: the brace is the only thing on its line;
//
//   - alone_or_empty: like alone, but an empty block may collapse to one
//     line;
//
//     static { }
//
//   - alone_or_singleline: like alone, but a block written entirely on
//     one line is accepted.
//
//     if (done) { return; }
//
// # Usage
//
// A [Check] is configured once and is then a pure function of the node it
// visits: it only reads the syntax tree and one source line and never
// retains state, so distinct nodes may be analyzed concurrently.
//
//	check, err := rightcurly.New(rightcurly.WithPolicy(rightcurly.Alone))
//	if err != nil {
//	    ...
//	}
//	for node := range walk(tree) {
//	    if v, ok := check.Visit(node); ok {
//	        fmt.Println(v.Message())
//	    }
//	}
package rightcurly
