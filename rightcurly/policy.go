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
	"strings"
)

// Policy specifies the placement of a right curly brace.
type Policy uint8

const (
	// Same requires the brace to end its line, with any chained
	// continuation on the same line as the brace. This is the default.
	Same Policy = iota

	// Alone requires the brace to be alone on its line.
	Alone

	// AloneOrEmpty is [Alone], except that an empty block may be
	// collapsed to a single line.
	AloneOrEmpty

	// AloneOrSingleline is [Alone], except that a block written entirely
	// on one line is accepted.
	AloneOrSingleline
)

var policyNames = map[Policy]string{
	Same:              "same",
	Alone:             "alone",
	AloneOrEmpty:      "alone_or_empty",
	AloneOrSingleline: "alone_or_singleline",
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy decodes a policy from its configuration name. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}

	return Same, fmt.Errorf("unknown right curly policy %q", s)
}

// Set implements [flag.Value].
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// Get implements [flag.Getter].
func (p *Policy) Get() any { return *p }
