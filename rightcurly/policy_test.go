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

package rightcurly_test

import (
	"flag"
	"testing"

	. "github.com/ILMTitan/checkstyle/rightcurly"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"same", Same, false},
		{"alone", Alone, false},
		{"alone_or_empty", AloneOrEmpty, false},
		{"alone_or_singleline", AloneOrSingleline, false},
		{"ALONE", Alone, false},
		{" same ", Same, false},
		{"alone-or-empty", Same, true},
		{"", Same, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyString(t *testing.T) {
	t.Parallel()

	if got, want := AloneOrSingleline.String(), "alone_or_singleline"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := Policy(42).String(), "Policy(42)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPolicyFlagValue(t *testing.T) {
	t.Parallel()

	var p Policy

	var _ flag.Getter = &p

	if err := p.Set("alone_or_empty"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got, want := p, AloneOrEmpty; got != want {
		t.Errorf("policy after Set = %v, want %v", got, want)
	}

	if got, want := p.Get(), any(AloneOrEmpty); got != want {
		t.Errorf("Get() = %v, want %v", got, want)
	}

	if err := p.Set("bogus"); err == nil {
		t.Error("Set accepted an unknown policy name")
	}
}
