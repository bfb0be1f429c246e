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
	"log/slog"

	"github.com/ILMTitan/checkstyle/internal/config"
	"github.com/ILMTitan/checkstyle/token"
)

// Option configures specific behavior of a [New] right curly check.
type Option interface {
	apply(r *runOptions) error
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) error {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		if err := opt.apply(r); err != nil {
			return err
		}
	}

	return nil
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPolicy is an [Option] to configure the right curly placement policy.
func WithPolicy(policy Policy) Option { return policyOption{policy: policy} }

type policyOption struct{ policy Policy }

func (o policyOption) apply(r *runOptions) error {
	r.policy = o.policy

	return nil
}

func (o policyOption) LogAttr() slog.Attr {
	return slog.String("policy", o.policy.String())
}

// WithTokens is an [Option] to configure the construct kinds to analyze,
// replacing the default set. Kinds outside the acceptable set of the
// check make [New] fail.
func WithTokens(kinds ...token.Kind) Option { return tokensOption{kinds: kinds} }

type tokensOption struct{ kinds []token.Kind }

func (o tokensOption) apply(r *runOptions) error {
	var tokens config.Tokens
	for _, kind := range o.kinds {
		flag, err := config.TokenFlag(kind)
		if err != nil {
			return err
		}

		tokens.Enable(flag)
	}

	r.tokens = tokens

	return nil
}

func (o tokensOption) LogAttr() slog.Attr {
	names := make([]string, len(o.kinds))
	for i, kind := range o.kinds {
		names[i] = kind.String()
	}

	return slog.Any("tokens", names)
}
