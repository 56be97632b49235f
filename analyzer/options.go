// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/hiddenfield/analyzer/tokens"
	"fillmore-labs.com/hiddenfield/internal/config"
	"fillmore-labs.com/hiddenfield/internal/run"
)

// Option configures specific behavior of a [New] hiddenfield analyzer.
type Option interface {
	apply(r *run.Options)
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

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithTokens is an [Option] to select the declarations to check.
func WithTokens(t tokens.Token) Option { return tokensOption{tokens: t} }

type tokensOption struct{ tokens tokens.Token }

func (o tokensOption) apply(r *run.Options) {
	r.Tokens = o.tokens
}

func (o tokensOption) LogAttr() slog.Attr {
	return slog.String("tokens", o.tokens.String())
}

// WithIgnoreFormat is an [Option] to configure a regular expression for names that are never reported.
//
// An invalid expression makes the analyzer fail on its first run.
func WithIgnoreFormat(format string) Option { return ignoreFormatOption{format: format} }

type ignoreFormatOption struct{ format string }

func (o ignoreFormatOption) apply(r *run.Options) {
	r.IgnoreFormat = o.format
}

func (o ignoreFormatOption) LogAttr() slog.Attr {
	return slog.String("ignore-format", o.format)
}

// WithIgnoreSetter is an [Option] to ignore the parameter of setter methods.
func WithIgnoreSetter(ignore bool) Option { return ignoreSetterOption{ignore: ignore} }

type ignoreSetterOption struct{ ignore bool }

func (o ignoreSetterOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreSetter, o.ignore)
}

func (o ignoreSetterOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-setter", o.ignore)
}

// WithIgnoreConstructorParameter is an [Option] to ignore constructor parameters.
func WithIgnoreConstructorParameter(ignore bool) Option {
	return ignoreConstructorParameterOption{ignore: ignore}
}

type ignoreConstructorParameterOption struct{ ignore bool }

func (o ignoreConstructorParameterOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreConstructorParameter, o.ignore)
}

func (o ignoreConstructorParameterOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-constructor-parameter", o.ignore)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
