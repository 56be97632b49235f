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

package gclplugin

import (
	"fmt"

	hiddenfield "fillmore-labs.com/hiddenfield/analyzer"
	"fillmore-labs.com/hiddenfield/analyzer/tokens"
	check "fillmore-labs.com/hiddenfield/internal/hiddenfield"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Tokens selects the declarations to check.
	Tokens *tokens.Token `json:"tokens,omitzero"`
	// IgnoreFormat is a regular expression for names that are never reported.
	IgnoreFormat *string `json:"ignore-format,omitzero"`
	// IgnoreSetter ignores the parameter of setter methods.
	IgnoreSetter *bool `json:"ignore-setter,omitzero"`
	// IgnoreConstructorParameter ignores constructor parameters.
	IgnoreConstructorParameter *bool `json:"ignore-constructor-parameter,omitzero"`
}

// Validate checks the settings for errors that would otherwise only surface during analysis.
func (s Settings) Validate() error {
	if s.IgnoreFormat == nil {
		return nil
	}

	if _, err := check.CompilePattern(*s.IgnoreFormat); err != nil {
		return fmt.Errorf("hiddenfield: invalid ignore-format: %w", err)
	}

	return nil
}

// Options converts [Settings] into a list of [hiddenfield.Option] for the hiddenfield analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []hiddenfield.Option {
	var opts []hiddenfield.Option

	opts = appendOption(opts, s.Tokens, hiddenfield.WithTokens)
	opts = appendOption(opts, s.IgnoreFormat, hiddenfield.WithIgnoreFormat)
	opts = appendOption(opts, s.IgnoreSetter, hiddenfield.WithIgnoreSetter)
	opts = appendOption(opts, s.IgnoreConstructorParameter, hiddenfield.WithIgnoreConstructorParameter)

	return opts
}

// appendOption appends a non-nil setting to a [hiddenfield.Option] list.
func appendOption[T any](opts []hiddenfield.Option, value *T, constructor func(T) hiddenfield.Option) []hiddenfield.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
