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

package run

import (
	"fillmore-labs.com/hiddenfield/analyzer/tokens"
	"fillmore-labs.com/hiddenfield/internal/config"
	"fillmore-labs.com/hiddenfield/internal/hiddenfield"
)

// Options represent configuration options for the hiddenfield analyzer.
type Options struct {
	// Tokens selects the declaration kinds to check.
	Tokens tokens.Token

	// Behavior holds exemptions and file selection options.
	Behavior config.BitMask[config.Behavior]

	// IgnoreFormat is a regular expression for names that are never reported.
	IgnoreFormat string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Tokens:   tokens.All,
		Behavior: config.DefaultBehavior(),
	}
}

// setterPrefixes are the method name prefixes of unexported and exported Go setters.
var setterPrefixes = []string{"set", "Set"}

// CheckConfig returns the configuration of a [hiddenfield.Check] for these options.
func (o *Options) CheckConfig() hiddenfield.Config {
	return hiddenfield.Config{
		Tokens:                     o.Tokens,
		IgnoreFormat:               o.IgnoreFormat,
		IgnoreSetter:               o.Behavior.Enabled(config.IgnoreSetter),
		IgnoreConstructorParameter: o.Behavior.Enabled(config.IgnoreConstructorParameter),
		SetterPrefixes:             setterPrefixes,
	}
}
