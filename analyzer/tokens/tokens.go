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

// Package tokens defines which declarations the hiddenfield analyzer checks.
package tokens

import (
	"fmt"
	"strings"
)

// Token is a set of declaration kinds to check.
type Token uint8

const (
	// Variable selects local variable declarations.
	Variable Token = 1 << iota

	// Parameter selects parameter declarations.
	Parameter

	// None selects nothing.
	None Token = 0

	// All selects every declaration kind.
	All = Variable | Parameter
)

// Has reports whether all declaration kinds of o are selected in t.
func (t Token) Has(o Token) bool { return t&o == o }

// String returns the comma separated text form of t.
func (t Token) String() string {
	text, err := t.MarshalText()
	if err != nil {
		return fmt.Sprintf("Token(%d)", uint8(t))
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Token) MarshalText() ([]byte, error) {
	if t&^All != 0 {
		return nil, fmt.Errorf("unknown tokens %d", uint8(t))
	}

	var names []string
	if t.Has(Variable) {
		names = append(names, "variable")
	}

	if t.Has(Parameter) {
		names = append(names, "parameter")
	}

	if len(names) == 0 {
		return []byte("none"), nil
	}

	return []byte(strings.Join(names, ",")), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Token) UnmarshalText(text []byte) error {
	var value Token

	for name := range strings.SplitSeq(string(text), ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "variable", "variable_def", "var":
			value |= Variable

		case "parameter", "parameter_def", "param":
			value |= Parameter

		case "all":
			value |= All

		case "none", "":

		default:
			return fmt.Errorf("unknown token %q", name)
		}
	}

	*t = value

	return nil
}
