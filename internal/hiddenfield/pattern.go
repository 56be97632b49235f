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

package hiddenfield

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled ignore format. The zero value matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// CompilePattern compiles an ignore format. An empty format yields the zero [Pattern].
func CompilePattern(format string) (Pattern, error) {
	if format == "" {
		return Pattern{}, nil
	}

	re, err := regexp.Compile(format)
	if err != nil {
		return Pattern{}, fmt.Errorf("unable to parse %q: %w", format, err)
	}

	return Pattern{re: re}, nil
}

// Match reports whether name contains a match of p.
func (p Pattern) Match(name string) bool {
	return p.re != nil && p.re.MatchString(name)
}

// String returns the source text of p.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}

	return p.re.String()
}
