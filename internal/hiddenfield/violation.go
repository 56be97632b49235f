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

	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// MessageKey identifies hidden field violations.
const MessageKey = "hidden.field"

// Violation is a declaration that shadows a field.
type Violation struct {
	// Ident is the identifier of the shadowing declaration.
	Ident *syntax.Node

	// Key is the message key, always [MessageKey].
	Key string

	// Name is the name of the shadowed field.
	Name string
}

// Message returns the human-readable description of v.
func (v Violation) Message() string {
	return fmt.Sprintf("'%s' hides a field", v.Name)
}

// Reporter receives violations in the order they are found.
type Reporter interface {
	Report(v Violation)
}

// ReporterFunc adapts a function to a [Reporter].
type ReporterFunc func(v Violation)

// Report calls f(v).
func (f ReporterFunc) Report(v Violation) { f(v) }
