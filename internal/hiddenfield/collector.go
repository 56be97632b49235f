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

// collectFields builds the frame of a class-like definition from its direct members.
//
// Nested class-like members are not flattened, they build their own frame when entered.
func collectFields(class *syntax.Node) (*Frame, error) {
	objBlock := class.FindFirst(syntax.ObjBlock)
	if objBlock == nil {
		return nil, fmt.Errorf("%w: %s %q without member list", ErrMalformed, class.Kind(), class.Name())
	}

	frame := NewFrame(class.Modifiers().Has(syntax.Static))

	for member := range objBlock.Children() {
		if member.Kind() != syntax.VariableDef {
			continue
		}

		id := member.FindFirst(syntax.Ident)
		if id == nil {
			return nil, fmt.Errorf("%w: field of %q without identifier", ErrMalformed, class.Name())
		}

		if member.Modifiers().Has(syntax.Static) {
			frame.AddStaticField(id.Text())
		} else {
			frame.AddInstanceField(id.Text())
		}
	}

	return frame, nil
}
