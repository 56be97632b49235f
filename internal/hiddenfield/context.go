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

import "fillmore-labs.com/hiddenfield/internal/syntax"

// inStatic reports whether a declaration is in a static method or a static initializer.
//
// The search walks syntactic ancestors, independent of the static flags of the frame chain. It ends at the
// nearest callable or class-like boundary; anonymous functions are transparent.
func inStatic(n *syntax.Node) bool {
	for p := range n.Ancestors() {
		switch p.Kind() {
		case syntax.StaticInit:
			return true

		case syntax.MethodDef:
			return p.Modifiers().Has(syntax.Static)

		case syntax.CtorDef, syntax.ClassDef, syntax.InterfaceDef:
			return false
		}
	}

	return false
}

// inInterfaceBlock reports whether n is declared in an interface rather than a class.
func inInterfaceBlock(n *syntax.Node) bool {
	for p := range n.Ancestors() {
		switch p.Kind() {
		case syntax.ClassDef:
			return false

		case syntax.InterfaceDef:
			return true
		}
	}

	return false
}

// isLocalVariable reports whether a variable definition is a local variable, not a field.
func isLocalVariable(n *syntax.Node) bool {
	p := n.Parent()

	return p != nil && p.Kind() == syntax.Slist
}

// enclosingCallable returns the parameter list of a parameter and the definition owning it.
func enclosingCallable(param *syntax.Node) (params, callable *syntax.Node) {
	params = param.Parent()
	if params == nil || params.Kind() != syntax.Parameters {
		return nil, nil
	}

	return params, params.Parent()
}
