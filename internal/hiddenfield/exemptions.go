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
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// ignored reports whether an exemption suppresses a violation for decl.
func (c *Check) ignored(decl *syntax.Node, name string) bool {
	return c.ignoredByPattern(name) ||
		c.ignoredSetterParam(decl, name) ||
		c.ignoredConstructorParam(decl)
}

// ignoredByPattern reports whether name matches the configured ignore format.
func (c *Check) ignoredByPattern(name string) bool {
	return c.pattern.Match(name)
}

// ignoredSetterParam reports whether decl is the parameter of a property setter and setters are ignored.
//
// The setter for property "xyz" has one parameter "xyz", no result and is named "setXyz".
func (c *Check) ignoredSetterParam(decl *syntax.Node, name string) bool {
	if !c.ignoreSetter || decl.Kind() != syntax.ParameterDef {
		return false
	}

	params, method := enclosingCallable(decl)
	if params == nil || params.ChildCount() != 1 {
		return false
	}

	if method == nil || method.Kind() != syntax.MethodDef {
		return false
	}

	if !c.isSetterName(method.Name(), name) {
		return false
	}

	typ := method.FindFirst(syntax.Type)

	return typ != nil && typ.Contains(syntax.LiteralVoid)
}

// isSetterName reports whether methodName is a configured prefix followed by the capitalized property name.
func (c *Check) isSetterName(methodName, name string) bool {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return false
	}

	capitalized := string(unicode.ToUpper(r)) + name[size:]

	for _, prefix := range c.setterPrefixes {
		if methodName == prefix+capitalized {
			return true
		}
	}

	return false
}

// ignoredConstructorParam reports whether decl is a constructor parameter and those are ignored.
func (c *Check) ignoredConstructorParam(decl *syntax.Node) bool {
	if !c.ignoreConstructorParameter || decl.Kind() != syntax.ParameterDef {
		return false
	}

	_, ctor := enclosingCallable(decl)

	return ctor != nil && ctor.Kind() == syntax.CtorDef
}
