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

package syntax

// Kind tags a [Node] with its syntactic role.
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	// Invalid is the zero Kind and never appears in a well-formed tree.
	Invalid Kind = iota

	// CompilationUnit is the root of a tree.
	CompilationUnit

	// ClassDef is a class-like definition whose fields can be shadowed.
	ClassDef

	// InterfaceDef is an interface-like definition.
	InterfaceDef

	// ObjBlock is the member list of a class-like or interface-like definition.
	ObjBlock

	// VariableDef declares a field or a local variable.
	VariableDef

	// ParameterDef declares a parameter.
	ParameterDef

	// Parameters is the parameter list of a callable.
	Parameters

	// MethodDef is a method definition.
	MethodDef

	// CtorDef is a constructor definition.
	CtorDef

	// StaticInit is a static initializer block.
	StaticInit

	// Slist is a statement list.
	Slist

	// Lambda is an anonymous function.
	Lambda

	// Ident is an identifier; its [Node.Text] is the name.
	Ident

	// Type is the declared type of a variable, parameter or the return type of a method.
	Type

	// LiteralVoid marks the no-value type inside a [Type].
	LiteralVoid
)
