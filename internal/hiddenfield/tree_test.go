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

package hiddenfield_test

import (
	"go/token"

	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// treeBuilder assembles Java-like syntax trees with distinct identifier positions.
type treeBuilder struct {
	pos token.Pos
}

func (b *treeBuilder) ident(name string) *syntax.Node {
	b.pos += 100

	return syntax.NewIdent(name, b.pos)
}

func modifiers(static bool) syntax.Modifiers {
	if static {
		return syntax.Static
	}

	return 0
}

func (b *treeBuilder) unit(members ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.CompilationUnit).Append(members...)
}

func (b *treeBuilder) class(name string, static bool, members ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.ClassDef).
		WithModifiers(modifiers(static)).
		Append(b.ident(name), syntax.New(syntax.ObjBlock).Append(members...))
}

func (b *treeBuilder) iface(name string, members ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.InterfaceDef).
		Append(b.ident(name), syntax.New(syntax.ObjBlock).Append(members...))
}

func (b *treeBuilder) field(name string, static bool) *syntax.Node {
	return syntax.New(syntax.VariableDef).
		WithModifiers(modifiers(static)).
		Append(syntax.New(syntax.Type), b.ident(name))
}

func (b *treeBuilder) local(name string) *syntax.Node {
	return syntax.New(syntax.VariableDef).Append(syntax.New(syntax.Type), b.ident(name))
}

func (b *treeBuilder) param(name string) *syntax.Node {
	return syntax.New(syntax.ParameterDef).Append(syntax.New(syntax.Type), b.ident(name))
}

func (b *treeBuilder) params(names ...string) []*syntax.Node {
	ps := make([]*syntax.Node, 0, len(names))
	for _, name := range names {
		ps = append(ps, b.param(name))
	}

	return ps
}

func returnType(void bool) *syntax.Node {
	typ := syntax.New(syntax.Type)
	if void {
		typ.Append(syntax.New(syntax.LiteralVoid))
	}

	return typ
}

func (b *treeBuilder) method(name string, static, void bool, params []*syntax.Node, body ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.MethodDef).
		WithModifiers(modifiers(static)).
		Append(
			returnType(void),
			b.ident(name),
			syntax.New(syntax.Parameters).Append(params...),
			syntax.New(syntax.Slist).Append(body...),
		)
}

func (b *treeBuilder) ctor(name string, params []*syntax.Node, body ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.CtorDef).
		Append(
			b.ident(name),
			syntax.New(syntax.Parameters).Append(params...),
			syntax.New(syntax.Slist).Append(body...),
		)
}

func (b *treeBuilder) staticInit(body ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.StaticInit).Append(syntax.New(syntax.Slist).Append(body...))
}

func (b *treeBuilder) lambda(params []*syntax.Node, body ...*syntax.Node) *syntax.Node {
	return syntax.New(syntax.Lambda).
		Append(
			syntax.New(syntax.Parameters).Append(params...),
			syntax.New(syntax.Slist).Append(body...),
		)
}
