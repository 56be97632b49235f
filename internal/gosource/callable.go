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

package gosource

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/hiddenfield/internal/astutil"
	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// declarations are the nodes that declare local variables or start a nested function.
var declarations = []ast.Node{
	(*ast.AssignStmt)(nil),
	(*ast.DeclStmt)(nil),
	(*ast.FuncLit)(nil),
	(*ast.RangeStmt)(nil),
	(*ast.TypeSwitchStmt)(nil),
}

// callable converts a function or method declaration.
func (b *builder) callable(kind syntax.Kind, mods syntax.Modifiers, c inspector.Cursor, decl *ast.FuncDecl) *syntax.Node {
	body := syntax.New(syntax.Slist)
	b.results(body, decl.Type.Results)

	if decl.Body != nil {
		b.statements(body, c.ChildAt(edge.FuncDecl_Body, -1))
	}

	return syntax.New(kind).
		WithModifiers(mods).
		WithRange(decl.Pos(), decl.End()).
		Append(resultType(decl.Type), ident(decl.Name), parameters(decl.Type.Params), body)
}

func (b *builder) lambda(c inspector.Cursor, lit *ast.FuncLit) *syntax.Node {
	body := syntax.New(syntax.Slist)
	b.results(body, lit.Type.Results)
	b.statements(body, c.ChildAt(edge.FuncLit_Body, -1))

	return syntax.New(syntax.Lambda).
		WithRange(lit.Pos(), lit.End()).
		Append(parameters(lit.Type.Params), body)
}

// results adds named results as local variables.
func (b *builder) results(body *syntax.Node, results *ast.FieldList) {
	if results == nil {
		return
	}

	for _, field := range results.List {
		for _, name := range field.Names {
			local(body, name)
		}
	}
}

// statements adds the local variables declared in a function body, in source order.
func (b *builder) statements(body *syntax.Node, block inspector.Cursor) {
	block.Inspect(declarations, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			body.Append(b.lambda(c, n))

			return false

		case *ast.DeclStmt:
			for id := range astutil.DeclaredIdents(n) {
				local(body, id)
			}

		case *ast.AssignStmt:
			if n.Tok != token.DEFINE {
				break
			}

			for id := range astutil.AssignedIdents(n) {
				b.defined(body, id)
			}

		case *ast.RangeStmt:
			if n.Tok != token.DEFINE {
				break
			}

			b.defined(body, n.Key)
			b.defined(body, n.Value)

		case *ast.TypeSwitchStmt:
			// The symbolic variable of x := y.(type) has no definition in [types.Info.Defs]
			if assign, ok := n.Assign.(*ast.AssignStmt); ok && assign.Tok == token.DEFINE && len(assign.Lhs) == 1 {
				if id, ok := assign.Lhs[0].(*ast.Ident); ok {
					local(body, id)
				}
			}
		}

		return true
	})
}

// defined adds expr as a local variable when it is an identifier newly defined by a short variable declaration.
func (b *builder) defined(body *syntax.Node, expr ast.Expr) {
	id, ok := expr.(*ast.Ident)
	if !ok || b.info.Defs[id] == nil {
		return // reassigned or not an identifier
	}

	local(body, id)
}

func local(body *syntax.Node, id *ast.Ident) {
	if id.Name == "_" {
		return
	}

	body.Append(syntax.New(syntax.VariableDef).WithRange(id.Pos(), id.End()).Append(syntax.New(syntax.Type), ident(id)))
}

func field(name string, pos token.Pos, mods syntax.Modifiers) *syntax.Node {
	id := syntax.NewIdent(name, pos)

	return syntax.New(syntax.VariableDef).WithModifiers(mods).WithRange(id.Pos(), id.End()).Append(syntax.New(syntax.Type), id)
}

// parameters converts a parameter list. Unnamed parameters declare nothing and are omitted.
func parameters(list *ast.FieldList) *syntax.Node {
	params := syntax.New(syntax.Parameters)
	if list == nil {
		return params
	}

	params.WithRange(list.Pos(), list.End())

	for _, field := range list.List {
		for _, name := range field.Names {
			typ := syntax.New(syntax.Type).WithRange(field.Type.Pos(), field.Type.End())
			params.Append(syntax.New(syntax.ParameterDef).WithRange(name.Pos(), field.End()).Append(typ, ident(name)))
		}
	}

	return params
}

// resultType converts the results of a function into a type; no results is void.
func resultType(ft *ast.FuncType) *syntax.Node {
	typ := syntax.New(syntax.Type)

	if ft.Results == nil || ft.Results.NumFields() == 0 {
		return typ.WithRange(ft.Params.End(), ft.Params.End()).Append(syntax.New(syntax.LiteralVoid))
	}

	return typ.WithRange(ft.Results.Pos(), ft.Results.End())
}

func ident(id *ast.Ident) *syntax.Node {
	return syntax.NewIdent(id.Name, id.NamePos)
}
