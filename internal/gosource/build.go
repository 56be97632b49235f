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
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// builder holds the state of converting one file.
type builder struct {
	info *types.Info
	pkg  *types.Package

	// members is the member list of the package class.
	members *syntax.Node

	// classes maps named types to the member lists of their classes.
	classes map[*types.TypeName]*syntax.Node
}

// Build converts the file at cursor into a syntax tree, using type information of its package.
func Build(info *types.Info, pkg *types.Package, file inspector.Cursor) *syntax.Node {
	f := file.Node().(*ast.File)

	b := builder{
		info:    info,
		pkg:     pkg,
		members: syntax.New(syntax.ObjBlock).WithRange(f.Name.End(), f.FileEnd),
		classes: make(map[*types.TypeName]*syntax.Node),
	}

	b.packageFields()

	for c := range file.Children() {
		switch decl := c.Node().(type) {
		case *ast.GenDecl:
			b.genDecl(c, decl)

		case *ast.FuncDecl:
			b.funcDecl(c, decl)
		}
	}

	class := syntax.New(syntax.ClassDef).
		WithModifiers(syntax.Static).
		WithRange(f.Package, f.FileEnd).
		Append(ident(f.Name), b.members)

	return syntax.New(syntax.CompilationUnit).WithRange(f.FileStart, f.FileEnd).Append(class)
}

// packageFields adds all package-level variables and constants as static fields.
func (b *builder) packageFields() {
	if b.pkg == nil {
		return
	}

	scope := b.pkg.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name); obj.(type) {
		case *types.Var, *types.Const:
			if name == "_" {
				continue
			}

			b.members.Append(field(name, obj.Pos(), syntax.Static))
		}
	}
}

func (b *builder) genDecl(c inspector.Cursor, decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		if spec, ok := spec.(*ast.TypeSpec); ok {
			b.typeSpec(spec)
		}
	}

	// Function literals in package-level initializers
	c.Inspect([]ast.Node{(*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
		b.members.Append(b.lambda(c, c.Node().(*ast.FuncLit)))

		return false
	})
}

func (b *builder) typeSpec(spec *ast.TypeSpec) {
	if spec.Assign.IsValid() {
		return // alias
	}

	if it, ok := spec.Type.(*ast.InterfaceType); ok {
		b.members.Append(b.iface(spec, it))

		return
	}

	tn, ok := b.info.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return
	}

	if _, ok := tn.Type().Underlying().(*types.Struct); ok {
		b.class(tn)
	}
}

// class returns the member list of the class for a named type, creating it on first use.
func (b *builder) class(tn *types.TypeName) *syntax.Node {
	if members, ok := b.classes[tn]; ok {
		return members
	}

	members := syntax.New(syntax.ObjBlock)

	if s, ok := tn.Type().Underlying().(*types.Struct); ok {
		for i := range s.NumFields() {
			if f := s.Field(i); f.Name() != "_" {
				members.Append(field(f.Name(), f.Pos(), 0))
			}
		}
	}

	class := syntax.New(syntax.ClassDef).
		WithRange(tn.Pos(), tn.Pos()).
		Append(syntax.NewIdent(tn.Name(), tn.Pos()), members)

	b.members.Append(class)
	b.classes[tn] = members

	return members
}

func (b *builder) iface(spec *ast.TypeSpec, it *ast.InterfaceType) *syntax.Node {
	members := syntax.New(syntax.ObjBlock)

	for _, m := range it.Methods.List {
		ft, ok := m.Type.(*ast.FuncType)
		if !ok || len(m.Names) == 0 {
			continue // embedded interface or type constraint
		}

		method := syntax.New(syntax.MethodDef).
			WithRange(m.Pos(), m.End()).
			Append(resultType(ft), ident(m.Names[0]), parameters(ft.Params))

		members.Append(method)
	}

	return syntax.New(syntax.InterfaceDef).
		WithRange(spec.Pos(), spec.End()).
		Append(ident(spec.Name), members)
}

func (b *builder) funcDecl(c inspector.Cursor, decl *ast.FuncDecl) {
	fn, _ := b.info.Defs[decl.Name].(*types.Func)

	switch {
	case decl.Recv != nil:
		members := b.members
		if tn := receiverType(fn); tn != nil {
			members = b.class(tn)
		}

		members.Append(b.callable(syntax.MethodDef, 0, c, decl))

	case decl.Name.Name == "init":
		body := syntax.New(syntax.Slist)
		b.statements(body, c.ChildAt(edge.FuncDecl_Body, -1))

		b.members.Append(syntax.New(syntax.StaticInit).WithRange(decl.Pos(), decl.End()).Append(body))

	default:
		if tn := b.constructed(fn); tn != nil {
			b.class(tn).Append(b.callable(syntax.CtorDef, 0, c, decl))

			return
		}

		b.members.Append(b.callable(syntax.MethodDef, syntax.Static, c, decl))
	}
}

// receiverType returns the named type of a method receiver.
func receiverType(fn *types.Func) *types.TypeName {
	if fn == nil {
		return nil
	}

	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return nil
	}

	return namedType(recv.Type())
}

// constructed returns the type a constructor function New<T> or new<T> creates.
func (b *builder) constructed(fn *types.Func) *types.TypeName {
	if fn == nil {
		return nil
	}

	name, ok := strings.CutPrefix(fn.Name(), "New")
	if !ok {
		name, ok = strings.CutPrefix(fn.Name(), "new")
	}

	if !ok || name == "" {
		return nil
	}

	results := fn.Type().(*types.Signature).Results()
	if results.Len() == 0 {
		return nil
	}

	tn := namedType(results.At(0).Type())
	if tn == nil || tn.Pkg() != b.pkg || !strings.EqualFold(tn.Name(), name) {
		return nil
	}

	return tn
}

// namedType returns the declaration of a named type T or *T.
func namedType(t types.Type) *types.TypeName {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	if n, ok := types.Unalias(t).(*types.Named); ok {
		return n.Origin().Obj()
	}

	return nil
}
