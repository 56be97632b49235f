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

package syntax_test

import (
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/hiddenfield/internal/syntax"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	a, b, c := NewIdent("a", 1), New(Type), NewIdent("c", 5)
	parent := New(VariableDef).Append(a, b).Append(c)

	if got, want := parent.ChildCount(), 3; got != want {
		t.Fatalf("Got %d children, expected %d", got, want)
	}

	if got := slices.Collect(parent.Children()); !slices.Equal(got, []*Node{a, b, c}) {
		t.Errorf("Got children %v, expected a, b, c", got)
	}

	if parent.FirstChild() != a || a.NextSibling() != b || b.NextSibling() != c || c.NextSibling() != nil {
		t.Error("Sibling chain broken")
	}

	for _, n := range []*Node{a, b, c} {
		if n.Parent() != parent {
			t.Errorf("Parent of %s is %v, expected %v", n.Kind(), n.Parent(), parent)
		}
	}
}

func TestAppendAttached(t *testing.T) {
	t.Parallel()

	id := NewIdent("x", token.NoPos)
	New(VariableDef).Append(id)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when appending an attached node")
		}
	}()

	New(ParameterDef).Append(id)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	void := New(LiteralVoid)
	param := New(ParameterDef).Append(NewIdent("age", 20))
	method := New(MethodDef).
		WithModifiers(Static).
		Append(New(Type).Append(void), NewIdent("setAge", 10), New(Parameters).Append(param))

	if got, want := method.Name(), "setAge"; got != want {
		t.Errorf("Got name %q, expected %q", got, want)
	}

	if !method.Contains(LiteralVoid) {
		t.Error("Expected method to contain LiteralVoid")
	}

	if method.Contains(CtorDef) {
		t.Error("Did not expect method to contain CtorDef")
	}

	if method.FindFirst(Slist) != nil {
		t.Error("Did not expect a statement list")
	}

	if !method.Modifiers().Has(Static) {
		t.Error("Expected static modifier")
	}

	got := slices.Collect(param.Ancestors())
	if want := []*Node{method.FindFirst(Parameters), method}; !slices.Equal(got, want) {
		t.Errorf("Got ancestors %v, expected %v", got, want)
	}

	id := param.FindFirst(Ident)
	if id.Pos() != 20 || id.End() != 23 {
		t.Errorf("Got range %d-%d, expected 20-23", id.Pos(), id.End())
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{ClassDef, "ClassDef"},
		{LiteralVoid, "LiteralVoid"},
		{Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Got %q, expected %q", got, tt.want)
		}
	}
}
