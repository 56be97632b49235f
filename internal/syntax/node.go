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

import (
	"go/token"
	"iter"
)

// Modifiers is the modifier set of a declaration.
type Modifiers uint8

// Static marks a static declaration.
const Static Modifiers = 1 << iota

// Has reports whether all modifiers in m2 are present in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Node is an element of a syntax tree.
//
// Nodes are assembled by a frontend with [New] and [Node.Append] and are read-only afterwards.
type Node struct {
	kind Kind
	mods Modifiers
	text string

	pos, end token.Pos

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	nextSibling *Node
	childCount  int
}

// New creates a detached node of the given kind.
func New(kind Kind) *Node {
	return &Node{kind: kind}
}

// NewIdent creates an [Ident] node for name starting at pos.
func NewIdent(name string, pos token.Pos) *Node {
	n := &Node{kind: Ident, text: name, pos: pos}
	if pos.IsValid() {
		n.end = pos + token.Pos(len(name))
	}

	return n
}

// WithRange sets the source range of n and returns n.
func (n *Node) WithRange(pos, end token.Pos) *Node {
	n.pos, n.end = pos, end

	return n
}

// WithModifiers sets the modifier set of n and returns n.
func (n *Node) WithModifiers(mods Modifiers) *Node {
	n.mods = mods

	return n
}

// Append adds children to n, in order, and returns n.
//
// A child must be detached; appending a node that already has a parent panics.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c.parent != nil {
			panic("syntax: node " + c.kind.String() + " already has a parent")
		}

		c.parent = n
		if n.lastChild == nil {
			n.firstChild = c
		} else {
			n.lastChild.nextSibling = c
		}

		n.lastChild = c
		n.childCount++
	}

	return n
}

// Kind returns the kind of n.
func (n *Node) Kind() Kind { return n.kind }

// Modifiers returns the modifier set of n.
func (n *Node) Modifiers() Modifiers { return n.mods }

// Text returns the name of an [Ident] node.
func (n *Node) Text() string { return n.text }

// Pos returns the start of n in the source.
func (n *Node) Pos() token.Pos { return n.pos }

// End returns the end of n in the source.
func (n *Node) End() token.Pos { return n.end }

// Parent returns the parent of n, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child of n, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// NextSibling returns the next sibling of n, or nil.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// ChildCount returns the number of direct children of n.
func (n *Node) ChildCount() int { return n.childCount }

// Children yields the direct children of n in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.firstChild; c != nil; c = c.nextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors yields the parent chain of n, innermost first, excluding n itself.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// FindFirst returns the first direct child of the given kind, or nil.
func (n *Node) FindFirst(kind Kind) *Node {
	for c := range n.Children() {
		if c.kind == kind {
			return c
		}
	}

	return nil
}

// Contains reports whether any descendant of n has the given kind.
func (n *Node) Contains(kind Kind) bool {
	for c := range n.Children() {
		if c.kind == kind || c.Contains(kind) {
			return true
		}
	}

	return false
}

// Name returns the text of the first [Ident] child of n, or "" when there is none.
func (n *Node) Name() string {
	if id := n.FindFirst(Ident); id != nil {
		return id.text
	}

	return ""
}
