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

// Package walk drives checks over a syntax tree in depth-first order.
package walk

import "fillmore-labs.com/hiddenfield/internal/syntax"

// Check receives traversal callbacks.
type Check interface {
	// Accepts reports whether Visit and Leave should be called for nodes of this kind.
	Accepts(kind syntax.Kind) bool

	// BeginTree is called once before any node of a tree.
	BeginTree(root *syntax.Node)

	// Visit is called on entering an accepted node. An error skips the subtree of n.
	Visit(n *syntax.Node) error

	// Leave is called after all descendants of a successfully visited node.
	Leave(n *syntax.Node) error

	// FinishTree is called once after the last node of a tree.
	FinishTree(root *syntax.Node) error
}

// ErrorFunc handles a callback failure at node n.
type ErrorFunc func(n *syntax.Node, err error)

// Walk traverses the tree rooted at root, calling c in pre-order on entry and post-order on exit.
//
// Errors are handed to onError; the traversal continues with the next sibling of a failed node.
func Walk(root *syntax.Node, c Check, onError ErrorFunc) {
	if onError == nil {
		onError = func(*syntax.Node, error) {}
	}

	c.BeginTree(root)

	w := walker{check: c, onError: onError}
	w.walk(root)

	if err := c.FinishTree(root); err != nil {
		onError(root, err)
	}
}

type walker struct {
	check   Check
	onError ErrorFunc
}

func (w walker) walk(n *syntax.Node) {
	accepted := w.check.Accepts(n.Kind())
	if accepted {
		if err := w.check.Visit(n); err != nil {
			w.onError(n, err)

			return
		}
	}

	for c := range n.Children() {
		w.walk(c)
	}

	if accepted {
		if err := w.check.Leave(n); err != nil {
			w.onError(n, err)
		}
	}
}
