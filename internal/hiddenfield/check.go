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
	"slices"

	"fillmore-labs.com/hiddenfield/analyzer/tokens"
	"fillmore-labs.com/hiddenfield/internal/syntax"
)

// Config holds the settings of a [Check]. It is read once by [New].
type Config struct {
	// Tokens selects the declaration kinds to check.
	Tokens tokens.Token

	// IgnoreFormat suppresses violations for names containing a match. Empty disables it.
	IgnoreFormat string

	// IgnoreSetter suppresses violations for the parameter of a property setter.
	IgnoreSetter bool

	// IgnoreConstructorParameter suppresses violations for constructor parameters.
	IgnoreConstructorParameter bool

	// SetterPrefixes are the method name prefixes of property setters. Defaults to "set".
	SetterPrefixes []string
}

// Check finds local variables and parameters shadowing fields.
//
// A Check keeps the scope state of a single traversal and must not be shared between concurrent traversals.
type Check struct {
	tokens  tokens.Token
	pattern Pattern

	ignoreSetter               bool
	ignoreConstructorParameter bool
	setterPrefixes             []string

	scopes   *Scopes
	reporter Reporter
}

// New creates a [Check] reporting to r.
//
// An invalid ignore format is a configuration error; no Check is created.
func New(cfg Config, r Reporter) (*Check, error) {
	pattern, err := CompilePattern(cfg.IgnoreFormat)
	if err != nil {
		return nil, err
	}

	prefixes := slices.Clone(cfg.SetterPrefixes)
	if len(prefixes) == 0 {
		prefixes = []string{"set"}
	}

	c := &Check{
		tokens:                     cfg.Tokens,
		pattern:                    pattern,
		ignoreSetter:               cfg.IgnoreSetter,
		ignoreConstructorParameter: cfg.IgnoreConstructorParameter,
		setterPrefixes:             prefixes,
		scopes:                     NewScopes(),
		reporter:                   r,
	}

	return c, nil
}

// Accepts reports whether the check wants callbacks for nodes of the given kind.
//
// Class definitions are always required, since their fields populate the frames.
func (c *Check) Accepts(kind syntax.Kind) bool {
	switch kind {
	case syntax.ClassDef:
		return true

	case syntax.VariableDef:
		return c.tokens.Has(tokens.Variable)

	case syntax.ParameterDef:
		return c.tokens.Has(tokens.Parameter)

	default:
		return false
	}
}

// BeginTree resets the scope state before the first node of a tree is visited.
func (c *Check) BeginTree(*syntax.Node) {
	c.scopes.Reset()
}

// Visit is called on entering an accepted node.
func (c *Check) Visit(n *syntax.Node) error {
	switch n.Kind() {
	case syntax.ClassDef:
		frame, err := collectFields(n)
		if err != nil {
			return err
		}

		c.scopes.Enter(frame)

		return nil

	case syntax.VariableDef, syntax.ParameterDef:
		return c.processVariable(n)

	default:
		return fmt.Errorf("%w: visit %s", ErrUnexpectedKind, n.Kind())
	}
}

// Leave is called after all descendants of a successfully visited node.
func (c *Check) Leave(n *syntax.Node) error {
	switch n.Kind() {
	case syntax.ClassDef:
		c.scopes.Leave()

		return nil

	case syntax.VariableDef, syntax.ParameterDef:
		return nil

	default:
		return fmt.Errorf("%w: leave %s", ErrUnexpectedKind, n.Kind())
	}
}

// FinishTree verifies that every class entered was left.
func (c *Check) FinishTree(*syntax.Node) error {
	if d := c.scopes.Depth(); d != 0 {
		return fmt.Errorf("%w: %d frames open after traversal", ErrUnbalanced, d)
	}

	return nil
}

// processVariable reports a local variable or parameter that shadows a visible field.
func (c *Check) processVariable(decl *syntax.Node) error {
	if inInterfaceBlock(decl) {
		return nil
	}

	if decl.Kind() == syntax.VariableDef && !isLocalVariable(decl) {
		return nil // field
	}

	id := decl.FindFirst(syntax.Ident)
	if id == nil {
		return fmt.Errorf("%w: %s without identifier", ErrMalformed, decl.Kind())
	}

	name := id.Text()

	if !c.hidesField(decl, name) || c.ignored(decl, name) {
		return nil
	}

	c.reporter.Report(Violation{Ident: id, Key: MessageKey, Name: name})

	return nil
}

// hidesField reports whether name is a field visible from decl.
//
// Static fields are visible in any context, instance fields only outside static methods and initializers.
func (c *Check) hidesField(decl *syntax.Node, name string) bool {
	return c.scopes.ContainsStaticField(name) ||
		(!inStatic(decl) && c.scopes.ContainsInstanceField(name))
}
