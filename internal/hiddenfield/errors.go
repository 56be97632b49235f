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

import "errors"

var (
	// ErrMalformed indicates a syntax tree that lacks a node the check depends on.
	ErrMalformed = errors.New("malformed syntax tree")

	// ErrUnexpectedKind indicates a callback for a node kind the check did not ask for.
	ErrUnexpectedKind = errors.New("unexpected node kind")

	// ErrUnbalanced indicates a traversal that did not leave every class it entered.
	ErrUnbalanced = errors.New("unbalanced scopes")
)
