// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the hiddenfield static analysis pass.
//
// # Overview
//
// hiddenfield reports local variables and parameters that hide a field. A struct type, or
// any named type with methods, acts as a class: its fields are instance fields, and its methods
// and constructors (functions New<T> or new<T> returning T or *T) see them. Package-level
// variables and constants are static fields visible from every function in the package.
//
// # Example
//
//	type Server struct {
//	    addr string
//	}
//
//	func (s *Server) Listen(addr string) error { // 'addr' hides a field
//	    ...
//	}
//
// # Exemptions
//
//   - ignore-setter: the single parameter of a setter, a method SetX or setX without results
//     whose parameter is named x.
//   - ignore-constructor-parameter: all parameters of constructors.
//   - ignore-format: names matching a regular expression.
//   - tokens: restrict the check to local variables or parameters.
//
// Diagnostics can be suppressed with a //nolint:hiddenfield comment on the line or on the
// enclosing function declaration.
package analyzer
