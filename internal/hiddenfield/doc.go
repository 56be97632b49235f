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

// Package hiddenfield reports local variables and parameters that shadow a field of an enclosing class.
//
// A [Check] is driven by a depth-first traversal of a [syntax.Node] tree. Entering a class-like
// definition collects its fields into a [Frame] and pushes it onto [Scopes]; variable and parameter
// declarations are looked up in the frame chain and reported unless an exemption applies.
//
// Instance fields are only visible up to and including the nearest static frame, while static fields
// are visible from every nesting level.
package hiddenfield
