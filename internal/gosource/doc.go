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

// Package gosource maps Go source files onto [syntax] trees.
//
// # Mapping
//
// The package becomes a static class whose fields are the package-level variables and constants. Named
// types with methods and struct types become nested classes with their struct fields as instance fields
// and their methods as instance methods. Functions named New<T> or new<T> returning T or *T are
// constructors of T, func init is a static initializer and all other functions are static methods of the
// package class. Interface types become interface definitions.
//
// Function bodies are flattened into one statement list per function, holding the declared local
// variables in source order. Function literals become lambdas with their own parameters and statements.
package gosource
