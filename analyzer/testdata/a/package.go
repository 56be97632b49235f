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

package a

import "fmt"

func init() {
	counter := limit // want "'counter' hides a field"
	_ = counter
}

func count() int {
	counter := 0 // want "'counter' hides a field"

	for limit := range 3 { // want "'limit' hides a field"
		counter += limit
	}

	return counter
}

func describe(v any) string {
	switch limit := v.(type) { // want "'limit' hides a field"
	case int:
		return fmt.Sprint(limit + 1)

	default:
		return fmt.Sprint(limit)
	}
}

func apply() {
	func(counter int) { // want "'counter' hides a field"
		_ = counter
	}(1)
}

func reassign() int {
	counter := limit // want "'counter' hides a field"

	total, counter := 1, 2

	return total + counter
}

var handler = func(limit int) int { // want "'limit' hides a field"
	return limit
}

func local() {
	const counter = 1 // want "'counter' hides a field"

	var (
		limit = counter // want "'limit' hides a field"
		other = limit
	)

	_ = other
}
