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

package setter

type Person struct {
	name string
	age  int
}

func (p *Person) SetName(name string) {
	p.name = name
}

func (p *Person) setAge(age int) {
	p.age = age
}

func (p *Person) Setname(name string) { // want "'name' hides a field"
	p.name = name
}

func (p *Person) SetAge(age int) *Person { // want "'age' hides a field"
	p.age = age

	return p
}

func (p *Person) SetBoth(name string, age int) { // want "'name' hides a field" "'age' hides a field"
	p.name, p.age = name, age
}

func (p *Person) Rename(name string) { // want "'name' hides a field"
	p.name = name
}
