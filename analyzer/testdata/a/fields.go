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

var counter int

const limit = 10

type Point struct {
	X, Y int
	name string
}

func (p *Point) Move(X int) { // want "'X' hides a field"
	Y := X + 1 // want "'Y' hides a field"
	p.X, p.Y = X, Y
}

func (p *Point) SetName(name string) { // want "'name' hides a field"
	p.name = name
}

func NewPoint(X, Y int) *Point { // want "'X' hides a field" "'Y' hides a field"
	return &Point{X: X, Y: Y}
}

func (p Point) String() (name string) { // want "'name' hides a field"
	name = fmt.Sprintf("%s(%d,%d)", p.name, p.X, p.Y)

	return name
}

func (p *Point) Each(f func(int)) {
	visit := func(X int) { // want "'X' hides a field"
		f(X)
	}

	visit(p.X)
	visit(p.Y)
}

func (p *Point) Scale(factor int) {
	x, y := p.X*factor, p.Y*factor
	p.X, p.Y = x, y
}

// Instance fields are not visible from package functions.
func unrelated(p *Point) string {
	var name string

	X, Y := p.X, p.Y
	name = fmt.Sprint(X, Y)

	return name
}

func ignored(_ int, _ string) {}

type Labeled struct {
	Point
	label string
}

func (l *Labeled) Relabel(label string) { // want "'label' hides a field"
	l.label = label
}

type Box[T any] struct {
	value T
}

func NewBox[T any](value T) *Box[T] { // want "'value' hides a field"
	return &Box[T]{value: value}
}

func (b *Box[T]) Put(value T) { // want "'value' hides a field"
	b.value = value
}

type Shape interface {
	Area(X, Y int) float64
	Name() (name string)
}

type Celsius float64

func (c Celsius) Fahrenheit() float64 {
	limit := float64(c)*9/5 + 32 // want "'limit' hides a field"

	return limit
}
