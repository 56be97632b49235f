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

// Frame holds the field names declared at one class-like nesting level.
type Frame struct {
	// static marks a frame that can't see the instance fields of enclosing frames.
	static bool

	instanceFields map[string]struct{}
	staticFields   map[string]struct{}
}

// NewFrame creates an empty [Frame].
func NewFrame(static bool) *Frame {
	return &Frame{
		static:         static,
		instanceFields: make(map[string]struct{}),
		staticFields:   make(map[string]struct{}),
	}
}

// Static reports whether f is a static scope.
func (f *Frame) Static() bool { return f.static }

// AddInstanceField records an instance field name.
func (f *Frame) AddInstanceField(name string) { f.instanceFields[name] = struct{}{} }

// AddStaticField records a static field name.
func (f *Frame) AddStaticField(name string) { f.staticFields[name] = struct{}{} }

// HasInstanceField reports whether name is an instance field of this frame alone.
func (f *Frame) HasInstanceField(name string) bool {
	_, ok := f.instanceFields[name]

	return ok
}

// HasStaticField reports whether name is a static field of this frame alone.
func (f *Frame) HasStaticField(name string) bool {
	_, ok := f.staticFields[name]

	return ok
}

// Scopes is the stack of [Frame]s of the currently open class-like definitions.
//
// The last frame is current; the frame before it is its parent. The first frame is a synthetic static
// root for the compilation unit.
type Scopes struct {
	frames []*Frame
}

// NewScopes creates a [Scopes] holding only the root frame.
func NewScopes() *Scopes {
	s := &Scopes{}
	s.Reset()

	return s
}

// Reset discards all frames and installs a fresh root frame.
func (s *Scopes) Reset() {
	clear(s.frames)
	s.frames = append(s.frames[:0], NewFrame(true))
}

// Enter makes a fully collected frame current.
func (s *Scopes) Enter(f *Frame) {
	s.frames = append(s.frames, f)
}

// Leave restores the parent of the current frame.
//
// Leaving the root frame breaks the traversal contract and panics.
func (s *Scopes) Leave() {
	n := len(s.frames) - 1
	if n < 1 {
		panic("hiddenfield: leaving root scope")
	}

	s.frames[n] = nil
	s.frames = s.frames[:n]
}

// Depth returns the number of frames entered and not yet left.
func (s *Scopes) Depth() int {
	return len(s.frames) - 1
}

// Current returns the current frame.
func (s *Scopes) Current() *Frame {
	return s.frames[len(s.frames)-1]
}

// ContainsInstanceField reports whether name is a visible instance field.
//
// The search stops at the nearest static frame after consulting that frame's own fields.
func (s *Scopes) ContainsInstanceField(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.HasInstanceField(name) {
			return true
		}

		if f.static {
			return false
		}
	}

	return false
}

// ContainsStaticField reports whether name is a static field of any open frame.
func (s *Scopes) ContainsStaticField(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].HasStaticField(name) {
			return true
		}
	}

	return false
}
