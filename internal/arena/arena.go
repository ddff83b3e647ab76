// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package arena implements a generational slot map: values live in a dense
// slice and are addressed by keys that stay valid until the value is removed.
// A removed slot is reused with a bumped generation, so a key held past the
// removal of its value can never resolve to the value that replaced it.
package arena

import (
	"fmt"

	"github.com/skein-sim/skein/errors"
)

// Key addresses a slot of an Arena. The zero Key is never issued.
type Key struct {
	index      uint32
	generation uint32
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.generation == 0
}

// String returns the key as index:generation.
func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.index, k.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena holds values of type T behind stable keys.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New creates an empty Arena
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v in a free slot and returns its key.
func (a *Arena[T]) Insert(v T) Key {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[index]
		s.value = v
		s.occupied = true
		a.count++
		return Key{index: index, generation: s.generation}
	}

	a.slots = append(a.slots, slot[T]{value: v, generation: 1, occupied: true})
	a.count++
	return Key{index: uint32(len(a.slots) - 1), generation: 1}
}

// Get returns a pointer to the value addressed by k. The pointer is only valid
// until the next Insert, which may grow the underlying storage.
func (a *Arena[T]) Get(k Key) (*T, bool) {
	s, ok := a.lookup(k)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// MustGet is like Get but panics with errors.ErrStaleKey when k does not resolve.
func (a *Arena[T]) MustGet(k Key) *T {
	value, ok := a.Get(k)
	if !ok {
		panic(fmt.Errorf("%w: %s", errors.ErrStaleKey, k))
	}
	return value
}

// Contains reports whether k addresses a live value.
func (a *Arena[T]) Contains(k Key) bool {
	_, ok := a.lookup(k)
	return ok
}

// Remove frees the slot addressed by k and returns its former value.
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	s, ok := a.lookup(k)
	if !ok {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.occupied = false
	// a generation of 0 is reserved for the zero Key
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}

	a.free = append(a.free, k.index)
	a.count--
	return value, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// Range calls fn for every live value in slot order until fn returns false.
func (a *Arena[T]) Range(fn func(Key, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(Key{index: uint32(i), generation: s.generation}, &s.value) {
			return
		}
	}
}

func (a *Arena[T]) lookup(k Key) (*slot[T], bool) {
	if k.generation == 0 || int(k.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[k.index]
	if !s.occupied || s.generation != k.generation {
		return nil, false
	}
	return s, true
}
