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

// Package registry indexes handler registrations by message type.
//
// Each message type owns one collection holding its registrations in the
// order they were made. Registration keys are drawn from a single increasing
// counter, so ascending key order within a collection is subscription order
// and a key is never reissued.
package registry

import (
	"reflect"
	"slices"

	"github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/internal/arena"
)

// Key identifies one registration.
type Key uint64

// Registration binds a callback to the actor that owns it.
type Registration[C any] struct {
	Owner    arena.Key
	Callback C
}

type collection[C any] struct {
	keys    []Key
	entries map[Key]Registration[C]
}

// Registry maps message types to their registrations.
// It is not safe for concurrent use.
type Registry[C any] struct {
	collections map[reflect.Type]*collection[C]
	next        Key
	count       int
}

// New creates an empty Registry
func New[C any]() *Registry[C] {
	return &Registry[C]{
		collections: make(map[reflect.Type]*collection[C]),
	}
}

// Register adds a registration for the given message type and returns its key.
func (r *Registry[C]) Register(tag reflect.Type, owner arena.Key, callback C) Key {
	coll, ok := r.collections[tag]
	if !ok {
		coll = &collection[C]{entries: make(map[Key]Registration[C])}
		r.collections[tag] = coll
	}

	r.next++
	key := r.next
	coll.keys = append(coll.keys, key)
	coll.entries[key] = Registration[C]{Owner: owner, Callback: callback}
	r.count++
	return key
}

// Unregister removes a single registration. The collection of the message type
// is dropped once it holds no registration.
func (r *Registry[C]) Unregister(tag reflect.Type, key Key) error {
	coll, ok := r.collections[tag]
	if !ok {
		return errors.NewErrInvalidHandlerReference(tag)
	}

	if _, ok := coll.entries[key]; !ok {
		return errors.NewErrZombieHandler(key)
	}

	delete(coll.entries, key)
	if pos, found := slices.BinarySearch(coll.keys, key); found {
		coll.keys = slices.Delete(coll.keys, pos, pos+1)
	}
	r.count--

	if len(coll.entries) == 0 {
		delete(r.collections, tag)
	}
	return nil
}

// Snapshot returns a copy of the keys registered for the message type in
// registration order. It is nil when the type has no collection.
func (r *Registry[C]) Snapshot(tag reflect.Type) []Key {
	coll, ok := r.collections[tag]
	if !ok {
		return nil
	}
	return slices.Clone(coll.keys)
}

// Lookup returns the registration for key under the given message type.
func (r *Registry[C]) Lookup(tag reflect.Type, key Key) (Registration[C], bool) {
	coll, ok := r.collections[tag]
	if !ok {
		return Registration[C]{}, false
	}
	reg, ok := coll.entries[key]
	return reg, ok
}

// Has reports whether a collection exists for the message type.
func (r *Registry[C]) Has(tag reflect.Type) bool {
	_, ok := r.collections[tag]
	return ok
}

// Len returns the number of registrations for the message type.
func (r *Registry[C]) Len(tag reflect.Type) int {
	coll, ok := r.collections[tag]
	if !ok {
		return 0
	}
	return len(coll.keys)
}

// Count returns the number of registrations across all message types.
func (r *Registry[C]) Count() int {
	return r.count
}

// Types returns the message types that currently have a collection.
func (r *Registry[C]) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.collections))
	for tag := range r.collections {
		out = append(out, tag)
	}
	return out
}
