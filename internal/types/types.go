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

// Package types derives the process-stable tags used to route messages to handlers.
package types

import (
	"reflect"
)

// Of returns the dynamic type of v. A nil interface yields a nil type.
func Of(v any) reflect.Type {
	return reflect.TypeOf(v)
}

// For returns the static type T, including interface types.
func For[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Concrete reports whether values of type t can be matched by their dynamic type.
// Interface types never are, since a dynamic type is always concrete.
func Concrete(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Interface
}

// Name returns a readable name for t, used in logs and error messages.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
