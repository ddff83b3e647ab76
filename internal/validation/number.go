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

package validation

import (
	"cmp"
	"fmt"
)

type number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

type boundValidator[T number] struct {
	field     string
	value     T
	inclusive bool
}

// NewPositiveValidator checks that value is greater than zero.
// It works for durations too.
func NewPositiveValidator[T number](field string, value T) Validator {
	return boundValidator[T]{field: field, value: value}
}

// NewNonNegativeValidator checks that value is not below zero
func NewNonNegativeValidator[T number](field string, value T) Validator {
	return boundValidator[T]{field: field, value: value, inclusive: true}
}

func (v boundValidator[T]) Validate() error {
	var zero T
	c := cmp.Compare(v.value, zero)
	switch {
	case v.inclusive && c < 0:
		return fmt.Errorf("%s must not be negative, got %v", v.field, v.value)
	case !v.inclusive && c <= 0:
		return fmt.Errorf("%s must be positive, got %v", v.field, v.value)
	default:
		return nil
	}
}
