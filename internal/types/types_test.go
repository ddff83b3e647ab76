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

package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scanPing struct{ X, Y, Z float64 }

func TestTypes(t *testing.T) {
	t.Run("With value and type parameter", func(t *testing.T) {
		assert.Equal(t, For[scanPing](), Of(scanPing{X: 1}))
		assert.NotEqual(t, For[*scanPing](), Of(scanPing{}))
		assert.Equal(t, For[*scanPing](), Of(&scanPing{}))
	})
	t.Run("With concrete check", func(t *testing.T) {
		assert.True(t, Concrete(For[scanPing]()))
		assert.True(t, Concrete(For[int]()))
		assert.False(t, Concrete(For[fmt.Stringer]()))
		assert.False(t, Concrete(For[any]()))
		assert.False(t, Concrete(Of(nil)))
	})
	t.Run("With names", func(t *testing.T) {
		assert.Equal(t, "types.scanPing", Name(For[scanPing]()))
		assert.Equal(t, "*types.scanPing", Name(For[*scanPing]()))
		assert.Equal(t, "<nil>", Name(nil))
	})
}
