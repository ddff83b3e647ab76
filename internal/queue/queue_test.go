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

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("With FIFO order", func(t *testing.T) {
		q := New[int]()
		require.True(t, q.IsEmpty())

		for i := range 5 {
			q.Push(i)
		}
		require.Equal(t, 5, q.Len())

		head, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 0, head)

		for i := range 5 {
			v, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
		assert.True(t, q.IsEmpty())
	})
	t.Run("With empty pop and peek", func(t *testing.T) {
		q := New[string]()
		v, ok := q.Pop()
		assert.False(t, ok)
		assert.Empty(t, v)
		_, ok = q.Peek()
		assert.False(t, ok)
	})
	t.Run("With growth and wrap around", func(t *testing.T) {
		q := New[int]()
		// move head forward so that growth has to unwrap the ring
		for i := range 10 {
			q.Push(i)
		}
		for range 10 {
			_, _ = q.Pop()
		}

		for i := range 100 {
			q.Push(i)
		}
		require.Equal(t, 100, q.Len())
		assert.GreaterOrEqual(t, q.Cap(), 100)

		for i := range 100 {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, i, v)
		}
	})
	t.Run("With shrink", func(t *testing.T) {
		q := New[int]()
		for i := range 256 {
			q.Push(i)
		}
		grown := q.Cap()
		for range 250 {
			_, _ = q.Pop()
		}
		assert.Less(t, q.Cap(), grown)
		assert.GreaterOrEqual(t, q.Cap(), minQueueLen)

		for i := 250; i < 256; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
	})
	t.Run("With interleaved push and pop", func(t *testing.T) {
		q := New[int]()
		next := 0
		for round := range 50 {
			q.Push(round * 2)
			q.Push(round*2 + 1)
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, next, v)
			next++
		}
		assert.Equal(t, 50, q.Len())
	})
}
