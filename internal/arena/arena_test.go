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

package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/skein-sim/skein/errors"
)

func TestArena(t *testing.T) {
	t.Run("With insert and get", func(t *testing.T) {
		a := New[string]()
		k1 := a.Insert("miner")
		k2 := a.Insert("fighter")

		require.False(t, k1.IsZero())
		require.NotEqual(t, k1, k2)
		require.Equal(t, 2, a.Len())

		v, ok := a.Get(k1)
		require.True(t, ok)
		assert.Equal(t, "miner", *v)
		assert.Equal(t, "fighter", *a.MustGet(k2))
	})
	t.Run("With mutation through pointer", func(t *testing.T) {
		a := New[int]()
		k := a.Insert(0)
		*a.MustGet(k) += 5
		assert.Equal(t, 5, *a.MustGet(k))
	})
	t.Run("With remove", func(t *testing.T) {
		a := New[int]()
		k := a.Insert(7)

		v, ok := a.Remove(k)
		require.True(t, ok)
		assert.Equal(t, 7, v)
		assert.Zero(t, a.Len())
		assert.False(t, a.Contains(k))

		_, ok = a.Remove(k)
		assert.False(t, ok)
	})
	t.Run("With reused slot never aliasing a stale key", func(t *testing.T) {
		a := New[string]()
		stale := a.Insert("asteroid-1")
		_, ok := a.Remove(stale)
		require.True(t, ok)

		fresh := a.Insert("asteroid-2")
		// the slot is reused, only the generation differs
		assert.Equal(t, stale.index, fresh.index)
		assert.NotEqual(t, stale, fresh)

		_, ok = a.Get(stale)
		assert.False(t, ok)
		assert.Equal(t, "asteroid-2", *a.MustGet(fresh))

		_, ok = a.Remove(stale)
		assert.False(t, ok)
		assert.True(t, a.Contains(fresh))
	})
	t.Run("With zero and out of range keys", func(t *testing.T) {
		a := New[int]()
		_, ok := a.Get(Key{})
		assert.False(t, ok)
		_, ok = a.Get(Key{index: 12, generation: 1})
		assert.False(t, ok)
	})
	t.Run("With MustGet on stale key", func(t *testing.T) {
		a := New[int]()
		k := a.Insert(1)
		a.Remove(k)

		defer func() {
			recovered := recover()
			require.NotNil(t, recovered)
			err, ok := recovered.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, skerrors.ErrStaleKey))
		}()
		a.MustGet(k)
	})
	t.Run("With range in slot order", func(t *testing.T) {
		a := New[int]()
		keys := []Key{a.Insert(1), a.Insert(2), a.Insert(3)}
		a.Remove(keys[1])

		var seen []int
		a.Range(func(_ Key, v *int) bool {
			seen = append(seen, *v)
			return true
		})
		assert.Equal(t, []int{1, 3}, seen)

		seen = seen[:0]
		a.Range(func(_ Key, v *int) bool {
			seen = append(seen, *v)
			return false
		})
		assert.Equal(t, []int{1}, seen)
	})
	t.Run("With key string", func(t *testing.T) {
		a := New[int]()
		assert.Equal(t, "0:1", a.Insert(1).String())
	})
}
