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

package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/internal/arena"
)

type (
	tick      struct{}
	scoreDiff struct{ N int }
)

var (
	tickType  = reflect.TypeFor[tick]()
	scoreType = reflect.TypeFor[scoreDiff]()
)

func owners(n int) []arena.Key {
	a := arena.New[int]()
	out := make([]arena.Key, n)
	for i := range out {
		out[i] = a.Insert(i)
	}
	return out
}

func TestRegistry(t *testing.T) {
	t.Run("With registration order", func(t *testing.T) {
		r := New[string]()
		o := owners(3)

		k1 := r.Register(tickType, o[0], "a")
		r.Register(scoreType, o[1], "x")
		k2 := r.Register(tickType, o[1], "b")
		k3 := r.Register(tickType, o[2], "c")

		assert.Equal(t, []Key{k1, k2, k3}, r.Snapshot(tickType))
		assert.Equal(t, 3, r.Len(tickType))
		assert.Equal(t, 4, r.Count())

		var callbacks []string
		for _, key := range r.Snapshot(tickType) {
			reg, ok := r.Lookup(tickType, key)
			require.True(t, ok)
			callbacks = append(callbacks, reg.Callback)
		}
		assert.Equal(t, []string{"a", "b", "c"}, callbacks)

		reg, ok := r.Lookup(tickType, k2)
		require.True(t, ok)
		assert.Equal(t, o[1], reg.Owner)
	})
	t.Run("With unregister keeping order", func(t *testing.T) {
		r := New[string]()
		o := owners(3)
		k1 := r.Register(tickType, o[0], "a")
		k2 := r.Register(tickType, o[1], "b")
		k3 := r.Register(tickType, o[2], "c")

		require.NoError(t, r.Unregister(tickType, k2))
		assert.Equal(t, []Key{k1, k3}, r.Snapshot(tickType))
		_, ok := r.Lookup(tickType, k2)
		assert.False(t, ok)

		k4 := r.Register(tickType, o[1], "d")
		assert.Equal(t, []Key{k1, k3, k4}, r.Snapshot(tickType))
	})
	t.Run("With empty collection dropped", func(t *testing.T) {
		r := New[string]()
		o := owners(1)
		k := r.Register(scoreType, o[0], "x")
		require.True(t, r.Has(scoreType))
		require.Len(t, r.Types(), 1)

		require.NoError(t, r.Unregister(scoreType, k))
		assert.False(t, r.Has(scoreType))
		assert.Nil(t, r.Snapshot(scoreType))
		assert.Zero(t, r.Len(scoreType))
		assert.Zero(t, r.Count())
		assert.Empty(t, r.Types())
	})
	t.Run("With snapshot isolated from later changes", func(t *testing.T) {
		r := New[string]()
		o := owners(2)
		k1 := r.Register(tickType, o[0], "a")
		k2 := r.Register(tickType, o[1], "b")

		snapshot := r.Snapshot(tickType)
		require.NoError(t, r.Unregister(tickType, k1))
		assert.Equal(t, []Key{k1, k2}, snapshot)
	})
	t.Run("With invalid handler reference", func(t *testing.T) {
		r := New[string]()
		err := r.Unregister(tickType, Key(1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, skerrors.ErrInvalidHandlerReference))
	})
	t.Run("With zombie handler", func(t *testing.T) {
		r := New[string]()
		o := owners(1)
		k := r.Register(tickType, o[0], "a")
		require.NoError(t, r.Unregister(scoreType, r.Register(scoreType, o[0], "x")))

		err := r.Unregister(tickType, k+100)
		require.Error(t, err)
		assert.True(t, errors.Is(err, skerrors.ErrZombieHandler))
		assert.Equal(t, 1, r.Len(tickType))
	})
}
