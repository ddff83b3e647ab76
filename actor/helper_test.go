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

package actor

import (
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/skein-sim/skein/log"
)

type counter struct {
	value int
}

type sink struct {
	received []int
}

type label string

type spawnRequest struct{}

type note struct {
	text string
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	return NewSystem(
		WithLogger(log.DiscardLogger),
		WithMeterProvider(noop.NewMeterProvider()),
		WithName("test"),
	)
}

// recorder returns a handler that appends the actor name to the shared trace
func recorder[M any](name string, trace *[]string, fate Fate) Registration[string] {
	return On(func(_ *string, _ M, _ *Mailbox) Fate {
		*trace = append(*trace, name)
		return fate
	})
}
