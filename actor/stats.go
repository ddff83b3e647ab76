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

import "go.uber.org/atomic"

// Stats is a snapshot of the system counters
type Stats struct {
	// Dispatched is the number of messages taken off the input queue
	Dispatched uint64
	// Delivered is the number of handler invocations
	Delivered uint64
	// Dropped is the number of dispatched messages that found no subscriber
	Dropped uint64
	// Spawned is the number of actors created
	Spawned uint64
	// Ended is the number of actors removed
	Ended uint64
}

// counters can be read from any goroutine while the system runs
type counters struct {
	dispatched *atomic.Uint64
	delivered  *atomic.Uint64
	dropped    *atomic.Uint64
	spawned    *atomic.Uint64
	ended      *atomic.Uint64
}

func newCounters() *counters {
	return &counters{
		dispatched: atomic.NewUint64(0),
		delivered:  atomic.NewUint64(0),
		dropped:    atomic.NewUint64(0),
		spawned:    atomic.NewUint64(0),
		ended:      atomic.NewUint64(0),
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Dispatched: c.dispatched.Load(),
		Delivered:  c.delivered.Load(),
		Dropped:    c.dropped.Load(),
		Spawned:    c.spawned.Load(),
		Ended:      c.ended.Load(),
	}
}
