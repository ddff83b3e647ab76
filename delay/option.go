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

package delay

import "time"

// Clock returns the current time
type Clock func() time.Time

// Option is the interface that applies a scheduler option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(s *scheduler)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*scheduler)

func (f OptionFunc) Apply(s *scheduler) {
	f(s)
}

// WithClock sets the clock the scheduler compares deadlines against.
// time.Now is used by default.
func WithClock(clock Clock) Option {
	return OptionFunc(func(s *scheduler) {
		if clock != nil {
			s.clock = clock
		}
	})
}

// WithCapacityHint sets the initial capacity of the pending heap
func WithCapacityHint(hint int) Option {
	return OptionFunc(func(s *scheduler) {
		if hint > 0 {
			s.hint = hint
		}
	})
}
