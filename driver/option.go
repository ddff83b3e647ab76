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

package driver

import (
	"time"

	"github.com/skein-sim/skein/actor"
	"github.com/skein-sim/skein/log"
)

// Hook runs on the loop goroutine, around a frame
type Hook func(system *actor.System, frame actor.Pulse)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(l *Loop)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Loop)

func (f OptionFunc) Apply(l *Loop) {
	f(l)
}

// WithInterval sets the time between two frames
func WithInterval(interval time.Duration) Option {
	return OptionFunc(func(l *Loop) {
		l.interval = interval
	})
}

// WithBeforePulse adds a hook that runs before the frame pulse is sent.
// It is the place to inject input messages.
func WithBeforePulse(hook Hook) Option {
	return OptionFunc(func(l *Loop) {
		if hook != nil {
			l.before = append(l.before, hook)
		}
	})
}

// WithAfterDrain adds a hook that runs once the frame has been fully dispatched
func WithAfterDrain(hook Hook) Option {
	return OptionFunc(func(l *Loop) {
		if hook != nil {
			l.after = append(l.after, hook)
		}
	})
}

// WithLogger sets the loop logger. The system logger is used by default.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	})
}
