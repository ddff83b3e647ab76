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

// Package driver pumps an actor system: once per frame it sends a Pulse
// and dispatches until the input queue is empty.
package driver

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/skein-sim/skein/actor"
	skerrors "github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/internal/ticker"
	"github.com/skein-sim/skein/log"
)

// DefaultInterval is the frame interval used when none is set
const DefaultInterval = 10 * time.Millisecond

// Loop drives an actor system frame by frame. The goroutine running the
// loop owns the system for as long as it runs.
type Loop struct {
	system   *actor.System
	interval time.Duration
	before   []Hook
	after    []Hook
	logger   log.Logger

	frame    uint64
	lastTick time.Time
}

// NewLoop creates a Loop for the given system
func NewLoop(system *actor.System, opts ...Option) (*Loop, error) {
	if system == nil {
		return nil, skerrors.ErrNilSystem
	}

	loop := &Loop{
		system:   system,
		interval: DefaultInterval,
		logger:   system.Logger(),
	}
	for _, opt := range opts {
		opt.Apply(loop)
	}

	if loop.interval <= 0 {
		return nil, errors.Wrapf(skerrors.ErrInvalidInterval, "interval=%s", loop.interval)
	}
	return loop, nil
}

// Frames returns the number of frames run so far
func (l *Loop) Frames() uint64 {
	return l.frame
}

// Step runs one frame synchronously: the before hooks, the pulse, a full
// drain of the input queue, then the after hooks. It returns the number of
// dispatched messages.
func (l *Loop) Step() int {
	return l.step(time.Now())
}

// Run runs frames at the configured interval until ctx is done, and
// returns the context error.
func (l *Loop) Run(ctx context.Context) error {
	tk := ticker.New(l.interval)
	tk.Start()
	defer tk.Stop()

	l.logger.Infof("driver loop started for actor system (%s) with interval=%s", l.system.Name(), l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Infof("driver loop stopped for actor system (%s) after %d frame(s)", l.system.Name(), l.frame)
			return ctx.Err()
		case now := <-tk.Ticks:
			l.step(now)
		}
	}
}

func (l *Loop) step(now time.Time) int {
	l.frame++
	pulse := actor.Pulse{Frame: l.frame}
	if !l.lastTick.IsZero() {
		pulse.Delta = now.Sub(l.lastTick)
	}
	l.lastTick = now

	for _, hook := range l.before {
		hook(l.system, pulse)
	}

	l.system.Send(pulse)
	dispatched := l.system.Drain()

	for _, hook := range l.after {
		hook(l.system, pulse)
	}

	if l.logger.Enabled(log.DebugLevel) {
		l.logger.Debugf("frame %d dispatched %d message(s)", l.frame, dispatched)
	}
	return dispatched
}
