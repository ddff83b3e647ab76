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

import (
	"time"

	gods "github.com/Workiva/go-datastructures/queue"

	"github.com/skein-sim/skein/actor"
	"github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/log"
)

const defaultCapacityHint = 64

// entry is a pending delayed message.
// Entries are ordered by deadline, then by arrival.
type entry struct {
	deadline time.Time
	seq      uint64
	schedule *Schedule
}

// enforce compilation error
var _ gods.Item = (*entry)(nil)

// Compare orders entries so that the earliest deadline pops first.
// Entries with equal deadlines pop in arrival order.
func (e *entry) Compare(other gods.Item) int {
	o := other.(*entry)
	switch {
	case e.deadline.Before(o.deadline):
		return -1
	case e.deadline.After(o.deadline):
		return 1
	case e.seq < o.seq:
		return -1
	case e.seq > o.seq:
		return 1
	default:
		return 0
	}
}

// scheduler is the state of the delay scheduler actor
type scheduler struct {
	clock   Clock
	hint    int
	pending *gods.PriorityQueue
	seq     uint64
	logger  log.Logger
}

// Install spawns the delay scheduler actor into system and returns its key.
// It is meant to be called once per system: every installed scheduler
// delivers every Schedule it receives.
func Install(system *actor.System, opts ...Option) actor.ActorKey {
	if system == nil {
		panic(errors.ErrNilSystem)
	}

	state := scheduler{
		clock:  time.Now,
		hint:   defaultCapacityHint,
		logger: system.Logger(),
	}
	for _, opt := range opts {
		opt.Apply(&state)
	}
	state.pending = gods.NewPriorityQueue(state.hint, true)

	return system.Spawn(actor.New(state,
		actor.On((*scheduler).onSchedule),
		actor.On((*scheduler).onPulse),
	))
}

func (s *scheduler) onSchedule(schedule *Schedule, _ *actor.Mailbox) actor.Fate {
	if schedule == nil {
		return actor.Keep
	}

	s.seq++
	if err := s.pending.Put(&entry{
		deadline: schedule.Deadline,
		seq:      s.seq,
		schedule: schedule,
	}); err != nil {
		s.logger.Errorf("failed to schedule delayed message: %v", err)
	}
	return actor.Keep
}

// onPulse sends every message whose deadline is not after now.
// The messages are delivered on later dispatch passes.
func (s *scheduler) onPulse(_ actor.Pulse, mb *actor.Mailbox) actor.Fate {
	now := s.clock()
	for !s.pending.Empty() {
		head, ok := s.pending.Peek().(*entry)
		if !ok || head.deadline.After(now) {
			break
		}

		items, err := s.pending.Get(1)
		if err != nil || len(items) == 0 {
			s.logger.Errorf("failed to pop delayed message: %v", err)
			break
		}

		due := items[0].(*entry)
		msg := due.schedule.materialize()
		if msg == nil {
			s.logger.Warn("delayed message factory produced nothing, dropping")
			continue
		}
		mb.Send(msg)
	}
	return actor.Keep
}
