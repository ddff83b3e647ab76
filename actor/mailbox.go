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

import "github.com/skein-sim/skein/errors"

// Mailbox collects the effects a handler emits during one dispatch pass.
// Nothing it holds is visible to the system until the pass completes:
// spawned actors are created first, then the messages are appended to the
// input queue in the order they were sent.
type Mailbox struct {
	system   *System
	messages []any
	spawns   []*Props
}

func newMailbox(system *System) *Mailbox {
	return &Mailbox{system: system}
}

// Send queues a message for delivery after the current pass.
// Nil messages are ignored.
func (mb *Mailbox) Send(msg any) {
	if msg == nil {
		return
	}
	mb.messages = append(mb.messages, msg)
}

// Spawn creates an actor from the given props after the current pass,
// before any message sent during the pass is enqueued.
func (mb *Mailbox) Spawn(props *Props) {
	if props == nil {
		mb.system.raise(errors.ErrNilProps)
	}
	mb.spawns = append(mb.spawns, props)
}

// Len returns the number of messages sent so far during the pass
func (mb *Mailbox) Len() int {
	return len(mb.messages)
}
