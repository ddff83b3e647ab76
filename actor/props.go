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
	"reflect"

	"github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/internal/types"
)

// Handler reacts to a message of type M on behalf of an actor whose state is S.
// The state is owned by the actor and may be mutated freely.
type Handler[S, M any] func(state *S, msg M, mb *Mailbox) Fate

// callback is the type-erased form of a Handler
type callback func(state any, msg any, mb *Mailbox) Fate

// Registration binds a handler to the message type it subscribes to.
// It is created with On.
type Registration[S any] struct {
	messageType reflect.Type
	callback    callback
}

// MessageType returns the type of message the registration subscribes to
func (r Registration[S]) MessageType() reflect.Type {
	return r.messageType
}

// On creates a Registration for messages of type M. M must be a concrete
// type: messages are matched by their exact dynamic type, which is never an
// interface.
func On[S, M any](handler Handler[S, M]) Registration[S] {
	messageType := types.For[M]()
	if !types.Concrete(messageType) {
		panic(errors.NewErrInvalidMessageType(messageType))
	}

	stateType := types.For[*S]()
	return Registration[S]{
		messageType: messageType,
		callback: func(state any, msg any, mb *Mailbox) Fate {
			s, ok := state.(*S)
			if !ok {
				mb.system.raise(errors.NewErrTypeMismatch("state", stateType, state))
			}
			m, ok := msg.(M)
			if !ok {
				mb.system.raise(errors.NewErrTypeMismatch("message", messageType, msg))
			}
			return handler(s, m, mb)
		},
	}
}

type binding struct {
	messageType reflect.Type
	callback    callback
}

// Props describes an actor to be spawned: its initial state and the
// handlers it subscribes with. A Props can be spawned only once.
type Props struct {
	state     any
	stateType reflect.Type
	bindings  []binding
	spawned   bool
}

// StateType returns the type of the actor state
func (p *Props) StateType() reflect.Type {
	return p.stateType
}

// Subscriptions returns the message types the actor subscribes to, in
// registration order.
func (p *Props) Subscriptions() []reflect.Type {
	out := make([]reflect.Type, len(p.bindings))
	for i, b := range p.bindings {
		out[i] = b.messageType
	}
	return out
}

// Builder assembles the Props of an actor whose state is S
type Builder[S any] struct {
	state    S
	bindings []binding
}

// NewBuilder starts an actor definition with the given initial state
func NewBuilder[S any](initial S) *Builder[S] {
	return &Builder[S]{state: initial}
}

// Handle appends handlers to the actor. Handlers for the same message type
// are invoked in the order they were added.
func (b *Builder[S]) Handle(registrations ...Registration[S]) *Builder[S] {
	for _, r := range registrations {
		b.bindings = append(b.bindings, binding{
			messageType: r.messageType,
			callback:    r.callback,
		})
	}
	return b
}

// Build returns the Props of the actor. Every call yields Props with their
// own copy of the initial state.
func (b *Builder[S]) Build() *Props {
	state := new(S)
	*state = b.state
	bindings := make([]binding, len(b.bindings))
	copy(bindings, b.bindings)
	return &Props{
		state:     state,
		stateType: types.For[S](),
		bindings:  bindings,
	}
}

// New is a shortcut for NewBuilder(initial).Handle(registrations...).Build()
func New[S any](initial S, registrations ...Registration[S]) *Props {
	return NewBuilder(initial).Handle(registrations...).Build()
}
