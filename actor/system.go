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
	"context"
	"fmt"
	"reflect"
	"time"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/skein-sim/skein/errors"
	"github.com/skein-sim/skein/internal/arena"
	imetric "github.com/skein-sim/skein/internal/metric"
	"github.com/skein-sim/skein/internal/queue"
	"github.com/skein-sim/skein/internal/registry"
	"github.com/skein-sim/skein/internal/types"
	"github.com/skein-sim/skein/log"
)

const defaultName = "skein"

// ActorKey identifies an actor of a System. It stays valid until the actor
// ends and is never reused for another actor.
type ActorKey = arena.Key

type handlerRef struct {
	messageType reflect.Type
	key         registry.Key
}

// actorEntry is the state of an actor and the handlers it registered.
// Both are created together and destroyed together.
type actorEntry struct {
	state         any
	registrations []handlerRef
}

// System routes messages to the actors subscribed to their type.
//
// A System is single-threaded: it must be driven from one goroutine, and
// handlers run to completion one at a time. Only Stats may be called from
// other goroutines.
type System struct {
	id            string
	name          string
	logger        log.Logger
	meterProvider metric.MeterProvider
	metric        *imetric.SystemMetric

	actors   *arena.Arena[actorEntry]
	handlers *registry.Registry[callback]
	inbox    *queue.Queue[any]

	dispatching bool
	counters    *counters
}

// NewSystem creates an empty actor system
func NewSystem(opts ...Option) *System {
	system := &System{
		id:       uuid.NewString(),
		name:     defaultName,
		logger:   log.DefaultLogger,
		actors:   arena.New[actorEntry](),
		handlers: registry.New[callback](),
		inbox:    queue.New[any](),
		counters: newCounters(),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	if system.meterProvider == nil {
		system.meterProvider = otel.GetMeterProvider()
	}

	provider := imetric.NewProvider(imetric.WithMeterProvider(system.meterProvider))
	systemMetric, err := imetric.NewSystemMetric(provider.Meter(), system.name)
	if err != nil {
		system.logger.Warnf("actor system (%s) falls back to noop metrics: %v", system.name, err)
		systemMetric, _ = imetric.NewSystemMetric(noop.NewMeterProvider().Meter(defaultName), system.name)
	}
	system.metric = systemMetric

	system.logger.Debugf("actor system (%s) created with id=%s", system.name, system.id)
	return system
}

// ID returns the unique identifier of the system
func (x *System) ID() string {
	return x.id
}

// Name returns the name of the system
func (x *System) Name() string {
	return x.name
}

// Logger returns the system logger
func (x *System) Logger() log.Logger {
	return x.logger
}

// Send appends a message to the tail of the input queue.
// Nil messages are ignored. Handlers send through their Mailbox instead.
func (x *System) Send(msg any) {
	if x.dispatching {
		x.raise(fmt.Errorf("%w: Send called from a handler, use the Mailbox", errors.ErrReentrantDispatch))
	}
	if msg == nil {
		return
	}
	x.inbox.Push(msg)
}

// Spawn creates the actor described by props and registers its handlers.
// It is meant for setting the system up; handlers spawn through their Mailbox.
func (x *System) Spawn(props *Props) ActorKey {
	if x.dispatching {
		x.raise(fmt.Errorf("%w: Spawn called from a handler, use the Mailbox", errors.ErrReentrantDispatch))
	}
	return x.spawn(props)
}

// DispatchOne takes the message at the head of the input queue and delivers
// it to every handler subscribed to its type, in registration order.
// It returns false when the queue was empty.
//
// Handlers registered while the message is being delivered do not receive
// it. Actors whose handlers returned End are removed after the delivery,
// then actors spawned during the delivery are created, then the messages
// sent during the delivery are appended to the queue in emission order.
func (x *System) DispatchOne() bool {
	if x.dispatching {
		x.raise(fmt.Errorf("%w: DispatchOne called from a handler", errors.ErrReentrantDispatch))
	}

	msg, ok := x.inbox.Pop()
	if !ok {
		return false
	}

	x.dispatching = true
	defer func() {
		x.dispatching = false
	}()

	start := time.Now()
	messageType := types.Of(msg)
	mb := newMailbox(x)

	// the snapshot isolates the delivery from changes made during it
	keys := x.handlers.Snapshot(messageType)
	ending := goset.NewThreadUnsafeSet[ActorKey]()
	ended := make([]ActorKey, 0)

	for _, key := range keys {
		registration, ok := x.handlers.Lookup(messageType, key)
		if !ok {
			x.raise(errors.NewErrZombieHandler(key))
		}

		entry, ok := x.actors.Get(registration.Owner)
		if !ok {
			x.raise(errors.NewErrZombieHandler(registration.Owner))
		}

		if registration.Callback(entry.state, msg, mb) == End && ending.Add(registration.Owner) {
			ended = append(ended, registration.Owner)
		}
	}

	for _, key := range ended {
		x.remove(key)
	}

	for _, props := range mb.spawns {
		x.spawn(props)
	}

	for _, out := range mb.messages {
		x.inbox.Push(out)
	}

	x.counters.dispatched.Inc()
	x.counters.delivered.Add(uint64(len(keys)))
	if len(keys) == 0 {
		x.counters.dropped.Inc()
		if x.logger.Enabled(log.DebugLevel) {
			x.logger.Debugf("actor system (%s) has no subscriber for %s", x.name, types.Name(messageType))
		}
	}

	ctx := context.Background()
	x.metric.RecordDispatch(ctx, len(keys), time.Since(start))
	x.metric.RecordEnded(ctx, len(ended))
	return true
}

// Drain dispatches messages until the input queue is empty, including the
// messages emitted while draining. It returns the number of dispatched messages.
func (x *System) Drain() int {
	count := 0
	for x.DispatchOne() {
		count++
	}
	return count
}

// ActorsCount returns the number of live actors
func (x *System) ActorsCount() int {
	return x.actors.Len()
}

// QueueLen returns the number of messages waiting in the input queue
func (x *System) QueueLen() int {
	return x.inbox.Len()
}

// Subscribers returns the number of handlers subscribed to the type of msg
func (x *System) Subscribers(msg any) int {
	return x.handlers.Len(types.Of(msg))
}

// Alive reports whether the actor identified by key exists
func (x *System) Alive(key ActorKey) bool {
	return x.actors.Contains(key)
}

// Stats returns a snapshot of the system counters.
// It is safe to call from any goroutine.
func (x *System) Stats() Stats {
	return x.counters.snapshot()
}

func (x *System) spawn(props *Props) ActorKey {
	if props == nil {
		x.raise(errors.ErrNilProps)
	}
	if props.spawned {
		x.raise(fmt.Errorf("%w: %s", errors.ErrPropsReused, types.Name(props.stateType)))
	}
	props.spawned = true

	key := x.actors.Insert(actorEntry{
		state:         props.state,
		registrations: make([]handlerRef, 0, len(props.bindings)),
	})

	entry := x.actors.MustGet(key)
	for _, b := range props.bindings {
		regKey := x.handlers.Register(b.messageType, key, b.callback)
		entry.registrations = append(entry.registrations, handlerRef{
			messageType: b.messageType,
			key:         regKey,
		})
	}

	x.counters.spawned.Inc()
	x.metric.RecordSpawned(context.Background(), 1)
	if x.logger.Enabled(log.DebugLevel) {
		x.logger.Debugf("actor system (%s) spawned actor (%s) with %d handler(s)", x.name, key, len(props.bindings))
	}
	return key
}

// remove destroys the actor and every registration it made, whatever the
// message type.
func (x *System) remove(key ActorKey) {
	entry, ok := x.actors.Remove(key)
	if !ok {
		x.raise(errors.NewErrZombieHandler(key))
	}

	for _, ref := range entry.registrations {
		if err := x.handlers.Unregister(ref.messageType, ref.key); err != nil {
			x.raise(err)
		}
	}

	x.counters.ended.Inc()
	if x.logger.Enabled(log.DebugLevel) {
		x.logger.Debugf("actor system (%s) removed actor (%s)", x.name, key)
	}
}

// raise reports a contract violation. It does not return.
func (x *System) raise(err error) {
	x.logger.Error(err)
	panic(err)
}
