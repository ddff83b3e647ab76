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

package errors

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeMismatch is raised when a handler is invoked with a state or a message whose
	// dynamic type differs from the one it was registered for.
	ErrTypeMismatch = errors.New("handler invoked with mismatched type")

	// ErrZombieHandler is raised when a registration points at an actor, or a registration
	// key, that no longer exists.
	ErrZombieHandler = errors.New("zombie handler")

	// ErrInvalidHandlerReference is raised when an actor references a message type
	// collection that is absent from the handler registry.
	ErrInvalidHandlerReference = errors.New("invalid handler reference")

	// ErrStaleKey is raised when an arena key does not resolve to a live slot.
	ErrStaleKey = errors.New("stale arena key")

	// ErrReentrantDispatch is raised when the dispatch loop is entered, or the system is
	// mutated directly, from within a handler.
	ErrReentrantDispatch = errors.New("dispatch is not reentrant")

	// ErrInvalidMessageType is raised when a handler is registered for a message type
	// that cannot be matched, such as an interface type.
	ErrInvalidMessageType = errors.New("invalid message type")

	// ErrPropsReused is raised when the same actor props are instantiated twice.
	ErrPropsReused = errors.New("actor props already spawned")

	// ErrNilProps is raised when nil actor props are spawned.
	ErrNilProps = errors.New("actor props are required")

	// ErrInvalidInterval is returned when a pulse interval is less than or equal to zero.
	ErrInvalidInterval = errors.New("invalid pulse interval")

	// ErrNilSystem is returned when a component requires an actor system and none is given.
	ErrNilSystem = errors.New("actor system is required")
)

// NewErrTypeMismatch formats an ErrTypeMismatch for the given expected and actual types.
func NewErrTypeMismatch(role string, expected reflect.Type, actual any) error {
	return fmt.Errorf("%w: %s expected %v, got %T", ErrTypeMismatch, role, expected, actual)
}

// NewErrZombieHandler formats an ErrZombieHandler for the given reference.
func NewErrZombieHandler(ref any) error {
	return fmt.Errorf("%w: %v", ErrZombieHandler, ref)
}

// NewErrInvalidHandlerReference formats an ErrInvalidHandlerReference for the given message type.
func NewErrInvalidHandlerReference(messageType reflect.Type) error {
	return fmt.Errorf("%w: no handlers registered for %v", ErrInvalidHandlerReference, messageType)
}

// NewErrInvalidMessageType formats an ErrInvalidMessageType for the given message type.
func NewErrInvalidMessageType(messageType reflect.Type) error {
	return fmt.Errorf("%w: %v is not a concrete type", ErrInvalidMessageType, messageType)
}
