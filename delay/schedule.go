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

// Schedule is the message the delay scheduler understands: it asks for the
// message built by its factory to be sent once Deadline has passed.
// Sending a Schedule has no effect until a scheduler is installed.
type Schedule struct {
	// Deadline is the earliest time at which the message is delivered
	Deadline time.Time
	produce  func() any
}

// After schedules payload for delivery once d has elapsed.
// The payload is captured by value and materialized at fire time.
func After[T any](payload T, d time.Duration) *Schedule {
	return At(payload, time.Now().Add(d))
}

// At schedules payload for delivery at deadline
func At[T any](payload T, deadline time.Time) *Schedule {
	return &Schedule{
		Deadline: deadline,
		produce: func() any {
			return payload
		},
	}
}

// AfterFunc schedules the message returned by factory for delivery once d
// has elapsed. The factory runs at fire time; a nil result is dropped.
func AfterFunc(d time.Duration, factory func() any) *Schedule {
	return AtFunc(time.Now().Add(d), factory)
}

// AtFunc schedules the message returned by factory for delivery at deadline
func AtFunc(deadline time.Time, factory func() any) *Schedule {
	return &Schedule{
		Deadline: deadline,
		produce:  factory,
	}
}

// materialize builds the scheduled message
func (s *Schedule) materialize() any {
	if s.produce == nil {
		return nil
	}
	return s.produce()
}
