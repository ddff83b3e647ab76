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

package metric

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SystemMetric groups the instruments recorded by an actor system
type SystemMetric struct {
	// messages taken off the input queue
	dispatched metric.Int64Counter
	// messages that found no subscriber
	dropped metric.Int64Counter
	// handler invocations
	invoked metric.Int64Counter
	spawned metric.Int64Counter
	ended   metric.Int64Counter
	// time spent in one dispatch pass, in microseconds
	duration metric.Int64Histogram

	attrs metric.MeasurementOption
}

// NewSystemMetric creates the instruments from the given meter.
// Every measurement carries the system name as attribute.
func NewSystemMetric(meter metric.Meter, systemName string) (*SystemMetric, error) {
	instruments := &SystemMetric{
		attrs: metric.WithAttributes(attribute.String("system", systemName)),
	}
	var err error

	if instruments.dispatched, err = meter.Int64Counter(
		"skein.messages.dispatched",
		metric.WithDescription("Total number of messages dispatched"),
	); err != nil {
		return nil, fmt.Errorf("failed to create dispatched instrument, %w", err)
	}

	if instruments.dropped, err = meter.Int64Counter(
		"skein.messages.dropped",
		metric.WithDescription("Total number of messages without subscriber"),
	); err != nil {
		return nil, fmt.Errorf("failed to create dropped instrument, %w", err)
	}

	if instruments.invoked, err = meter.Int64Counter(
		"skein.handlers.invoked",
		metric.WithDescription("Total number of handler invocations"),
	); err != nil {
		return nil, fmt.Errorf("failed to create invoked instrument, %w", err)
	}

	if instruments.spawned, err = meter.Int64Counter(
		"skein.actors.spawned",
		metric.WithDescription("Total number of actors spawned"),
	); err != nil {
		return nil, fmt.Errorf("failed to create spawned instrument, %w", err)
	}

	if instruments.ended, err = meter.Int64Counter(
		"skein.actors.ended",
		metric.WithDescription("Total number of actors that ended"),
	); err != nil {
		return nil, fmt.Errorf("failed to create ended instrument, %w", err)
	}

	if instruments.duration, err = meter.Int64Histogram(
		"skein.dispatch.duration",
		metric.WithDescription("The latency of a dispatch pass in microseconds"),
		metric.WithUnit("us"),
	); err != nil {
		return nil, fmt.Errorf("failed to create duration instrument, %w", err)
	}

	return instruments, nil
}

// RecordDispatch records one dispatch pass
func (x *SystemMetric) RecordDispatch(ctx context.Context, invoked int, elapsed time.Duration) {
	x.dispatched.Add(ctx, 1, x.attrs)
	if invoked == 0 {
		x.dropped.Add(ctx, 1, x.attrs)
	} else {
		x.invoked.Add(ctx, int64(invoked), x.attrs)
	}
	x.duration.Record(ctx, elapsed.Microseconds(), x.attrs)
}

// RecordSpawned records newly created actors
func (x *SystemMetric) RecordSpawned(ctx context.Context, count int) {
	if count > 0 {
		x.spawned.Add(ctx, int64(count), x.attrs)
	}
}

// RecordEnded records removed actors
func (x *SystemMetric) RecordEnded(ctx context.Context, count int) {
	if count > 0 {
		x.ended.Add(ctx, int64(count), x.attrs)
	}
}

func (x *SystemMetric) DispatchedCount() metric.Int64Counter {
	return x.dispatched
}

func (x *SystemMetric) DroppedCount() metric.Int64Counter {
	return x.dropped
}

func (x *SystemMetric) InvokedCount() metric.Int64Counter {
	return x.invoked
}

func (x *SystemMetric) SpawnedCount() metric.Int64Counter {
	return x.spawned
}

func (x *SystemMetric) EndedCount() metric.Int64Counter {
	return x.ended
}

func (x *SystemMetric) DispatchDuration() metric.Int64Histogram {
	return x.duration
}
