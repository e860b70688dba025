package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// TickRate is the fixed simulation cadence
const TickRate = 60

// TickInterval is the wall-clock period of one tick
const TickInterval = time.Second / TickRate

// FixedDelta is the simulation step in seconds, independent of measured frame time
const FixedDelta = 1.0 / TickRate

// Loop drives a simulation from a single goroutine
// Ticks and input callbacks never run concurrently, so simulations need no locking
type Loop[E any] struct {
	interval time.Duration
	events   <-chan E

	onEvent func(E) bool
	onTick  func() bool

	ticks atomic.Uint64
}

// NewLoop wires the callbacks; either returning false stops Run
// A zero interval uses TickInterval
func NewLoop[E any](interval time.Duration, events <-chan E, onEvent func(E) bool, onTick func() bool) *Loop[E] {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Loop[E]{
		interval: interval,
		events:   events,
		onEvent:  onEvent,
		onTick:   onTick,
	}
}

// Run blocks until ctx is cancelled, the event channel closes, or a callback asks to stop
func (l *Loop[E]) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			if l.onEvent != nil && !l.onEvent(ev) {
				return nil
			}

		case <-ticker.C:
			l.ticks.Add(1)
			if l.onTick != nil && !l.onTick() {
				return nil
			}
		}
	}
}

// Ticks returns how many ticks have fired
func (l *Loop[E]) Ticks() uint64 {
	return l.ticks.Load()
}
