package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures game time: real time since Start minus every paused interval
// Before Start it reports zero elapsed
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	started   bool
	startTime time.Time // Real time at Start

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Sum of completed pauses
}

// NewPausableClock creates a stopped clock reading from provider
// A nil provider falls back to the monotonic system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider}
}

// Start records the origin and clears any pause state
func (pc *PausableClock) Start() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.started = true
	pc.startTime = pc.provider.Now()
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
	pc.isPaused.Store(false)
}

// Reset re-arms the clock; identical to Start, named for the restart path
func (pc *PausableClock) Reset() {
	pc.Start()
}

// Started reports whether Start has been called
func (pc *PausableClock) Started() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.started
}

// Elapsed returns game time since Start, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if !pc.started {
		return 0
	}

	now := pc.provider.Now()
	if pc.isPaused.Load() {
		// Frozen at the pause point
		now = pc.pauseStartTime
	}
	elapsed := now.Sub(pc.startTime) - pc.totalPausedTime
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Seconds is Elapsed in float seconds
func (pc *PausableClock) Seconds() float64 {
	return pc.Elapsed().Seconds()
}

// Pause freezes game time; no-op when already paused or not started
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.started {
		return
	}
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues game time; no-op when not paused
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return pc.IsPaused()
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// DeltaTimer reports game time between successive Delta calls
// Pauses are excluded because it reads a PausableClock
type DeltaTimer struct {
	clock *PausableClock
	last  time.Duration
}

// NewDeltaTimer creates a timer anchored at the clock's current elapsed time
func NewDeltaTimer(clock *PausableClock) *DeltaTimer {
	return &DeltaTimer{clock: clock, last: clock.Elapsed()}
}

// Delta returns seconds since the previous call
func (d *DeltaTimer) Delta() float64 {
	now := d.clock.Elapsed()
	dt := now - d.last
	d.last = now
	if dt < 0 {
		return 0
	}
	return dt.Seconds()
}

// Rebase discards accumulated time, used after a clock reset
func (d *DeltaTimer) Rebase() {
	d.last = d.clock.Elapsed()
}
