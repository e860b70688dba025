package defense

import (
	"testing"
	"time"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	t    *testing.T
	s    *State
	mock *engine.MockTimeProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mock := engine.NewMockTimeProvider(epoch)
	s := New(DefaultTuning(), engine.NewPausableClock(mock), vmath.NewFastRand(7))
	return &harness{t: t, s: s, mock: mock}
}

// at jumps the game clock to sec seconds after start
func (h *harness) at(sec float64) {
	h.mock.SetTime(epoch.Add(time.Duration(sec * float64(time.Second))))
}

// step advances real time by one tick and runs it
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.mock.AdvanceSeconds(engine.FixedDelta)
		h.s.Tick(engine.FixedDelta)
	}
}

// addVirus inserts a seeking virus at p through the same bookkeeping as the spawner
func (h *harness) addVirus(p vmath.Vec2F) *Virus {
	v := newVirus(h.s.nextID(), 0, h.s.wave, h.s.now(), h.s.rng)
	v.Pos = p
	v.Scattered = true
	h.s.viruses = append(h.s.viruses, v)
	h.s.cornerCounts[v.Corner]++
	return v
}

// addCell inserts an already active cell at p
func (h *harness) addCell(p vmath.Vec2F) *ImmuneCell {
	c := &ImmuneCell{Pos: p, PlacedAt: h.s.now() - 1}
	h.s.cells = append(h.s.cells, c)
	return c
}

func (h *harness) addPickup(p vmath.Vec2F) *Pickup {
	pk := &Pickup{ID: h.s.nextID(), Pos: p}
	h.s.pickups = append(h.s.pickups, pk)
	return pk
}

func (h *harness) checkCornerCounts() {
	h.t.Helper()
	var want [4]int
	for _, v := range h.s.viruses {
		want[v.Corner]++
	}
	if want != h.s.cornerCounts {
		h.t.Fatalf("corner counts %v do not match live viruses %v", h.s.cornerCounts, want)
	}
}

func (h *harness) drainKinds() map[EventKind]int {
	out := make(map[EventKind]int)
	for _, ev := range h.s.DrainEvents() {
		out[ev.Kind]++
	}
	return out
}
