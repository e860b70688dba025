package main

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
)

func virusAt(x, y float64) defense.VirusView {
	return defense.VirusView{Point: defense.Point{X: x, Y: y}}
}

func TestRingTarget(t *testing.T) {
	tests := []struct {
		name    string
		viruses []defense.VirusView
		wantOK  bool
		wantDir [2]float64
	}{
		{"empty", nil, false, [2]float64{}},
		{"single", []defense.VirusView{virusAt(300, 0)}, true, [2]float64{1, 0}},
		{"nearest wins", []defense.VirusView{virusAt(300, 0), virusAt(0, -150)}, true, [2]float64{0, -1}},
		{"origin skipped", []defense.VirusView{virusAt(0, 0)}, false, [2]float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ringTarget(tt.viruses)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			wx, wy := tt.wantDir[0]*placementRing, tt.wantDir[1]*placementRing
			if math.Abs(got.X-wx) > 1e-9 || math.Abs(got.Y-wy) > 1e-9 {
				t.Errorf("target = %+v, want (%v, %v)", got, wx, wy)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	tuning := defense.DefaultTuning()
	crowded := make([]defense.VirusView, 4)
	for i := range crowded {
		crowded[i] = virusAt(200, float64(i*10))
	}

	tests := []struct {
		name      string
		snap      defense.Snapshot
		wantPlace bool
		wantMed   bool
	}{
		{"no viruses", defense.Snapshot{Energy: 100}, false, false},
		{"places toward virus", defense.Snapshot{Energy: 100, Viruses: crowded[:1]}, true, false},
		{"no energy", defense.Snapshot{Energy: tuning.PlacementCost - 1, Viruses: crowded[:1]}, false, false},
		{"cell cap", defense.Snapshot{Energy: 100, Viruses: crowded[:1], Cells: make([]defense.CellView, tuning.MaxCells)}, false, false},
		{"crowded", defense.Snapshot{Energy: 100, Viruses: crowded, MedicineUses: 1}, true, true},
		{"medicine already running", defense.Snapshot{Energy: 100, Viruses: crowded, MedicineUses: 1, MedicineActive: true}, true, false},
		{"paused", defense.Snapshot{Energy: 100, Viruses: crowded, MedicineUses: 1, Paused: true}, false, false},
		{"over", defense.Snapshot{Energy: 100, Viruses: crowded, Over: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act := newAutopilot(1, 4).decide(tt.snap, tuning)
			if act.place != tt.wantPlace || act.medicine != tt.wantMed {
				t.Errorf("got place=%v medicine=%v, want place=%v medicine=%v",
					act.place, act.medicine, tt.wantPlace, tt.wantMed)
			}
		})
	}
}

func TestDecideInterval(t *testing.T) {
	a := newAutopilot(3, 0)
	snap := defense.Snapshot{Energy: 100, Viruses: []defense.VirusView{virusAt(200, 0)}}
	tuning := defense.DefaultTuning()

	var placed []bool
	for i := 0; i < 6; i++ {
		placed = append(placed, a.decide(snap, tuning).place)
	}
	want := []bool{true, false, false, true, false, false}
	for i := range want {
		if placed[i] != want[i] {
			t.Fatalf("decision %d = %v, want %v (all %v)", i, placed[i], want[i], placed)
		}
	}
}

type fakePublisher struct {
	frames int
	last   defense.Snapshot
}

func (p *fakePublisher) Publish(game, runID string, snap defense.Snapshot) error {
	p.frames++
	p.last = snap
	return nil
}

type fakeStore struct {
	results []scoreboard.Result
}

func (s *fakeStore) Record(ctx context.Context, r scoreboard.Result) (scoreboard.Result, error) {
	s.results = append(s.results, r)
	return r, nil
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestHostPublishesRecordsAndRestarts(t *testing.T) {
	mock := engine.NewMockTimeProvider(epoch)
	sess, err := session.New(session.KindDefense, session.Options{Seed: 3, Time: mock})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	pub := &fakePublisher{}
	store := &fakeStore{}
	h := &host{sess: sess, pilot: newAutopilot(1, 0), pub: pub, store: store, publishEvery: 2, restartAfter: 2}

	for i := 0; i < 4; i++ {
		mock.AdvanceSeconds(engine.FixedDelta)
		if !h.tick() {
			t.Fatal("tick stopped the loop")
		}
	}
	if pub.frames != 2 {
		t.Fatalf("frames = %d, want 2", pub.frames)
	}

	mock.AdvanceSeconds(defense.DefaultTuning().GameDuration + 1)
	h.tick()
	if !sess.Over() {
		t.Fatal("round should be over past the level duration")
	}
	if len(store.results) != 1 || !store.results[0].Won || store.results[0].Game != "defense" {
		t.Fatalf("results = %+v", store.results)
	}
	if !pub.last.Over {
		t.Error("final frame should be published")
	}

	h.tick()
	if sess.Over() {
		t.Fatal("round should restart after the delay")
	}
	if len(store.results) != 1 {
		t.Errorf("result recorded more than once: %d", len(store.results))
	}
}
