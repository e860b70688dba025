// Package defense simulates the virus-versus-immunity tower defense game
// State is the single owner of all game data; it is not safe for concurrent use
// and is meant to be driven from one loop goroutine
package defense

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/vmath"
)

// State is the defense game aggregate
type State struct {
	tuning Tuning
	clock  *engine.PausableClock
	rng    *vmath.FastRand
	camera Camera

	lastID EntityID

	viruses      []*Virus
	cells        []*ImmuneCell
	pickups      []*Pickup
	protector    Protector
	cornerCounts [constants.CornerCount]int

	heartHealth int
	energy      int
	score       int
	wave        int

	over bool
	won  bool

	lastSpawn     float64
	lastRegen     float64
	waveFlashAt   float64
	pickupSpawned [len(constants.PickupSchedule)]bool
	immuneBoost   float64 // Global boost seconds remaining

	medicineUses   int
	medicineActive bool
	medicineEndsAt float64

	viewMode    bool
	marker      vmath.Vec2F
	markerAt    float64
	hasMarker   bool
	feedback    PlacementResult
	feedbackAt  float64
	hasFeedback bool

	ticks   uint64
	spawned int
	events  []Event
}

// New creates a started game
// clock and rng are owned by the state from here on
func New(tuning Tuning, clock *engine.PausableClock, rng *vmath.FastRand) *State {
	if clock == nil {
		clock = engine.NewPausableClock(nil)
	}
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}
	s := &State{
		tuning: tuning,
		clock:  clock,
		rng:    rng,
	}
	s.reset()
	return s
}

// Reset restores every counter, clears all collections and restarts the clock
func (s *State) Reset() {
	s.reset()
	s.emit(Event{Kind: EventReset})
}

func (s *State) reset() {
	s.viruses = nil
	s.cells = nil
	s.pickups = nil
	s.protector = newProtector()
	s.cornerCounts = [constants.CornerCount]int{}

	s.heartHealth = constants.HeartMaxHealth
	s.energy = constants.EnergyMax
	s.score = 0
	s.wave = 1
	s.over = false
	s.won = false

	s.lastSpawn = 0
	s.lastRegen = 0
	s.waveFlashAt = 0
	s.pickupSpawned = [len(constants.PickupSchedule)]bool{}
	s.immuneBoost = s.tuning.OpeningBoost

	s.medicineUses = s.tuning.MedicineUses
	s.medicineActive = false
	s.medicineEndsAt = 0

	s.viewMode = false
	s.camera = DefaultCamera()
	s.hasMarker = false
	s.hasFeedback = false
	s.spawned = 0
	s.events = nil

	s.clock.Reset()
}

func (s *State) now() float64 {
	return s.clock.Seconds()
}

func (s *State) finish(won bool) {
	if s.over {
		return
	}
	s.over = true
	s.won = won
	if won {
		s.emit(Event{Kind: EventWon, Value: s.score})
	} else {
		s.emit(Event{Kind: EventLost, Value: s.score})
	}
}

// Clock exposes the game clock for frontends that display elapsed time
func (s *State) Clock() *engine.PausableClock { return s.clock }

func (s *State) Tuning() Tuning                           { return s.tuning }
func (s *State) Over() bool                               { return s.over }
func (s *State) Won() bool                                { return s.won }
func (s *State) Paused() bool                             { return s.clock.IsPaused() }
func (s *State) Score() int                               { return s.score }
func (s *State) Wave() int                                { return s.wave }
func (s *State) Energy() int                              { return s.energy }
func (s *State) HeartHealth() int                         { return s.heartHealth }
func (s *State) Protector() Protector                     { return s.protector }
func (s *State) CornerCounts() [constants.CornerCount]int { return s.cornerCounts }
func (s *State) VirusCount() int                          { return len(s.viruses) }
func (s *State) CellCount() int                           { return len(s.cells) }
func (s *State) PickupCount() int                         { return len(s.pickups) }
func (s *State) MedicineUses() int                        { return s.medicineUses }
func (s *State) MedicineActive() bool                     { return s.medicineActive }
func (s *State) ViewMode() bool                           { return s.viewMode }
func (s *State) Camera() Camera                           { return s.camera }
func (s *State) Ticks() uint64                            { return s.ticks }
func (s *State) TotalSpawned() int                        { return s.spawned }
func (s *State) Elapsed() float64                         { return s.now() }
func (s *State) ImmuneBoostLeft() float64                 { return s.immuneBoost }
