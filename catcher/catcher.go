// Package catcher simulates the diamond catcher: a paddle slides along the
// floor to catch diamonds that fall faster after every catch
package catcher

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/vmath"
)

// Color is an RGB triple in [0, 1]
type Color struct {
	R, G, B float64
}

// Palette holds the diamond colors; each spawn picks one at random
var Palette = [...]Color{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
}

// Diamond is the falling target, Pos is its center
type Diamond struct {
	Pos   vmath.Vec2F
	Speed float64
	Color Color
}

// Box is the diamond hitbox, a square of twice the diamond size
func (d *Diamond) Box() vmath.Box {
	return vmath.CenteredBox(d.Pos, 2*constants.DiamondSize, 2*constants.DiamondSize)
}

// PaddleBox returns the paddle hitbox for a paddle centered at x
func PaddleBox(x float64) vmath.Box {
	return vmath.Box{
		X:      x - constants.PaddleWidth/2,
		Y:      constants.PaddleY,
		Width:  constants.PaddleWidth,
		Height: constants.PaddleHeight,
	}
}

// State owns one catcher game; not safe for concurrent use
type State struct {
	clock *engine.PausableClock
	timer *engine.DeltaTimer
	rng   *vmath.FastRand

	paddleX float64
	diamond Diamond
	score   int
	over    bool

	ticks  uint64
	events []Event
}

// New creates a running game on clock; an unstarted clock is started
func New(clock *engine.PausableClock, rng *vmath.FastRand) *State {
	if clock == nil {
		clock = engine.NewPausableClock(nil)
	}
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}
	if !clock.Started() {
		clock.Start()
	}
	s := &State{clock: clock, rng: rng}
	s.timer = engine.NewDeltaTimer(clock)
	s.reset()
	return s
}

func (s *State) reset() {
	s.score = 0
	s.over = false
	s.paddleX = constants.CatcherWidth / 2
	s.diamond = Diamond{Speed: constants.DiamondBaseSpeed}
	s.respawn()
}

// respawn drops a new diamond from the top, keeping the current speed
func (s *State) respawn() {
	margin := constants.DiamondSpawnMargin
	s.diamond.Pos = vmath.Vec2F{
		X: float64(s.rng.IntRange(margin, int(constants.CatcherWidth)-margin)),
		Y: constants.DiamondSpawnY,
	}
	s.diamond.Color = Palette[s.rng.Intn(len(Palette))]
}

// Restart begins a fresh round and resumes a paused clock
func (s *State) Restart() {
	s.clock.Reset()
	s.timer.Rebase()
	s.reset()
	s.emit(Event{Kind: EventRestart})
}

// Tick advances by the game time elapsed since the previous Tick
func (s *State) Tick() {
	s.Step(s.timer.Delta())
}

// Step advances the diamond by dt seconds; no-op while paused or over
func (s *State) Step(dt float64) {
	if s.over || s.clock.IsPaused() {
		return
	}
	s.ticks++

	s.diamond.Pos.Y -= s.diamond.Speed * dt

	if s.diamond.Box().Overlaps(PaddleBox(s.paddleX)) {
		s.score++
		s.emit(Event{Kind: EventCatch, Pos: s.diamond.Pos, Value: s.score})
		s.diamond.Speed += constants.DiamondSpeedStep
		s.respawn()
		return
	}

	if s.diamond.Pos.Y < constants.DiamondFloor {
		s.over = true
		s.emit(Event{Kind: EventGameOver, Value: s.score})
	}
}

// TogglePause flips the pause state and returns it
func (s *State) TogglePause() bool {
	paused := s.clock.Toggle()
	if paused {
		s.emit(Event{Kind: EventPaused})
	} else {
		s.timer.Rebase()
		s.emit(Event{Kind: EventResumed})
	}
	return paused
}

func (s *State) Over() bool       { return s.over }
func (s *State) Paused() bool     { return s.clock.IsPaused() }
func (s *State) Score() int       { return s.score }
func (s *State) PaddleX() float64 { return s.paddleX }
func (s *State) Diamond() Diamond { return s.diamond }
func (s *State) Ticks() uint64    { return s.ticks }
func (s *State) Elapsed() float64 { return s.clock.Seconds() }
