// Package session runs one game for a frontend
//
// A Session owns the simulation, turns frontend-neutral keys and clicks into
// game input, and converts simulation events into sound cues, log lines,
// metrics and a scoreboard result when a round ends.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/shooter"
	"github.com/lixenwraith/arcade/status"
	"github.com/lixenwraith/arcade/vmath"
)

// Kind selects the game
type Kind string

const (
	KindDefense Kind = "defense"
	KindShooter Kind = "shooter"
	KindCatcher Kind = "catcher"
)

// Kinds lists every playable game
var Kinds = []Kind{KindDefense, KindShooter, KindCatcher}

var ErrUnknownKind = errors.New("unknown game")

// ParseKind accepts a game name case-insensitively
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Options configures a Session; zero values are usable
type Options struct {
	Tuning   defense.Tuning
	Seed     uint64
	Time     engine.TimeProvider
	Registry *status.Registry
	Logger   *log.Logger
}

// Session is one running game
type Session struct {
	kind  Kind
	runID string
	clock *engine.PausableClock

	defense *defense.State
	shooter *shooter.State
	catcher *catcher.State

	rec    *status.Recorder
	logger *log.Logger

	cues     []audio.Cue
	pending  *scoreboard.Result
	reported bool
	quit     bool
}

// New creates a session with its game started
func New(kind Kind, opts Options) (*Session, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	provider := opts.Time
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	rng := vmath.NewFastRand(opts.Seed)
	if opts.Seed == 0 {
		rng = vmath.NewTimeSeededRand()
	}
	registry := opts.Registry
	if registry == nil {
		registry = status.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		kind:   kind,
		runID:  uuid.NewString(),
		clock:  engine.NewPausableClock(provider),
		rec:    registry.Recorder(string(kind)),
		logger: logger,
	}

	switch kind {
	case KindDefense:
		tuning := opts.Tuning
		if tuning == (defense.Tuning{}) {
			tuning = defense.DefaultTuning()
		}
		s.defense = defense.New(tuning, s.clock, rng)
	case KindShooter:
		s.shooter = shooter.New(rng)
	case KindCatcher:
		s.catcher = catcher.New(s.clock, rng)
	}

	s.logger.Printf("%s run %s started", kind, s.runID)
	return s, nil
}

func (s *Session) Kind() Kind                 { return s.kind }
func (s *Session) RunID() string              { return s.runID }
func (s *Session) Defense() *defense.State    { return s.defense }
func (s *Session) Shooter() *shooter.State    { return s.shooter }
func (s *Session) Catcher() *catcher.State    { return s.catcher }
func (s *Session) QuitRequested() bool        { return s.quit }
func (s *Session) Recorder() *status.Recorder { return s.rec }

// ScreenSize is the logical pixel size the game's click coordinates use
func (s *Session) ScreenSize() (w, h float64) {
	switch s.kind {
	case KindCatcher:
		return constants.CatcherWidth, constants.CatcherHeight
	case KindShooter:
		return constants.ShooterScreenWidth, constants.ShooterScreenHeight
	}
	return constants.ScreenWidth, constants.ScreenHeight
}

// Tick advances the game one fixed step and collects what it emitted
func (s *Session) Tick() {
	switch s.kind {
	case KindDefense:
		s.defense.Tick(engine.FixedDelta)
	case KindShooter:
		s.shooter.Tick()
	case KindCatcher:
		s.catcher.Tick()
	}
	s.rec.Count("ticks")
	s.collect()
	s.publishMetrics()
}

// Restart begins a fresh round of the same game
func (s *Session) Restart() {
	switch s.kind {
	case KindDefense:
		s.defense.Reset()
	case KindShooter:
		s.shooter.Restart()
	case KindCatcher:
		s.catcher.Restart()
	}
	s.collect()
}

// Over reports whether the current round has ended
func (s *Session) Over() bool {
	switch s.kind {
	case KindDefense:
		return s.defense.Over()
	case KindShooter:
		return s.shooter.Over()
	case KindCatcher:
		return s.catcher.Over()
	}
	return false
}

// Score returns the current round score
func (s *Session) Score() int {
	switch s.kind {
	case KindDefense:
		return s.defense.Score()
	case KindShooter:
		return s.shooter.Score()
	case KindCatcher:
		return s.catcher.Score()
	}
	return 0
}

// PulseWanted reports whether the looping medicine beat should play
func (s *Session) PulseWanted() bool {
	return s.kind == KindDefense && s.defense.MedicineActive() && !s.defense.Paused()
}

// DrainCues returns sounds requested since the previous call
func (s *Session) DrainCues() []audio.Cue {
	out := s.cues
	s.cues = nil
	return out
}

// TakeResult returns the finished round once, after it ends
func (s *Session) TakeResult() (scoreboard.Result, bool) {
	if s.pending == nil {
		return scoreboard.Result{}, false
	}
	r := *s.pending
	s.pending = nil
	return r, true
}

// collect drains simulation events into cues, logs and counters
func (s *Session) collect() {
	switch s.kind {
	case KindDefense:
		for _, ev := range s.defense.DrainEvents() {
			s.note(ev.Kind.String(), ev.Value, audio.DefenseCue(ev))
		}
	case KindShooter:
		for _, ev := range s.shooter.DrainEvents() {
			s.note(ev.Kind.String(), ev.Value, audio.ShooterCue(ev))
		}
	case KindCatcher:
		for _, ev := range s.catcher.DrainEvents() {
			if ev.Kind == catcher.EventQuit {
				s.quit = true
			}
			s.note(ev.Kind.String(), ev.Value, audio.CatcherCue(ev))
		}
	}

	over := s.Over()
	if over && !s.reported {
		s.reported = true
		r := s.result()
		s.pending = &r
		s.logger.Printf("%s run %s over: score=%d wave=%d won=%t", s.kind, s.runID, r.Score, r.Wave, r.Won)
	} else if !over {
		s.reported = false
	}
}

func (s *Session) note(name string, value int, cue audio.Cue) {
	s.rec.Count("events." + name)
	s.logger.Printf("%s %s value=%d", s.kind, name, value)
	if cue != audio.CueNone {
		s.cues = append(s.cues, cue)
	}
}

func (s *Session) result() scoreboard.Result {
	r := scoreboard.Result{Game: string(s.kind), Score: s.Score()}
	switch s.kind {
	case KindDefense:
		r.Wave = s.defense.Wave()
		r.Won = s.defense.Won()
		r.DurationMs = int64(s.defense.Elapsed() * 1000)
	case KindShooter:
		r.DurationMs = int64(s.shooter.Ticks()) * 1000 / engine.TickRate
	case KindCatcher:
		r.DurationMs = int64(s.catcher.Elapsed() * 1000)
	}
	return r
}

func (s *Session) publishMetrics() {
	s.rec.Int("score", int64(s.Score()))
	s.rec.Flag("over", s.Over())
	switch s.kind {
	case KindDefense:
		d := s.defense
		s.rec.Int("wave", int64(d.Wave()))
		s.rec.Int("energy", int64(d.Energy()))
		s.rec.Int("heart", int64(d.HeartHealth()))
		s.rec.Int("viruses", int64(d.VirusCount()))
		s.rec.Int("cells", int64(d.CellCount()))
		s.rec.Float("elapsed", d.Elapsed())
	case KindShooter:
		s.rec.Int("life", int64(s.shooter.Life()))
		s.rec.Int("misses", int64(s.shooter.Misses()))
		s.rec.Int("bullets", int64(s.shooter.BulletCount()))
	case KindCatcher:
		s.rec.Float("speed", s.catcher.Diamond().Speed)
		s.rec.Flag("paused", s.catcher.Paused())
	}
}
