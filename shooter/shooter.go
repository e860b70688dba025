// Package shooter simulates the arena shooter: a turret-like player fires at
// enemies that close in, and the game ends on lost lives or too many misses
package shooter

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Player is the shooter avatar; Angle is in degrees, 0 facing +Y
type Player struct {
	Pos   vmath.Vec2F
	Angle float64
	Life  int
}

// Box is the player hitbox, anchored at its minimum corner
func (p *Player) Box() vmath.Box {
	return vmath.Box{X: p.Pos.X, Y: p.Pos.Y, Width: constants.ShooterPlayerBox, Height: constants.ShooterPlayerBox}
}

type Bullet struct {
	Pos   vmath.Vec2F
	Z     float64
	Angle float64
}

func (b *Bullet) Box() vmath.Box {
	return vmath.Box{X: b.Pos.X, Y: b.Pos.Y, Width: constants.BulletBox, Height: constants.BulletBox}
}

type Enemy struct {
	Pos vmath.Vec2F
}

func (e *Enemy) Box() vmath.Box {
	return vmath.Box{X: e.Pos.X, Y: e.Pos.Y, Width: constants.EnemyBox, Height: constants.EnemyBox}
}

// Heading returns the unit vector for an angle in degrees
func Heading(deg float64) vmath.Vec2F {
	rad := vmath.Radians(deg)
	return vmath.Vec2F{X: math.Sin(rad), Y: math.Cos(rad)}
}

// Camera is the third-person orbit camera
type Camera struct {
	Angle  float64
	Height float64
}

// State owns one shooter game; not safe for concurrent use
type State struct {
	rng *vmath.FastRand

	player  Player
	bullets []Bullet
	enemies []Enemy

	score  int
	misses int
	over   bool
	pulse  float64

	cheat       bool
	firstPerson bool
	gunFollow   bool
	camera      Camera

	ticks  uint64
	events []Event
}

// New creates a game with a full enemy wave
func New(rng *vmath.FastRand) *State {
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}
	s := &State{rng: rng}
	s.camera = Camera{Height: constants.ShooterCameraHeight}
	s.restart()
	return s
}

func (s *State) restart() {
	s.cheat = false
	s.player = Player{Life: constants.ShooterPlayerLife}
	s.score = 0
	s.misses = 0
	s.bullets = nil
	s.enemies = s.enemies[:0]
	for i := 0; i < constants.EnemyCount; i++ {
		s.enemies = append(s.enemies, Enemy{Pos: s.randomSpawn()})
	}
	s.over = false
}

// Restart resets the round; camera settings are kept
func (s *State) Restart() {
	s.restart()
	s.emit(Event{Kind: EventRestart})
}

func (s *State) randomSpawn() vmath.Vec2F {
	lim := int(constants.ShooterGrid - constants.EnemySpawnMargin)
	return vmath.Vec2F{
		X: float64(s.rng.IntRange(-lim, lim)),
		Y: float64(s.rng.IntRange(-lim, lim)),
	}
}

// Fire spawns a bullet ahead of the player along its facing
func (s *State) Fire() {
	if s.over {
		return
	}
	muzzle := vmath.V2FAdd(s.player.Pos, vmath.V2FScale(Heading(s.player.Angle), constants.BulletMuzzle))
	s.bullets = append(s.bullets, Bullet{Pos: muzzle, Z: constants.BulletHeight, Angle: s.player.Angle})
	s.emit(Event{Kind: EventFire})
}

// Tick advances bullets, enemies and the assist by one fixed step
func (s *State) Tick() {
	if s.over {
		return
	}
	s.ticks++

	s.updateBullets()
	s.updateEnemies()

	for len(s.enemies) < constants.EnemyCount {
		s.enemies = append(s.enemies, Enemy{Pos: s.randomSpawn()})
	}

	if s.misses >= constants.MaxMisses {
		s.finish()
	}

	if s.cheat && !s.over {
		s.assist()
	}
}

func (s *State) updateBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Pos = vmath.V2FAdd(b.Pos, vmath.V2FScale(Heading(b.Angle), constants.BulletSpeed))
		if math.Abs(b.Pos.X) > constants.ShooterGrid || math.Abs(b.Pos.Y) > constants.ShooterGrid {
			s.misses++
			s.emit(Event{Kind: EventMiss, Value: s.misses})
			continue
		}

		hit := false
		box := b.Box()
		for i := range s.enemies {
			if box.Overlaps(s.enemies[i].Box()) {
				s.score++
				s.emit(Event{Kind: EventEnemyHit, Pos: s.enemies[i].Pos, Value: s.score})
				s.enemies[i].Pos = s.randomSpawn()
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	s.bullets = kept
}

func (s *State) updateEnemies() {
	for i := range s.enemies {
		e := &s.enemies[i]
		d := vmath.V2FSub(s.player.Pos, e.Pos)
		dist := vmath.V2FMag(d)
		if dist > constants.EnemyStopDistance {
			e.Pos = vmath.V2FAdd(e.Pos, vmath.V2FScale(d, constants.EnemySpeed/dist))
		}
		s.pulse += constants.EnemyPulseStep

		if s.player.Box().Overlaps(e.Box()) {
			s.player.Life--
			s.emit(Event{Kind: EventPlayerHit, Pos: e.Pos, Value: s.player.Life})
			e.Pos = s.randomSpawn()
			if s.player.Life <= 0 {
				s.finish()
			}
		}
	}
}

// assist rotates the player and fires when an enemy is inside the aim cone
func (s *State) assist() {
	s.player.Angle = vmath.WrapDegrees(s.player.Angle + constants.CheatTurnStep)
	for _, e := range s.enemies {
		to := vmath.WrapDegrees(vmath.Degrees(math.Atan2(e.Pos.X-s.player.Pos.X, e.Pos.Y-s.player.Pos.Y)))
		off := vmath.WrapDegrees(s.player.Angle-to+180) - 180
		if math.Abs(off) < constants.CheatFireCone {
			s.Fire()
			return
		}
	}
}

func (s *State) finish() {
	if s.over {
		return
	}
	s.over = true
	s.emit(Event{Kind: EventGameOver, Value: s.score})
}

func (s *State) Over() bool        { return s.over }
func (s *State) Score() int        { return s.score }
func (s *State) Misses() int       { return s.misses }
func (s *State) Life() int         { return s.player.Life }
func (s *State) Player() Player    { return s.player }
func (s *State) Cheat() bool       { return s.cheat }
func (s *State) FirstPerson() bool { return s.firstPerson }
func (s *State) GunFollow() bool   { return s.gunFollow }
func (s *State) Camera() Camera    { return s.camera }
func (s *State) Ticks() uint64     { return s.ticks }
func (s *State) EnemyCount() int   { return len(s.enemies) }
func (s *State) BulletCount() int  { return len(s.bullets) }
