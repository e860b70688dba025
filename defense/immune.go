package defense

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// ImmuneCell is a player-placed defender that hunts viruses and boost pickups
type ImmuneCell struct {
	Pos        vmath.Vec2F
	PlacedAt   float64 // Game seconds
	Kills      int
	BoostKills int
	Boosted    bool

	// Weak references, re-resolved every tick
	TargetVirus  EntityID
	TargetPickup EntityID
}

// KillCap is the number of kills after which the cell is consumed
func (c *ImmuneCell) KillCap() int {
	if c.Boosted {
		return constants.CellMaxKills + constants.CellBoostKills
	}
	return constants.CellMaxKills
}

// Active reports whether the activation delay has elapsed at game time now
func (c *ImmuneCell) Active(now float64) bool {
	return now-c.PlacedAt >= constants.CellActivationDelay
}

func (s *State) cellSpeed() float64 {
	if s.medicineActive || s.immuneBoost > 0 {
		return constants.CellSpeed * constants.BoostSpeedMultiplier
	}
	return constants.CellSpeed
}

// updateCell advances one cell and reports whether it reached its kill cap
func (s *State) updateCell(c *ImmuneCell, now, dt float64) bool {
	if !c.Active(now) {
		return false
	}

	virus := s.virusByID(c.TargetVirus)
	pickup := s.pickupByID(c.TargetPickup)
	if virus == nil && pickup == nil {
		s.acquireTarget(c)
		virus = s.virusByID(c.TargetVirus)
		pickup = s.pickupByID(c.TargetPickup)
	}

	switch {
	case pickup != nil:
		d := vmath.V2FSub(pickup.Pos, c.Pos)
		dist := vmath.V2FMag(d)
		if dist <= constants.CellCollectRange {
			s.collect(c, pickup)
			c.TargetPickup = NoEntity
			s.acquireTarget(c)
			return false
		}
		s.stepCell(c, d, dist, dt, pickup.Pos)

	case virus != nil:
		d := vmath.V2FSub(virus.Pos, c.Pos)
		dist := vmath.V2FMag(d)
		if dist <= constants.CellAttackRange {
			s.killVirus(c, virus)
			c.TargetVirus = NoEntity
			return c.Kills >= c.KillCap()
		}
		if dist > 0 {
			s.stepCell(c, d, dist, dt, virus.Pos)
		}
	}
	return false
}

func (s *State) stepCell(c *ImmuneCell, d vmath.Vec2F, dist, dt float64, aim vmath.Vec2F) {
	step := s.cellSpeed() * dt
	dir := vmath.V2FScale(d, 1/dist)
	proposed := vmath.V2FAdd(c.Pos, vmath.V2FScale(dir, step))
	c.Pos = CellAnnulus.ConstrainStep(c.Pos, proposed, dir, step, aim)
}

func (s *State) killVirus(c *ImmuneCell, v *Virus) {
	if !s.removeVirus(v) {
		return
	}
	s.score += constants.KillScore
	c.Kills++
	if c.Boosted {
		c.BoostKills++
	}
	s.emit(Event{Kind: EventVirusKilled, Pos: v.Pos})
	s.spawnVirus()
}
