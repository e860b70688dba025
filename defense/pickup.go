package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Pickup is a boost item; the cell that collects it gains extra kill capacity
type Pickup struct {
	ID        EntityID
	Pos       vmath.Vec2F
	Collected bool

	Pulse    float64 // Animation phase, radians
	Rotation float64 // Animation angle, degrees
}

func newPickup(id EntityID, rng *vmath.FastRand) *Pickup {
	angle := rng.Uniform(0, 2*math.Pi)
	dist := rng.Uniform(constants.PickupMinDistance, constants.PickupMaxDistance)
	return &Pickup{
		ID:  id,
		Pos: vmath.V2FFromAngle(angle, dist),
	}
}

func (p *Pickup) animate(dt float64) {
	p.Pulse += dt * 2
	p.Rotation = math.Mod(p.Rotation+dt*90, 360)
}

// spawnScheduledPickups releases each scheduled pickup once its time has passed
func (s *State) spawnScheduledPickups(now float64) {
	for i, at := range constants.PickupSchedule {
		if now >= at && !s.pickupSpawned[i] {
			p := newPickup(s.nextID(), s.rng)
			s.pickups = append(s.pickups, p)
			s.pickupSpawned[i] = true
			s.emit(Event{Kind: EventPickupSpawned, Pos: p.Pos})
		}
	}
}

// collectTouchedPickups boosts the first cell overlapping each pickup
func (s *State) collectTouchedPickups() {
	if len(s.pickups) == 0 || len(s.cells) == 0 {
		return
	}
	reach := constants.CellRadius + constants.PickupRadius
	for _, p := range append([]*Pickup(nil), s.pickups...) {
		for _, c := range s.cells {
			if vmath.V2FDist(c.Pos, p.Pos) < reach {
				s.collect(c, p)
				break
			}
		}
	}
}

func (s *State) collect(c *ImmuneCell, p *Pickup) {
	c.Boosted = true
	s.removePickup(p)
	s.emit(Event{Kind: EventPickupCollected, Pos: p.Pos})
}
