package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// acquireTarget picks a new pickup or virus for c
// Unboosted cells prefer a nearby pickup no other unboosted cell is clearly closer to;
// otherwise the virus with the lowest weighted distance that no peer is clearly closer to
func (s *State) acquireTarget(c *ImmuneCell) {
	if !c.Boosted && len(s.pickups) > 0 {
		if p := s.claimPickup(c); p != nil {
			c.TargetVirus = NoEntity
			c.TargetPickup = p.ID
			return
		}
	}
	c.TargetPickup = NoEntity

	if v := s.claimVirus(c); v != nil {
		c.TargetVirus = v.ID
		return
	}
	c.TargetVirus = NoEntity
}

func (s *State) claimPickup(c *ImmuneCell) *Pickup {
	var nearest *Pickup
	best := math.Inf(1)

	for _, p := range s.pickups {
		if p.Collected {
			continue
		}
		mine := vmath.V2FDist(p.Pos, c.Pos)
		if mine >= constants.CellPickupSight {
			continue
		}
		if s.peerCloser(c, p.Pos, mine-constants.CellPickupBuffer, true) {
			continue
		}
		if mine < best {
			best = mine
			nearest = p
		}
	}
	return nearest
}

func (s *State) claimVirus(c *ImmuneCell) *Virus {
	var nearest *Virus
	best := math.Inf(1)

	for _, v := range s.viruses {
		mine := vmath.V2FDist(v.Pos, c.Pos)
		if mine > constants.CellVirusSight {
			continue
		}
		if s.peerCloser(c, v.Pos, mine-constants.CellVirusBuffer, false) {
			continue
		}
		priority := mine + v.DistanceToHeart()*constants.CellHeartWeight
		if priority < best {
			best = priority
			nearest = v
		}
	}
	return nearest
}

// peerCloser reports whether another cell is nearer than threshold to p
func (s *State) peerCloser(self *ImmuneCell, p vmath.Vec2F, threshold float64, skipBoosted bool) bool {
	for _, other := range s.cells {
		if other == self || (skipBoosted && other.Boosted) {
			continue
		}
		if vmath.V2FDist(p, other.Pos) < threshold {
			return true
		}
	}
	return false
}
