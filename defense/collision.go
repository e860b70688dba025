package defense

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// VirusBox is the hitbox of a virus
func VirusBox(v *Virus) vmath.Box {
	return vmath.CenteredBox(v.Pos, 2*constants.VirusRadius, 2*constants.VirusRadius)
}

// resolveVirus applies protector and heart contact for a virus that just moved
// The protector is checked first and shields the heart from that virus
func (s *State) resolveVirus(v *Virus) {
	if s.protector.Alive() && VirusBox(v).Overlaps(s.protector.Box()) {
		s.protector.Health -= constants.ProtectorDamage
		s.removeVirus(v)
		s.emit(Event{Kind: EventProtectorHit, Pos: v.Pos, Value: s.protector.Health})
		s.spawnVirus()
		return
	}

	if v.DistanceToHeart() < constants.HeartHitDistance {
		s.heartHealth -= constants.HeartDamage
		s.removeVirus(v)
		s.emit(Event{Kind: EventHeartHit, Pos: v.Pos, Value: s.heartHealth})
		s.spawnVirus()
		if s.heartHealth <= 0 {
			s.finish(false)
		}
	}
}
