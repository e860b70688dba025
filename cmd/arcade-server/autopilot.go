package main

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/vmath"
)

// placementRing is the distance from the heart where the autopilot drops cells
const placementRing = (constants.CellMinHeartDistance + constants.CellMaxHeartDistance) / 2

// action is one autopilot decision
type action struct {
	place    bool
	at       vmath.Vec2F
	medicine bool
}

// autopilot plays the defense for spectators
// It places a cell on the ring facing the closest virus whenever energy allows,
// and spends medicine once the field gets crowded
type autopilot struct {
	every     int
	crowd     int
	countdown int
}

func newAutopilot(every, crowd int) *autopilot {
	if every < 1 {
		every = 1
	}
	return &autopilot{every: every, crowd: crowd}
}

func (a *autopilot) decide(snap defense.Snapshot, tuning defense.Tuning) action {
	var act action
	if snap.Over || snap.Paused {
		return act
	}

	if a.countdown > 0 {
		a.countdown--
		return act
	}
	a.countdown = a.every - 1

	if a.crowd > 0 && len(snap.Viruses) >= a.crowd && snap.MedicineUses > 0 && !snap.MedicineActive {
		act.medicine = true
	}

	if snap.Energy < tuning.PlacementCost || len(snap.Cells) >= tuning.MaxCells {
		return act
	}
	if at, ok := ringTarget(snap.Viruses); ok {
		act.place = true
		act.at = at
	}
	return act
}

// step decides and applies the decision to the simulation
func (a *autopilot) step(d *defense.State) action {
	act := a.decide(d.Snapshot(), d.Tuning())
	if act.medicine {
		d.ActivateMedicine()
	}
	if act.place {
		d.PlaceAt(act.at)
	}
	return act
}

// ringTarget returns the ring point in the direction of the virus nearest the heart
func ringTarget(viruses []defense.VirusView) (vmath.Vec2F, bool) {
	best := -1.0
	var dir vmath.Vec2F
	for _, v := range viruses {
		p := vmath.Vec2F{X: v.X, Y: v.Y}
		d := vmath.V2FMagSq(p)
		if d == 0 {
			continue
		}
		if best < 0 || d < best {
			best = d
			dir = p
		}
	}
	if best < 0 {
		return vmath.Vec2F{}, false
	}
	return vmath.V2FScale(vmath.V2FNormalize(dir), placementRing), true
}
