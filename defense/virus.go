package defense

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Corner anchors, indexed by Virus.Corner
var cornerAnchors = [constants.CornerCount]vmath.Vec2F{
	{X: -constants.ArenaHalfExtent, Y: -constants.ArenaHalfExtent},
	{X: -constants.ArenaHalfExtent, Y: constants.ArenaHalfExtent},
	{X: constants.ArenaHalfExtent, Y: -constants.ArenaHalfExtent},
	{X: constants.ArenaHalfExtent, Y: constants.ArenaHalfExtent},
}

// CornerAnchor returns the spawn point for a corner index
func CornerAnchor(corner int) vmath.Vec2F {
	return cornerAnchors[corner]
}

// Virus is a hostile that scatters briefly after spawning, then seeks the heart
type Virus struct {
	ID     EntityID
	Pos    vmath.Vec2F
	Speed  float64
	Corner int

	SpawnedAt       float64 // Game seconds
	ScatterDuration float64
	ScatterTarget   vmath.Vec2F
	Scattered       bool // One-way: once set the virus only seeks
}

// VirusSpeed is the movement speed of a virus during wave
func VirusSpeed(wave int) float64 {
	return constants.VirusBaseSpeed + float64(wave)*constants.VirusSpeedPerWave
}

func newVirus(id EntityID, corner, wave int, now float64, rng *vmath.FastRand) *Virus {
	inner := constants.ArenaHalfExtent - constants.ScatterMargin
	return &Virus{
		ID:              id,
		Pos:             cornerAnchors[corner],
		Speed:           VirusSpeed(wave),
		Corner:          corner,
		SpawnedAt:       now,
		ScatterDuration: rng.Uniform(constants.ScatterMinDuration, constants.ScatterMaxDuration),
		ScatterTarget: vmath.Vec2F{
			X: rng.Uniform(-inner, inner),
			Y: rng.Uniform(-inner, inner),
		},
	}
}

// Seeking reports whether the virus has left its scatter phase at game time now
func (v *Virus) Seeking(now float64) bool {
	return v.Scattered || now-v.SpawnedAt >= v.ScatterDuration
}

// DistanceToHeart is the planar distance to the protected asset
func (v *Virus) DistanceToHeart() float64 {
	return vmath.V2FMag(v.Pos)
}

func (v *Virus) update(now, dt float64, rng *vmath.FastRand) {
	step := v.Speed * dt

	if !v.Seeking(now) {
		d := vmath.V2FSub(v.ScatterTarget, v.Pos)
		dist := vmath.V2FMag(d)
		if dist > constants.ScatterArrival {
			v.Pos = vmath.V2FAdd(v.Pos, vmath.V2FScale(d, step/dist))
		} else {
			v.Scattered = true
		}
		return
	}

	// Heart sits at the origin
	dist := vmath.V2FMag(v.Pos)
	if dist == 0 {
		return
	}
	jx := rng.Uniform(-constants.SeekJitter, constants.SeekJitter) * step
	jy := rng.Uniform(-constants.SeekJitter, constants.SeekJitter) * step
	v.Pos.X += -v.Pos.X/dist*step + jx
	v.Pos.Y += -v.Pos.Y/dist*step + jy
}
