package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Annulus is a ring around Center that movers must stay within
type Annulus struct {
	Center vmath.Vec2F
	Min    float64
	Max    float64
}

// CellAnnulus is the region immune cell centers are confined to
var CellAnnulus = Annulus{
	Min: constants.CellMinHeartDistance,
	Max: constants.CellMaxHeartDistance,
}

// ProtectorAnnulus is the region the protector is confined to
var ProtectorAnnulus = Annulus{
	Min: constants.ProtectorMinDistance,
	Max: constants.ProtectorMaxDistance,
}

// Contains reports whether p lies in the closed ring
func (a Annulus) Contains(p vmath.Vec2F) bool {
	d := vmath.V2FDist(p, a.Center)
	return d >= a.Min && d <= a.Max
}

// ConstrainStep corrects a proposed move from cur so the result stays in the ring
// dir is the unit travel direction, step the intended distance and aim the mover's target,
// used to pick a side when the inner push-out would overshoot the outer bound
func (a Annulus) ConstrainStep(cur, proposed, dir vmath.Vec2F, step float64, aim vmath.Vec2F) vmath.Vec2F {
	rel := vmath.V2FSub(proposed, a.Center)
	d := vmath.V2FMag(rel)

	if d < a.Min {
		if d == 0 {
			return cur
		}
		push := a.Min - d + constants.CellPushExtra
		out := vmath.V2FAdd(a.Center, vmath.V2FScale(rel, (a.Min+push)/d))
		if vmath.V2FDist(out, a.Center) <= a.Max {
			return out
		}

		// Push would leave the ring: take the tangent point nearer the aim
		angle := math.Atan2(rel.Y, rel.X)
		safe := (a.Min + a.Max) / 2
		p1 := vmath.V2FAdd(a.Center, vmath.V2FFromAngle(angle+math.Pi/2, safe))
		p2 := vmath.V2FAdd(a.Center, vmath.V2FFromAngle(angle-math.Pi/2, safe))
		if vmath.V2FDist(p1, aim) < vmath.V2FDist(p2, aim) {
			return p1
		}
		return p2
	}

	if d > a.Max {
		if vmath.V2FDist(cur, a.Center) >= a.Max {
			return cur
		}
		best := a.clampAlong(cur, dir, step, constants.CellClampIterations)
		if best > 0 {
			return vmath.V2FAdd(cur, vmath.V2FScale(dir, best))
		}
		return cur
	}

	return proposed
}

// clampAlong binary-searches the longest step along dir that keeps the mover inside the outer bound
func (a Annulus) clampAlong(cur, dir vmath.Vec2F, step float64, iterations int) float64 {
	lo, hi := 0.0, step
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		p := vmath.V2FAdd(cur, vmath.V2FScale(dir, mid))
		if vmath.V2FDist(p, a.Center) <= a.Max {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Slide moves cur by delta when the destination is in the ring, otherwise
// binary-searches the longest in-ring fraction of the move and takes it if above minStep
func (a Annulus) Slide(cur, delta vmath.Vec2F, iterations int, minStep float64) vmath.Vec2F {
	next := vmath.V2FAdd(cur, delta)
	if a.Contains(next) {
		return next
	}

	length := vmath.V2FMag(delta)
	if length == 0 {
		return cur
	}
	dir := vmath.V2FScale(delta, 1/length)

	lo, hi, best := 0.0, length, 0.0
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		if a.Contains(vmath.V2FAdd(cur, vmath.V2FScale(dir, mid))) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	if best > minStep {
		return vmath.V2FAdd(cur, vmath.V2FScale(dir, best))
	}
	return cur
}
