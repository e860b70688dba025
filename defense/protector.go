package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Protector is the player-steered guard that absorbs viruses on contact
type Protector struct {
	Pos    vmath.Vec2F
	Angle  float64 // Facing, degrees
	Fall   float64 // Death animation angle, 0..90
	Health int
}

func newProtector() Protector {
	return Protector{
		Pos:    vmath.Vec2F{X: constants.ProtectorStartX, Y: constants.ProtectorStartY},
		Health: constants.ProtectorMaxHealth,
	}
}

// Alive reports whether the protector still blocks viruses
func (p *Protector) Alive() bool {
	return p.Health > 0
}

// Box is the protector hitbox
func (p *Protector) Box() vmath.Box {
	return vmath.CenteredBox(p.Pos, constants.ProtectorSize, constants.ProtectorSize)
}

func (p *Protector) facing(distance float64) vmath.Vec2F {
	rad := vmath.Radians(p.Angle)
	return vmath.Vec2F{X: math.Cos(rad) * distance, Y: math.Sin(rad) * distance}
}

// MoveForward steps along the facing direction
func (p *Protector) MoveForward(distance float64) {
	p.move(p.facing(distance))
}

// MoveBackward steps against the facing direction
func (p *Protector) MoveBackward(distance float64) {
	p.move(p.facing(-distance))
}

// RotateLeft turns counter-clockwise
func (p *Protector) RotateLeft(deg float64) {
	p.Angle = vmath.WrapDegrees(p.Angle + deg)
}

// RotateRight turns clockwise
func (p *Protector) RotateRight(deg float64) {
	p.Angle = vmath.WrapDegrees(p.Angle - deg)
}

func (p *Protector) move(delta vmath.Vec2F) {
	p.Pos = ProtectorAnnulus.Slide(p.Pos, delta, constants.ProtectorClampIterations, constants.ProtectorMinSlide)
}

func (p *Protector) animateFall() {
	if p.Fall < 90 {
		p.Fall = math.Min(90, p.Fall+constants.ProtectorFallStep)
	}
}
