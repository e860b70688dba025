package vmath

// Box is an axis-aligned rectangle given by its minimum corner and extent
type Box struct {
	X, Y          float64
	Width, Height float64
}

// CenteredBox builds a box of the given size centered on c
func CenteredBox(c Vec2F, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Overlaps reports strict overlap; touching edges do not collide
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.Width &&
		b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height &&
		b.Y+b.Height > o.Y
}

// Contains reports whether p lies inside the box, edges inclusive
func (b Box) Contains(p Vec2F) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}
