package render

import (
	"math"

	"github.com/lixenwraith/arcade/vmath"
)

// Viewport maps a world rectangle onto a rectangle of buffer cells
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64 // World extent
	Left, Top, Cols, Rows  int     // Cell rectangle
	FlipY                  bool    // World +Y points up on screen
}

// ToCell returns the cell containing p; points outside the extent map outside the rectangle
func (v Viewport) ToCell(p vmath.Vec2F) (int, int) {
	fx := (p.X - v.MinX) / (v.MaxX - v.MinX)
	fy := (p.Y - v.MinY) / (v.MaxY - v.MinY)
	if v.FlipY {
		fy = 1 - fy
	}
	return v.Left + int(math.Floor(fx*float64(v.Cols))), v.Top + int(math.Floor(fy*float64(v.Rows)))
}

// ToWorld returns the world position at the center of a cell
func (v Viewport) ToWorld(col, row int) vmath.Vec2F {
	fx := (float64(col-v.Left) + 0.5) / float64(v.Cols)
	fy := (float64(row-v.Top) + 0.5) / float64(v.Rows)
	if v.FlipY {
		fy = 1 - fy
	}
	return vmath.Vec2F{
		X: v.MinX + fx*(v.MaxX-v.MinX),
		Y: v.MinY + fy*(v.MaxY-v.MinY),
	}
}

// Contains reports whether a cell lies inside the viewport rectangle
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Left && col < v.Left+v.Cols && row >= v.Top && row < v.Top+v.Rows
}

// Segment draws a world-space segment
func (v Viewport) Segment(buf *RenderBuffer, a, b vmath.Vec2F, r rune, fg RGB) {
	x0, y0 := v.ToCell(a)
	x1, y1 := v.ToCell(b)
	buf.Line(x0, y0, x1, y1, r, fg)
}
