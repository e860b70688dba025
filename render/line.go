package render

// Line rasterizes a segment with the midpoint algorithm, calling plot once per point
// The segment is mapped into zone 0 (0 <= dy <= dx), stepped there and mapped back
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	zone := lineZone(x1-x0, y1-y0)
	ax, ay := toZone0(x0, y0, zone)
	bx, by := toZone0(x1, y1, zone)

	dx := bx - ax
	dy := by - ay
	d := 2*dy - dx
	incE := 2 * dy
	incNE := 2 * (dy - dx)

	x, y := ax, ay
	for x <= bx {
		px, py := fromZone0(x, y, zone)
		plot(px, py)
		if d > 0 {
			y++
			d += incNE
		} else {
			d += incE
		}
		x++
	}
}

// lineZone classifies a direction into one of eight zones, counter-clockwise from +X
func lineZone(dx, dy int) int {
	if abs(dx) >= abs(dy) {
		switch {
		case dx >= 0 && dy >= 0:
			return 0
		case dx < 0 && dy >= 0:
			return 3
		case dx < 0 && dy < 0:
			return 4
		default:
			return 7
		}
	}
	switch {
	case dx >= 0 && dy >= 0:
		return 1
	case dx < 0 && dy >= 0:
		return 2
	case dx < 0 && dy < 0:
		return 5
	default:
		return 6
	}
}

func toZone0(x, y, zone int) (int, int) {
	switch zone {
	case 1:
		return y, x
	case 2:
		return y, -x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return -y, x
	case 7:
		return x, -y
	}
	return x, y
}

func fromZone0(x, y, zone int) (int, int) {
	switch zone {
	case 1:
		return y, x
	case 2:
		return -y, x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return y, -x
	case 7:
		return x, -y
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Line draws a segment of r in fg, preserving backgrounds
func (b *RenderBuffer) Line(x0, y0, x1, y1 int, r rune, fg RGB) {
	Line(x0, y0, x1, y1, func(x, y int) {
		b.SetFgOnly(x, y, r, fg)
	})
}
