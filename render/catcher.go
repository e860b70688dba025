package render

import (
	"fmt"

	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// CatcherRenderer draws the catcher arena with line primitives
type CatcherRenderer struct{}

// Viewport maps the catcher arena (origin bottom-left) onto the buffer above the status row
func (r *CatcherRenderer) Viewport(cols, rows int) Viewport {
	return Viewport{MaxX: constants.CatcherWidth, MaxY: constants.CatcherHeight, Cols: cols, Rows: max(rows-1, 1), FlipY: true}
}

// CellToArena maps a terminal cell to top-left arena coordinates, the form catcher clicks expect
func (r *CatcherRenderer) CellToArena(col, row, cols, rows int) (float64, float64) {
	p := r.Viewport(cols, rows).ToWorld(col, row)
	return p.X, constants.CatcherHeight - p.Y
}

// Render draws the full catcher frame into buf
func (r *CatcherRenderer) Render(buf *RenderBuffer, snap *catcher.Snapshot) {
	buf.Clear()
	cols, rows := buf.Size()
	if cols == 0 || rows == 0 {
		return
	}
	vp := r.Viewport(cols, rows)

	r.drawButtons(buf, vp, snap.Paused)

	if !snap.Over {
		c := snap.Color
		fg := RGBFromUnit(c.R, c.G, c.B)
		x, y, s := snap.DiamondX, snap.DiamondY, constants.DiamondSize
		r.polyline(buf, vp, '*', fg,
			vmath.Vec2F{X: x, Y: y + s}, vmath.Vec2F{X: x + s, Y: y},
			vmath.Vec2F{X: x, Y: y - s}, vmath.Vec2F{X: x - s, Y: y},
			vmath.Vec2F{X: x, Y: y + s})
	}

	paddleFg := RgbPaddle
	if snap.Over {
		paddleFg = RgbPaddleOver
	}
	half := constants.PaddleWidth / 2
	px, py, h, in := snap.PaddleX, constants.PaddleY, constants.PaddleHeight, constants.PaddleInset
	r.polyline(buf, vp, '=', paddleFg,
		vmath.Vec2F{X: px - half + in, Y: py}, vmath.Vec2F{X: px - half, Y: py + h},
		vmath.Vec2F{X: px + half, Y: py + h}, vmath.Vec2F{X: px + half - in, Y: py},
		vmath.Vec2F{X: px - half + in, Y: py})

	buf.TextWithBg(0, rows-1, fmt.Sprintf(" SCORE %d ", snap.Score), RgbStatusText, RgbEnergyBg)
	switch {
	case snap.Over:
		buf.TextCentered(rows/2, fmt.Sprintf("GAME OVER  Final Score %d", snap.Score), RgbWarning)
	case snap.Paused:
		buf.TextCentered(rows/2, "PAUSED", RgbBanner)
	}
}

func (r *CatcherRenderer) polyline(buf *RenderBuffer, vp Viewport, ch rune, fg RGB, pts ...vmath.Vec2F) {
	for i := 0; i+1 < len(pts); i++ {
		vp.Segment(buf, pts[i], pts[i+1], ch, fg)
	}
}

func (r *CatcherRenderer) drawButtons(buf *RenderBuffer, vp Viewport, paused bool) {
	half := constants.ButtonSize / 2
	y := constants.ButtonY

	// Restart arrow
	x := constants.RestartButtonX
	r.polyline(buf, vp, '<', RgbRestartButton, vmath.Vec2F{X: x, Y: y + half}, vmath.Vec2F{X: x - half, Y: y}, vmath.Vec2F{X: x, Y: y - half})
	r.polyline(buf, vp, '-', RgbRestartButton, vmath.Vec2F{X: x - half, Y: y}, vmath.Vec2F{X: x + half, Y: y})

	// Play when paused, otherwise pause bars
	x = constants.PauseButtonX
	if paused {
		r.polyline(buf, vp, '>', RgbPauseButton,
			vmath.Vec2F{X: x - half, Y: y - half}, vmath.Vec2F{X: x - half, Y: y + half},
			vmath.Vec2F{X: x + half, Y: y}, vmath.Vec2F{X: x - half, Y: y - half})
	} else {
		r.polyline(buf, vp, '|', RgbPauseButton, vmath.Vec2F{X: x - 8, Y: y - half}, vmath.Vec2F{X: x - 8, Y: y + half})
		r.polyline(buf, vp, '|', RgbPauseButton, vmath.Vec2F{X: x + 8, Y: y - half}, vmath.Vec2F{X: x + 8, Y: y + half})
	}

	// Quit cross
	x = constants.QuitButtonX
	r.polyline(buf, vp, 'x', RgbQuitButton, vmath.Vec2F{X: x - half, Y: y - half}, vmath.Vec2F{X: x + half, Y: y + half})
	r.polyline(buf, vp, 'x', RgbQuitButton, vmath.Vec2F{X: x - half, Y: y + half}, vmath.Vec2F{X: x + half, Y: y - half})
}
