package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/shooter"
	"github.com/lixenwraith/arcade/vmath"
)

// aimLength is the world length of the drawn aim guide
const aimLength = 120.0

// ShooterRenderer draws the arena top-down with +Y up
type ShooterRenderer struct{}

// Viewport returns the arena mapping for a buffer, leaving the bottom row for status
func (r *ShooterRenderer) Viewport(cols, rows int) Viewport {
	g := constants.ShooterGrid
	return Viewport{MinX: -g, MinY: -g, MaxX: g, MaxY: g, Cols: cols, Rows: max(rows-1, 1), FlipY: true}
}

// Render draws the full shooter frame into buf
func (r *ShooterRenderer) Render(buf *RenderBuffer, snap *shooter.Snapshot) {
	buf.Clear()
	cols, rows := buf.Size()
	if cols == 0 || rows == 0 {
		return
	}
	vp := r.Viewport(cols, rows)

	g := constants.ShooterGrid - 1
	corners := [4]vmath.Vec2F{{X: -g, Y: -g}, {X: g, Y: -g}, {X: g, Y: g}, {X: -g, Y: g}}
	for i := range corners {
		vp.Segment(buf, corners[i], corners[(i+1)%4], '░', RgbArenaEdge)
	}

	enemyFg := RgbEnemy.Blend(RgbEnemyPulse, 0.5+0.5*math.Sin(snap.Pulse))
	for _, e := range snap.Enemies {
		r.drawBox(buf, vp, vmath.Vec2F{X: e.X, Y: e.Y}, constants.EnemyBox, '#', enemyFg)
	}

	for _, b := range snap.Bullets {
		col, row := vp.ToCell(vmath.Vec2F{X: b.X, Y: b.Y})
		buf.SetFgOnly(col, row, '•', RgbBullet)
	}

	center := vmath.V2FAdd(vmath.Vec2F{X: snap.Player.X, Y: snap.Player.Y},
		vmath.Vec2F{X: constants.ShooterPlayerBox / 2, Y: constants.ShooterPlayerBox / 2})
	tip := vmath.V2FAdd(center, vmath.V2FScale(shooter.Heading(snap.Angle), aimLength))
	vp.Segment(buf, center, tip, '·', RgbAim)

	playerFg := RgbPlayer
	if snap.Cheat {
		playerFg = RgbPlayerCheat
	}
	col, row := vp.ToCell(center)
	buf.SetFgOnly(col, row, '@', playerFg)
	buf.SetBold(col, row)

	r.drawStatus(buf, snap)
}

// drawBox outlines a min-corner square hitbox
func (r *ShooterRenderer) drawBox(buf *RenderBuffer, vp Viewport, corner vmath.Vec2F, size float64, ch rune, fg RGB) {
	a := corner
	b := vmath.Vec2F{X: corner.X + size, Y: corner.Y}
	c := vmath.Vec2F{X: corner.X + size, Y: corner.Y + size}
	d := vmath.Vec2F{X: corner.X, Y: corner.Y + size}
	vp.Segment(buf, a, b, ch, fg)
	vp.Segment(buf, b, c, ch, fg)
	vp.Segment(buf, c, d, ch, fg)
	vp.Segment(buf, d, a, ch, fg)
}

func (r *ShooterRenderer) drawStatus(buf *RenderBuffer, snap *shooter.Snapshot) {
	_, rows := buf.Size()
	y := rows - 1
	x := buf.TextWithBg(0, y, fmt.Sprintf(" LIFE %d ", snap.Life), RgbHudText, RgbHealthBg)
	x = buf.TextWithBg(x, y, fmt.Sprintf(" SCORE %d ", snap.Score), RgbStatusText, RgbEnergyBg)
	x = buf.TextWithBg(x, y, fmt.Sprintf(" MISSES %d/%d ", snap.Misses, constants.MaxMisses), RgbStatusText, RgbWaveBg)

	var flags string
	if snap.Cheat {
		flags += "  [cheat]"
	}
	if snap.FirstPerson {
		flags += "  [first person]"
	}
	if snap.GunFollow {
		flags += "  [gun follow]"
	}
	buf.Text(x, y, flags, RgbHudText)

	if snap.Over {
		buf.TextCentered(rows/2, fmt.Sprintf("GAME OVER  Score %d", snap.Score), RgbWarning)
		buf.TextCentered(rows/2+1, "press r to restart", RgbHudDim)
	}
}
