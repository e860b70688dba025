package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/vmath"
)

const zoneRingSegments = 96

// DefenseRenderer draws the tower defense through the snapshot camera
// The whole buffer stands in for the logical screen, so clicks map back with CellToScreen
type DefenseRenderer struct{}

// CellToScreen maps the center of a terminal cell to logical defense screen pixels
func CellToScreen(col, row, cols, rows int) (sx, sy float64) {
	if cols <= 0 || rows <= 0 {
		return -1, -1
	}
	sx = (float64(col) + 0.5) / float64(cols) * constants.ScreenWidth
	sy = (float64(row) + 0.5) / float64(rows) * constants.ScreenHeight
	return sx, sy
}

// ScreenToCell maps logical defense screen pixels to a terminal cell
func ScreenToCell(sx, sy float64, cols, rows int) (int, int) {
	col := int(math.Floor(sx / constants.ScreenWidth * float64(cols)))
	row := int(math.Floor(sy / constants.ScreenHeight * float64(rows)))
	return col, row
}

func snapshotCamera(snap *defense.Snapshot) defense.Camera {
	cam := defense.DefaultCamera()
	cam.X, cam.Y, cam.Z = snap.Camera[0], snap.Camera[1], snap.Camera[2]
	return cam
}

func (r *DefenseRenderer) project(cam defense.Camera, p vmath.Vec2F, z float64, cols, rows int) (int, int, bool) {
	sx, sy, ok := cam.WorldToScreen(p, z)
	if !ok {
		return 0, 0, false
	}
	col, row := ScreenToCell(sx, sy, cols, rows)
	return col, row, true
}

func (r *DefenseRenderer) put(buf *RenderBuffer, cam defense.Camera, p vmath.Vec2F, ch rune, fg RGB) {
	cols, rows := buf.Size()
	if col, row, ok := r.project(cam, p, 0, cols, rows); ok {
		buf.SetFgOnly(col, row, ch, fg)
	}
}

// Render draws the full defense frame into buf
func (r *DefenseRenderer) Render(buf *RenderBuffer, snap *defense.Snapshot) {
	buf.Clear()
	cols, rows := buf.Size()
	if cols == 0 || rows == 0 {
		return
	}
	cam := snapshotCamera(snap)

	for i := 0; i < zoneRingSegments; i++ {
		a := 2 * math.Pi * float64(i) / zoneRingSegments
		r.put(buf, cam, vmath.V2FFromAngle(a, constants.PlacementRadius), '·', RgbZone)
	}

	for _, p := range snap.Pickups {
		shade := 0.75 + 0.25*math.Sin(p.Pulse)
		r.put(buf, cam, vmath.Vec2F{X: p.X, Y: p.Y}, '◆', RgbPickup.Scale(shade))
	}

	for _, c := range snap.Cells {
		ch, fg := '●', RgbCell
		switch {
		case !c.Active:
			ch, fg = '○', RgbCellInactive
		case c.Boosted:
			fg = RgbCellBoosted
		}
		r.put(buf, cam, vmath.Vec2F{X: c.X, Y: c.Y}, ch, fg)
	}

	for _, v := range snap.Viruses {
		fg := RgbVirusCorner[v.Corner%len(RgbVirusCorner)]
		if !v.Seeking {
			fg = fg.Scale(0.7)
		}
		r.put(buf, cam, vmath.Vec2F{X: v.X, Y: v.Y}, '✶', fg)
	}

	pr := snap.Protector
	if pr.Health > 0 {
		r.put(buf, cam, vmath.Vec2F{X: pr.X, Y: pr.Y}, '▲', RgbProtector)
	} else {
		r.put(buf, cam, vmath.Vec2F{X: pr.X, Y: pr.Y}, '▬', RgbProtectorFall)
	}

	if col, row, ok := r.project(cam, vmath.Vec2F{}, 0, cols, rows); ok {
		buf.SetFgOnly(col, row, '♥', RgbHeart)
		buf.SetBold(col, row)
	}

	if snap.Marker != nil {
		r.put(buf, cam, vmath.Vec2F{X: snap.Marker.X, Y: snap.Marker.Y}, 'x', RgbMarker)
	}

	r.drawMedicineCard(buf, snap)
	r.drawStatus(buf, snap)
	r.drawMessages(buf, snap)
}

func (r *DefenseRenderer) drawMedicineCard(buf *RenderBuffer, snap *defense.Snapshot) {
	cols, rows := buf.Size()
	left := constants.MedicineCardX - constants.MedicineCardWidth/2
	top := constants.ScreenHeight - constants.MedicineCardY - constants.MedicineCardHeight/2
	x0, y0 := ScreenToCell(left, top, cols, rows)
	x1, y1 := ScreenToCell(left+constants.MedicineCardWidth, top+constants.MedicineCardHeight, cols, rows)

	bg := RgbMedicineCard
	if snap.MedicineActive {
		bg = RgbMedicineActive
	} else if snap.MedicineUses == 0 {
		bg = RgbHudDim
	}
	for y := y0; y < max(y1, y0+1); y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			buf.SetWithBg(x, y, ' ', RgbStatusText, bg)
		}
	}

	label := fmt.Sprintf("MEDICINE %d", snap.MedicineUses)
	if snap.MedicineActive {
		label = fmt.Sprintf("MEDICINE %.0fs", snap.MedicineLeft)
	}
	n := len([]rune(label))
	buf.TextWithBg(x0+(max(x1-x0, 1)-n)/2, y0+(max(y1-y0, 1)-1)/2, label, RgbStatusText, bg)
}

func (r *DefenseRenderer) drawStatus(buf *RenderBuffer, snap *defense.Snapshot) {
	_, rows := buf.Size()
	y := rows - 1
	x := 0
	x = buf.TextWithBg(x, y, fmt.Sprintf(" HEART %d ", snap.HeartHealth), RgbHudText, RgbHealthBg)
	x = buf.TextWithBg(x, y, fmt.Sprintf(" ENERGY %d ", snap.Energy), RgbStatusText, RgbEnergyBg)
	x = buf.TextWithBg(x, y, fmt.Sprintf(" WAVE %d ", snap.Wave), RgbStatusText, RgbWaveBg)
	if snap.ImmuneBoost > 0 {
		x = buf.TextWithBg(x, y, fmt.Sprintf(" BOOST %.1fs ", snap.ImmuneBoost), RgbStatusText, RgbBoostBg)
	}
	info := fmt.Sprintf(" Score %d  Kills %d  Shield %d  Time %.0fs", snap.Score, snap.Kills, snap.Protector.Health, snap.TimeLeft)
	if snap.ViewMode {
		info += "  [view]"
	}
	buf.Text(x, y, info, RgbHudText)
}

func (r *DefenseRenderer) drawMessages(buf *RenderBuffer, snap *defense.Snapshot) {
	_, rows := buf.Size()
	mid := rows / 2

	if snap.WaveBanner && !snap.Over {
		buf.TextCentered(rows/4, fmt.Sprintf("Wave %d!", snap.Wave), RgbBanner)
	}
	if snap.Feedback != "" {
		buf.TextCentered(rows-2, snap.Feedback, RgbWarning)
	}

	switch {
	case snap.Over && snap.Won:
		buf.TextCentered(mid, fmt.Sprintf("VICTORY! Score %d", snap.Score), RgbSuccess)
		buf.TextCentered(mid+1, "press r to play again", RgbHudDim)
	case snap.Over:
		buf.TextCentered(mid, fmt.Sprintf("GAME OVER  Score %d", snap.Score), RgbWarning)
		buf.TextCentered(mid+1, "press r to restart", RgbHudDim)
	case snap.Paused:
		buf.TextCentered(mid, "PAUSED", RgbBanner)
	}
}
