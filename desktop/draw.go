package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/shooter"
	"github.com/lixenwraith/arcade/vmath"
)

// debugGlyphWidth is the advance of ebitenutil's debug font
const debugGlyphWidth = 6

func centeredText(screen *ebiten.Image, s string, y int) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, s, (w-len(s)*debugGlyphWidth)/2, y)
}

// pixelLine rasterizes a segment with the shared midpoint routine
func pixelLine(screen *ebiten.Image, vp render.Viewport, a, b vmath.Vec2F, c color.Color) {
	x0, y0 := vp.ToCell(a)
	x1, y1 := vp.ToCell(b)
	render.Line(x0, y0, x1, y1, func(x, y int) {
		screen.Set(x, y, c)
	})
}

// projectedRadius is the on-screen size of a ground radius at p
func projectedRadius(cam defense.Camera, p vmath.Vec2F, r float64) (float32, bool) {
	x0, y0, ok0 := cam.WorldToScreen(p, 0)
	x1, y1, ok1 := cam.WorldToScreen(vmath.Vec2F{X: p.X + r, Y: p.Y}, 0)
	if !ok0 || !ok1 {
		return 0, false
	}
	return float32(math.Hypot(x1-x0, y1-y0)), true
}

func groundCircle(screen *ebiten.Image, cam defense.Camera, p vmath.Vec2F, r float64, c color.Color) {
	sx, sy, ok := cam.WorldToScreen(p, 0)
	if !ok {
		return
	}
	pr, ok := projectedRadius(cam, p, r)
	if !ok {
		return
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), max(pr, 2), c, true)
}

func drawDefense(screen *ebiten.Image, snap *defense.Snapshot) {
	screen.Fill(render.RgbBackground.Color())

	cam := defense.DefaultCamera()
	cam.X, cam.Y, cam.Z = snap.Camera[0], snap.Camera[1], snap.Camera[2]

	const ringSegments = 96
	var prevX, prevY float64
	var prevOK bool
	for i := 0; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		x, y, ok := cam.WorldToScreen(vmath.V2FFromAngle(a, constants.PlacementRadius), 0)
		if ok && prevOK {
			vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, render.RgbZone.Color(), true)
		}
		prevX, prevY, prevOK = x, y, ok
	}

	groundCircle(screen, cam, vmath.Vec2F{}, constants.HeartRadius, render.RgbHeart.Color())

	for _, p := range snap.Pickups {
		shade := 0.75 + 0.25*math.Sin(p.Pulse)
		groundCircle(screen, cam, vmath.Vec2F{X: p.X, Y: p.Y}, constants.PickupRadius/2, render.RgbPickup.Scale(shade).Color())
	}

	for _, c := range snap.Cells {
		fg := render.RgbCell
		switch {
		case !c.Active:
			fg = render.RgbCellInactive
		case c.Boosted:
			fg = render.RgbCellBoosted
		}
		groundCircle(screen, cam, vmath.Vec2F{X: c.X, Y: c.Y}, constants.CellRadius, fg.Color())
	}

	for _, v := range snap.Viruses {
		fg := render.RgbVirusCorner[v.Corner%len(render.RgbVirusCorner)]
		if !v.Seeking {
			fg = fg.Scale(0.7)
		}
		groundCircle(screen, cam, vmath.Vec2F{X: v.X, Y: v.Y}, constants.VirusRadius, fg.Color())
	}

	pr := snap.Protector
	base := vmath.Vec2F{X: pr.X, Y: pr.Y}
	fg := render.RgbProtector
	if pr.Health <= 0 {
		fg = render.RgbProtectorFall
	}
	groundCircle(screen, cam, base, constants.ProtectorSize/2, fg.Color())
	tip := vmath.V2FAdd(base, vmath.V2FFromAngle(vmath.Radians(pr.Angle), constants.ProtectorSize))
	if x0, y0, ok := cam.WorldToScreen(base, 0); ok {
		if x1, y1, ok := cam.WorldToScreen(tip, 0); ok {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, fg.Color(), true)
		}
	}

	if snap.Marker != nil {
		if x, y, ok := cam.WorldToScreen(vmath.Vec2F{X: snap.Marker.X, Y: snap.Marker.Y}, 0); ok {
			vector.StrokeCircle(screen, float32(x), float32(y), 6, 2, render.RgbMarker.Color(), true)
		}
	}

	drawMedicineCard(screen, snap)

	hud := fmt.Sprintf("HEART %d  ENERGY %d  WAVE %d  SCORE %d  KILLS %d  SHIELD %d  TIME %.0fs",
		snap.HeartHealth, snap.Energy, snap.Wave, snap.Score, snap.Kills, snap.Protector.Health, snap.TimeLeft)
	if snap.ImmuneBoost > 0 {
		hud += fmt.Sprintf("  BOOST %.1fs", snap.ImmuneBoost)
	}
	if snap.ViewMode {
		hud += "  [view]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	h := screen.Bounds().Dy()
	if snap.WaveBanner && !snap.Over {
		centeredText(screen, fmt.Sprintf("Wave %d!", snap.Wave), h/4)
	}
	if snap.Feedback != "" {
		centeredText(screen, snap.Feedback, h-120)
	}
	switch {
	case snap.Over && snap.Won:
		centeredText(screen, fmt.Sprintf("VICTORY! Score %d  (r to play again)", snap.Score), h/2)
	case snap.Over:
		centeredText(screen, fmt.Sprintf("GAME OVER  Score %d  (r to restart)", snap.Score), h/2)
	case snap.Paused:
		centeredText(screen, "PAUSED", h/2)
	}
}

func drawMedicineCard(screen *ebiten.Image, snap *defense.Snapshot) {
	left := constants.MedicineCardX - constants.MedicineCardWidth/2
	top := constants.ScreenHeight - constants.MedicineCardY - constants.MedicineCardHeight/2

	bg := render.RgbMedicineCard
	if snap.MedicineActive {
		bg = render.RgbMedicineActive
	} else if snap.MedicineUses == 0 {
		bg = render.RgbHudDim
	}
	vector.DrawFilledRect(screen, float32(left), float32(top),
		constants.MedicineCardWidth, constants.MedicineCardHeight, bg.Color(), false)

	label := fmt.Sprintf("MEDICINE %d", snap.MedicineUses)
	if snap.MedicineActive {
		label = fmt.Sprintf("MEDICINE %.0fs", snap.MedicineLeft)
	}
	ebitenutil.DebugPrintAt(screen, label,
		int(constants.MedicineCardX)-len(label)*debugGlyphWidth/2, int(top+constants.MedicineCardHeight/2)-8)
}

// shooterViewport maps the arena onto the window with +Y up
func shooterViewport(screen *ebiten.Image) render.Viewport {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	side := min(w, h)
	g := constants.ShooterGrid
	return render.Viewport{MinX: -g, MinY: -g, MaxX: g, MaxY: g, Left: (w - side) / 2, Top: (h - side) / 2, Cols: side, Rows: side, FlipY: true}
}

func drawShooter(screen *ebiten.Image, snap *shooter.Snapshot) {
	screen.Fill(render.RgbBackground.Color())
	vp := shooterViewport(screen)
	scale := float32(vp.Cols) / float32(vp.MaxX-vp.MinX)

	vector.StrokeRect(screen, float32(vp.Left), float32(vp.Top), float32(vp.Cols), float32(vp.Rows), 2, render.RgbArenaEdge.Color(), false)

	// Boxes are anchored at their min corner, which is the bottom-left on screen
	box := func(corner vmath.Vec2F, size float64, c color.Color) {
		x, y := vp.ToCell(vmath.Vec2F{X: corner.X, Y: corner.Y + size})
		side := float32(size) * scale
		vector.DrawFilledRect(screen, float32(x), float32(y), side, side, c, false)
	}

	enemy := render.RgbEnemy.Blend(render.RgbEnemyPulse, 0.5+0.5*math.Sin(snap.Pulse)).Color()
	for _, e := range snap.Enemies {
		box(vmath.Vec2F{X: e.X, Y: e.Y}, constants.EnemyBox, enemy)
	}
	for _, b := range snap.Bullets {
		box(vmath.Vec2F{X: b.X, Y: b.Y}, constants.BulletBox, render.RgbBullet.Color())
	}

	playerFg := render.RgbPlayer
	if snap.Cheat {
		playerFg = render.RgbPlayerCheat
	}
	box(vmath.Vec2F{X: snap.Player.X, Y: snap.Player.Y}, constants.ShooterPlayerBox, playerFg.Color())

	half := constants.ShooterPlayerBox / 2
	center := vmath.Vec2F{X: snap.Player.X + half, Y: snap.Player.Y + half}
	pixelLine(screen, vp, center, vmath.V2FAdd(center, vmath.V2FScale(shooter.Heading(snap.Angle), 120)), render.RgbAim.Color())

	mode := "third person"
	if snap.FirstPerson {
		mode = "first person"
	}
	hud := fmt.Sprintf("LIFE %d  SCORE %d  MISSES %d/%d  %s", snap.Life, snap.Score, snap.Misses, constants.MaxMisses, mode)
	if snap.Cheat {
		hud += "  [cheat]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
	if snap.Over {
		centeredText(screen, fmt.Sprintf("GAME OVER  Score %d  (r to restart)", snap.Score), screen.Bounds().Dy()/2)
	}
}

func drawCatcher(screen *ebiten.Image, snap *catcher.Snapshot) {
	screen.Fill(color.Black)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := render.Viewport{MaxX: constants.CatcherWidth, MaxY: constants.CatcherHeight, Cols: w, Rows: h, FlipY: true}

	poly := func(c color.Color, pts ...vmath.Vec2F) {
		for i := 0; i+1 < len(pts); i++ {
			pixelLine(screen, vp, pts[i], pts[i+1], c)
		}
	}

	half := constants.ButtonSize / 2
	y := constants.ButtonY
	x := constants.RestartButtonX
	restart := render.RgbRestartButton.Color()
	poly(restart, vmath.Vec2F{X: x, Y: y + half}, vmath.Vec2F{X: x - half, Y: y}, vmath.Vec2F{X: x, Y: y - half})
	poly(restart, vmath.Vec2F{X: x - half, Y: y}, vmath.Vec2F{X: x + half, Y: y})

	x = constants.PauseButtonX
	pause := render.RgbPauseButton.Color()
	if snap.Paused {
		poly(pause, vmath.Vec2F{X: x - half, Y: y - half}, vmath.Vec2F{X: x - half, Y: y + half},
			vmath.Vec2F{X: x + half, Y: y}, vmath.Vec2F{X: x - half, Y: y - half})
	} else {
		poly(pause, vmath.Vec2F{X: x - 8, Y: y - half}, vmath.Vec2F{X: x - 8, Y: y + half})
		poly(pause, vmath.Vec2F{X: x + 8, Y: y - half}, vmath.Vec2F{X: x + 8, Y: y + half})
	}

	x = constants.QuitButtonX
	quit := render.RgbQuitButton.Color()
	poly(quit, vmath.Vec2F{X: x - half, Y: y - half}, vmath.Vec2F{X: x + half, Y: y + half})
	poly(quit, vmath.Vec2F{X: x - half, Y: y + half}, vmath.Vec2F{X: x + half, Y: y - half})

	if !snap.Over {
		c := snap.Color
		fg := render.RGBFromUnit(c.R, c.G, c.B).Color()
		dx, dy, s := snap.DiamondX, snap.DiamondY, constants.DiamondSize
		poly(fg, vmath.Vec2F{X: dx, Y: dy + s}, vmath.Vec2F{X: dx + s, Y: dy},
			vmath.Vec2F{X: dx, Y: dy - s}, vmath.Vec2F{X: dx - s, Y: dy}, vmath.Vec2F{X: dx, Y: dy + s})
	}

	paddle := render.RgbPaddle
	if snap.Over {
		paddle = render.RgbPaddleOver
	}
	ph := constants.PaddleWidth / 2
	px, py, pz, in := snap.PaddleX, constants.PaddleY, constants.PaddleHeight, constants.PaddleInset
	poly(paddle.Color(),
		vmath.Vec2F{X: px - ph + in, Y: py}, vmath.Vec2F{X: px - ph, Y: py + pz},
		vmath.Vec2F{X: px + ph, Y: py + pz}, vmath.Vec2F{X: px + ph - in, Y: py},
		vmath.Vec2F{X: px - ph + in, Y: py})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), 8, 8)
	switch {
	case snap.Over:
		centeredText(screen, fmt.Sprintf("GAME OVER  Final Score %d", snap.Score), h/2)
	case snap.Paused:
		centeredText(screen, "PAUSED", h/2)
	}
}
