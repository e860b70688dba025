package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/shooter"
	"github.com/lixenwraith/arcade/vmath"
)

func linePoints(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	Line(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, [2]int{x, y})
	})
	return pts
}

func TestLineAllZones(t *testing.T) {
	ends := [][2]int{
		{7, 3}, {3, 7}, {-3, 7}, {-7, 3},
		{-7, -3}, {-3, -7}, {3, -7}, {7, -3},
		{5, 0}, {0, 5}, {-5, 0}, {0, -5}, {4, 4}, {-4, -4},
	}
	for _, e := range ends {
		x0, y0 := 10, 10
		x1, y1 := x0+e[0], y0+e[1]
		pts := linePoints(x0, y0, x1, y1)

		want := max(abs(e[0]), abs(e[1])) + 1
		if len(pts) != want {
			t.Errorf("line to %v: %d points, want %d", e, len(pts), want)
			continue
		}
		if pts[0] != [2]int{x0, y0} || pts[len(pts)-1] != [2]int{x1, y1} {
			t.Errorf("line to %v: endpoints %v %v", e, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i][0] - pts[i-1][0])
			dy := abs(pts[i][1] - pts[i-1][1])
			if dx > 1 || dy > 1 {
				t.Errorf("line to %v: gap between %v and %v", e, pts[i-1], pts[i])
			}
		}
	}
}

func TestLineZoneClassification(t *testing.T) {
	tests := []struct {
		dx, dy int
		zone   int
	}{
		{5, 1, 0}, {1, 5, 1}, {-1, 5, 2}, {-5, 1, 3},
		{-5, -1, 4}, {-1, -5, 5}, {1, -5, 6}, {5, -1, 7},
	}
	for _, tt := range tests {
		if got := lineZone(tt.dx, tt.dy); got != tt.zone {
			t.Errorf("lineZone(%d, %d) = %d, want %d", tt.dx, tt.dy, got, tt.zone)
		}
		x, y := toZone0(tt.dx, tt.dy, tt.zone)
		if x < 0 || y < 0 || y > x {
			t.Errorf("zone %d did not map (%d, %d) into zone 0: (%d, %d)", tt.zone, tt.dx, tt.dy, x, y)
		}
		if bx, by := fromZone0(x, y, tt.zone); bx != tt.dx || by != tt.dy {
			t.Errorf("zone %d round trip gave (%d, %d)", tt.zone, bx, by)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{MinX: -600, MinY: -600, MaxX: 600, MaxY: 600, Cols: 80, Rows: 30, FlipY: true}
	for _, c := range [][2]int{{0, 0}, {79, 29}, {40, 15}, {12, 27}} {
		col, row := vp.ToCell(vp.ToWorld(c[0], c[1]))
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v round tripped to (%d, %d)", c, col, row)
		}
	}
	if _, row := vp.ToCell(vmath.Vec2F{X: 0, Y: 590}); row != 0 {
		t.Errorf("+Y should be at the top with FlipY, got row %d", row)
	}
}

func TestBufferTextClipping(t *testing.T) {
	buf := NewRenderBuffer(5, 2)
	end := buf.Text(3, 0, "abcd", RgbHudText)
	if end != 7 {
		t.Errorf("Text should return the column after the text, got %d", end)
	}
	if buf.Get(4, 0).Rune != 'b' {
		t.Errorf("expected clipped write, got %q", buf.Get(4, 0).Rune)
	}
	if buf.Get(9, 9) != (Cell{}) {
		t.Error("out of bounds Get should return the zero cell")
	}

	buf.Resize(3, 3)
	if w, h := buf.Size(); w != 3 || h != 3 {
		t.Errorf("resize gave %dx%d", w, h)
	}
	if buf.Get(1, 0).Rune != ' ' {
		t.Error("resize should clear")
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	buf := NewRenderBuffer(10, 3)
	buf.TextWithBg(1, 1, "ok", RgbStatusText, RgbEnergyBg)
	buf.Flush(screen)

	if r, _, _, _ := screen.GetContent(1, 1); r != 'o' {
		t.Errorf("expected 'o' at (1,1), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(2, 1); r != 'k' {
		t.Errorf("expected 'k' at (2,1), got %q", r)
	}
}

func TestRGBConversions(t *testing.T) {
	c := RGBFromUnit(1, 0.5, 0)
	if c != (RGB{255, 128, 0}) {
		t.Errorf("unexpected conversion %v", c)
	}
	if got := TcellToRGB(c.Tcell()); got != c {
		t.Errorf("tcell round trip gave %v", got)
	}
	if got := (RGB{0, 0, 0}).Blend(RGB{200, 100, 50}, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("blend gave %v", got)
	}
	if got := (RGB{200, 200, 200}).Scale(2); got != (RGB{255, 255, 255}) {
		t.Errorf("scale should clamp, got %v", got)
	}
	if got := c.Color(); got.R != 255 || got.G != 128 || got.B != 0 || got.A != 255 {
		t.Errorf("image color gave %v", got)
	}
}

func rowText(buf *RenderBuffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func TestDefenseRender(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s := defense.New(defense.DefaultTuning(), engine.NewPausableClock(mock), vmath.NewFastRand(1))
	snap := s.Snapshot()

	buf := NewRenderBuffer(100, 40)
	var r DefenseRenderer
	r.Render(buf, &snap)

	cam := defense.DefaultCamera()
	sx, sy, ok := cam.WorldToScreen(vmath.Vec2F{}, 0)
	if !ok {
		t.Fatal("heart should be visible")
	}
	col, row := ScreenToCell(sx, sy, 100, 40)
	if got := buf.Get(col, row).Rune; got != '♥' {
		t.Errorf("expected heart at (%d,%d), got %q", col, row, got)
	}
	if status := rowText(buf, 39); !strings.HasPrefix(status, " HEART 100 ") {
		t.Errorf("unexpected status row %q", status)
	}
	if !strings.Contains(rowText(buf, 1), "MEDICINE 4") {
		t.Error("medicine card label missing")
	}
}

func TestCellToScreenMapsBack(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {50, 20}, {99, 39}} {
		sx, sy := CellToScreen(c[0], c[1], 100, 40)
		col, row := ScreenToCell(sx, sy, 100, 40)
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v mapped back to (%d, %d)", c, col, row)
		}
	}
}

func TestShooterRender(t *testing.T) {
	s := shooter.New(vmath.NewFastRand(1))
	snap := s.Snapshot()

	buf := NewRenderBuffer(60, 31)
	var r ShooterRenderer
	r.Render(buf, &snap)

	col, row := r.Viewport(60, 31).ToCell(vmath.Vec2F{X: 25, Y: 25})
	if got := buf.Get(col, row).Rune; got != '@' {
		t.Errorf("expected player at (%d,%d), got %q", col, row, got)
	}
	if status := rowText(buf, 30); !strings.HasPrefix(status, " LIFE 5 ") {
		t.Errorf("unexpected status row %q", status)
	}
}

func TestCatcherRender(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s := catcher.New(engine.NewPausableClock(mock), vmath.NewFastRand(3))
	snap := s.Snapshot()

	buf := NewRenderBuffer(80, 31)
	var r CatcherRenderer
	r.Render(buf, &snap)

	vp := r.Viewport(80, 31)
	col, row := vp.ToCell(vmath.Vec2F{X: snap.DiamondX, Y: snap.DiamondY - 15})
	if got := buf.Get(col, row).Rune; got != '*' {
		t.Errorf("expected diamond tip at (%d,%d), got %q", col, row, got)
	}
	if status := rowText(buf, 30); !strings.HasPrefix(status, " SCORE 0 ") {
		t.Errorf("unexpected status row %q", status)
	}

	bcol, brow := vp.ToCell(vmath.Vec2F{X: 80, Y: 540})
	x, y := r.CellToArena(bcol, brow, 80, 31)
	if got := catcher.ButtonAt(x, 600-y); got != catcher.ActionRestart {
		t.Errorf("restart button cell mapped to %v", got)
	}
}
