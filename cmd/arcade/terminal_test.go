package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeRecorder struct {
	results []scoreboard.Result
}

func (f *fakeRecorder) Record(_ context.Context, r scoreboard.Result) (scoreboard.Result, error) {
	f.results = append(f.results, r)
	return r, nil
}

func newTestGame(t *testing.T, kind session.Kind, store resultRecorder) (*terminalGame, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	sess, err := session.New(kind, session.Options{Seed: 7, Time: engine.NewMockTimeProvider(epoch)})
	if err != nil {
		t.Fatal(err)
	}
	return newTerminalGame(screen, sess, audio.NewSoundManager(), store), screen
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want session.Key
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), session.RuneKey('w'), true},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModShift), session.RuneKey('p'), true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), session.SpecialKey(session.SpecialLeft), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.SpecialKey(session.SpecialEscape), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), session.SpecialKey(session.SpecialEscape), true},
		{"unbound", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), session.Key{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("got %+v %t, want %+v %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMouseClickPlacesOnce(t *testing.T) {
	g, _ := newTestGame(t, session.KindDefense, nil)
	col, row := render.ScreenToCell(650, 400, 100, 40)

	g.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if n := g.sess.Defense().CellCount(); n != 1 {
		t.Fatalf("expected one placed cell, got %d", n)
	}
	energy := g.sess.Defense().Energy()

	// Held button reports again without a new press
	g.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if g.sess.Defense().Energy() != energy {
		t.Error("held button must not click again")
	}

	g.handleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	g.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if g.sess.Defense().CellCount() != 2 {
		t.Errorf("press after release should place again, got %d", g.sess.Defense().CellCount())
	}
}

func TestQuitKeyStops(t *testing.T) {
	g, _ := newTestGame(t, session.KindShooter, nil)
	if g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should stop the loop")
	}
}

func TestTickRecordsAndDraws(t *testing.T) {
	rec := &fakeRecorder{}
	g, screen := newTestGame(t, session.KindCatcher, rec)

	g.sess.Catcher().Step(10)
	if !g.tick() {
		t.Fatal("game over should keep the loop running")
	}
	if len(rec.results) != 1 || rec.results[0].Game != "catcher" {
		t.Errorf("expected one catcher result, got %+v", rec.results)
	}

	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteString(string(cells[(h-1)*w+x].Runes))
	}
	if !strings.Contains(sb.String(), "SCORE 0") {
		t.Errorf("status row missing score: %q", sb.String())
	}
}

func TestResizeFollowsScreen(t *testing.T) {
	g, screen := newTestGame(t, session.KindShooter, nil)
	screen.SetSize(60, 20)
	g.handleEvent(tcell.NewEventResize(60, 20))
	if w, h := g.buf.Size(); w != 60 || h != 20 {
		t.Errorf("buffer %dx%d after resize", w, h)
	}
}
