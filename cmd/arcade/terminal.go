package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
)

// resultRecorder is the write side of the scoreboard
type resultRecorder interface {
	Record(ctx context.Context, r scoreboard.Result) (scoreboard.Result, error)
}

// terminalGame drives a session on a tcell screen
type terminalGame struct {
	screen tcell.Screen
	sess   *session.Session
	buf    *render.RenderBuffer
	sound  *audio.SoundManager
	store  resultRecorder

	defense render.DefenseRenderer
	shooter render.ShooterRenderer
	catcher render.CatcherRenderer

	// Last mouse button state, so held buttons click once
	buttons tcell.ButtonMask
}

func newTerminalGame(screen tcell.Screen, sess *session.Session, sound *audio.SoundManager, store resultRecorder) *terminalGame {
	w, h := screen.Size()
	return &terminalGame{
		screen: screen,
		sess:   sess,
		buf:    render.NewRenderBuffer(w, h),
		sound:  sound,
		store:  store,
	}
}

// translateKey maps a tcell key event to a session key
func translateKey(ev *tcell.EventKey) (session.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return session.RuneKey(ev.Rune()), true
	case tcell.KeyUp:
		return session.SpecialKey(session.SpecialUp), true
	case tcell.KeyDown:
		return session.SpecialKey(session.SpecialDown), true
	case tcell.KeyLeft:
		return session.SpecialKey(session.SpecialLeft), true
	case tcell.KeyRight:
		return session.SpecialKey(session.SpecialRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.SpecialKey(session.SpecialEscape), true
	}
	return session.Key{}, false
}

// handleEvent applies one terminal event; it returns false to exit
func (g *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := translateKey(ev); ok {
			return g.sess.HandleKey(k)
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ g.buttons
		g.buttons = ev.Buttons()
		col, row := ev.Position()
		if pressed&tcell.Button1 != 0 && !g.click(col, row, session.ButtonPrimary) {
			return false
		}
		if pressed&tcell.Button2 != 0 && !g.click(col, row, session.ButtonSecondary) {
			return false
		}

	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.buf.Resize(w, h)
		g.screen.Sync()
	}
	return true
}

// click maps a cell to the game's screen coordinates and forwards it
func (g *terminalGame) click(col, row int, b session.Button) bool {
	cols, rows := g.buf.Size()
	var x, y float64
	switch g.sess.Kind() {
	case session.KindDefense:
		x, y = render.CellToScreen(col, row, cols, rows)
	case session.KindCatcher:
		x, y = g.catcher.CellToArena(col, row, cols, rows)
	}
	return g.sess.Click(x, y, b)
}

// tick advances the game, plays its cues, records results and redraws
func (g *terminalGame) tick() bool {
	g.sess.Tick()

	for _, c := range g.sess.DrainCues() {
		g.sound.Play(c)
	}
	g.sound.SetPulse(g.sess.PulseWanted())

	if r, ok := g.sess.TakeResult(); ok && g.store != nil {
		if _, err := g.store.Record(context.Background(), r); err != nil {
			log.Printf("record %s result: %v", r.Game, err)
		}
	}

	g.draw()
	return !g.sess.QuitRequested()
}

func (g *terminalGame) draw() {
	switch g.sess.Kind() {
	case session.KindDefense:
		snap := g.sess.Defense().Snapshot()
		g.defense.Render(g.buf, &snap)
	case session.KindShooter:
		snap := g.sess.Shooter().Snapshot()
		g.shooter.Render(g.buf, &snap)
	case session.KindCatcher:
		snap := g.sess.Catcher().Snapshot()
		g.catcher.Render(g.buf, &snap)
	}
	g.buf.Flush(g.screen)
}
