// Package desktop is the ebiten window frontend
package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
)

// Options wires optional collaborators
type Options struct {
	Sound *audio.SoundManager
	// OnOver receives each finished round
	OnOver func(scoreboard.Result)
}

// Game adapts a session to ebiten.Game
type Game struct {
	sess   *session.Session
	sound  *audio.SoundManager
	onOver func(scoreboard.Result)
}

// NewGame wraps sess for ebiten
func NewGame(sess *session.Session, opts Options) *Game {
	return &Game{sess: sess, sound: opts.Sound, onOver: opts.OnOver}
}

// Run opens the window and blocks until the game quits or the window closes
func Run(g *Game) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("arcade: %s", g.sess.Kind()))
	ebiten.SetTPS(engine.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %s window: %w", g.sess.Kind(), err)
	}
	return nil
}

// Update polls input then advances one fixed step
func (g *Game) Update() error {
	for _, k := range pressedKeys(inpututil.KeyPressDuration) {
		if !g.sess.HandleKey(k) {
			return ebiten.Termination
		}
	}

	clicks := [...]struct {
		mouse  ebiten.MouseButton
		button session.Button
	}{
		{ebiten.MouseButtonLeft, session.ButtonPrimary},
		{ebiten.MouseButtonRight, session.ButtonSecondary},
	}
	for _, c := range clicks {
		if inpututil.IsMouseButtonJustPressed(c.mouse) {
			x, y := ebiten.CursorPosition()
			if !g.sess.Click(float64(x), float64(y), c.button) {
				return ebiten.Termination
			}
		}
	}

	g.step()
	return nil
}

// step ticks the session and forwards its cues and results
func (g *Game) step() {
	g.sess.Tick()
	cues := g.sess.DrainCues()
	if g.sound != nil {
		for _, c := range cues {
			g.sound.Play(c)
		}
		g.sound.SetPulse(g.sess.PulseWanted())
	}
	if r, ok := g.sess.TakeResult(); ok && g.onOver != nil {
		g.onOver(r)
	}
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.sess.Kind() {
	case session.KindDefense:
		snap := g.sess.Defense().Snapshot()
		drawDefense(screen, &snap)
	case session.KindShooter:
		snap := g.sess.Shooter().Snapshot()
		drawShooter(screen, &snap)
	case session.KindCatcher:
		snap := g.sess.Catcher().Snapshot()
		drawCatcher(screen, &snap)
	}
}

// Layout fixes the logical screen to the game's click coordinate space
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.sess.ScreenSize()
	return int(w), int(h)
}
