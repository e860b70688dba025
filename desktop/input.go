package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/arcade/session"
)

// Held movement keys repeat after repeatDelay ticks, then every repeatInterval ticks
const (
	repeatDelay    = 15
	repeatInterval = 4
)

type binding struct {
	key     ebiten.Key
	to      session.Key
	repeats bool
}

var bindings = []binding{
	{ebiten.KeyW, session.RuneKey('w'), true},
	{ebiten.KeyS, session.RuneKey('s'), true},
	{ebiten.KeyA, session.RuneKey('a'), true},
	{ebiten.KeyD, session.RuneKey('d'), true},
	{ebiten.KeyArrowUp, session.SpecialKey(session.SpecialUp), true},
	{ebiten.KeyArrowDown, session.SpecialKey(session.SpecialDown), true},
	{ebiten.KeyArrowLeft, session.SpecialKey(session.SpecialLeft), true},
	{ebiten.KeyArrowRight, session.SpecialKey(session.SpecialRight), true},
	{ebiten.KeyP, session.RuneKey('p'), false},
	{ebiten.KeyV, session.RuneKey('v'), false},
	{ebiten.KeyR, session.RuneKey('r'), false},
	{ebiten.KeyC, session.RuneKey('c'), false},
	{ebiten.KeyQ, session.RuneKey('q'), false},
	{ebiten.KeyEscape, session.SpecialKey(session.SpecialEscape), false},
}

// fires reports whether a key held for d ticks produces a press this tick
func fires(d int, repeats bool) bool {
	if d == 1 {
		return true
	}
	return repeats && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pressedKeys returns this tick's presses given each key's held duration in ticks
func pressedKeys(duration func(ebiten.Key) int) []session.Key {
	var out []session.Key
	for _, b := range bindings {
		if fires(duration(b.key), b.repeats) {
			out = append(out, b.to)
		}
	}
	return out
}
