package session

import (
	"unicode"

	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/shooter"
)

// Special names the non-character keys frontends forward
type Special uint8

const (
	SpecialNone Special = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialEscape
)

// Key is a frontend-neutral key press: either a rune or a special key
type Key struct {
	Rune    rune
	Special Special
}

// RuneKey and SpecialKey build keys
func RuneKey(r rune) Key        { return Key{Rune: unicode.ToLower(r)} }
func SpecialKey(sp Special) Key { return Key{Special: sp} }

// Button is a mouse button
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

var defenseKeys = map[Key]defense.Key{
	RuneKey('w'):             defense.KeyForward,
	RuneKey('s'):             defense.KeyBackward,
	RuneKey('a'):             defense.KeyTurnLeft,
	RuneKey('d'):             defense.KeyTurnRight,
	RuneKey('p'):             defense.KeyPause,
	RuneKey('v'):             defense.KeyView,
	RuneKey('r'):             defense.KeyReset,
	SpecialKey(SpecialLeft):  defense.KeyPanLeft,
	SpecialKey(SpecialRight): defense.KeyPanRight,
	SpecialKey(SpecialUp):    defense.KeyPanUp,
	SpecialKey(SpecialDown):  defense.KeyPanDown,
}

// Shooter bindings: s advances along the facing and w backs away
var shooterKeys = map[Key]shooter.Key{
	RuneKey('s'):             shooter.KeyAdvance,
	RuneKey('w'):             shooter.KeyRetreat,
	RuneKey('a'):             shooter.KeyTurnLeft,
	RuneKey('d'):             shooter.KeyTurnRight,
	RuneKey('c'):             shooter.KeyCheat,
	RuneKey('v'):             shooter.KeyView,
	RuneKey('r'):             shooter.KeyRestart,
	SpecialKey(SpecialUp):    shooter.KeyCameraUp,
	SpecialKey(SpecialDown):  shooter.KeyCameraDown,
	SpecialKey(SpecialLeft):  shooter.KeyCameraLeft,
	SpecialKey(SpecialRight): shooter.KeyCameraRight,
}

var catcherKeys = map[Key]catcher.Key{
	SpecialKey(SpecialLeft):  catcher.KeyLeft,
	SpecialKey(SpecialRight): catcher.KeyRight,
	RuneKey('p'):             catcher.KeyPause,
	RuneKey('r'):             catcher.KeyRestart,
}

// IsQuit reports whether k ends the session in every game
func IsQuit(k Key) bool {
	return k.Special == SpecialEscape || k.Rune == 'q'
}

// HandleKey routes a key press to the game; it returns false when the session should end
func (s *Session) HandleKey(k Key) bool {
	if k.Rune != 0 {
		k.Rune = unicode.ToLower(k.Rune)
	}
	if IsQuit(k) {
		s.quit = true
		return false
	}

	switch s.kind {
	case KindDefense:
		if dk, ok := defenseKeys[k]; ok {
			s.defense.HandleKey(dk)
		}
	case KindShooter:
		if sk, ok := shooterKeys[k]; ok {
			s.shooter.HandleKey(sk)
		}
	case KindCatcher:
		if ck, ok := catcherKeys[k]; ok {
			s.catcher.HandleKey(ck)
		}
	}
	s.collect()
	return !s.quit
}

// Click routes a mouse press in ScreenSize coordinates, origin top-left
// It returns false when the click asked to quit
func (s *Session) Click(x, y float64, b Button) bool {
	switch s.kind {
	case KindDefense:
		if b == ButtonPrimary {
			result := s.defense.Click(x, y)
			if !result.Accepted() {
				s.rec.Count("rejected." + result.String())
			}
		}
	case KindShooter:
		switch b {
		case ButtonPrimary:
			s.shooter.Fire()
		case ButtonSecondary:
			s.shooter.ToggleFirstPerson()
		}
	case KindCatcher:
		if b == ButtonPrimary {
			s.catcher.Click(x, y)
		}
	}
	s.collect()
	return !s.quit
}
