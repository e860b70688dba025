package shooter

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Key is a discrete shooter control
type Key uint8

const (
	KeyNone Key = iota
	KeyAdvance
	KeyRetreat
	KeyTurnLeft
	KeyTurnRight
	KeyCheat
	KeyView
	KeyRestart
	KeyCameraUp
	KeyCameraDown
	KeyCameraLeft
	KeyCameraRight
)

// HandleKey applies a key press; once over only restart is honored
func (s *State) HandleKey(k Key) {
	if s.over {
		if k == KeyRestart {
			s.Restart()
		}
		return
	}

	switch k {
	case KeyAdvance:
		s.move(constants.ShooterPlayerStep)
	case KeyRetreat:
		s.move(-constants.ShooterPlayerStep)
	case KeyTurnLeft:
		s.player.Angle = vmath.WrapDegrees(s.player.Angle + constants.ShooterTurnStep)
	case KeyTurnRight:
		s.player.Angle = vmath.WrapDegrees(s.player.Angle - constants.ShooterTurnStep)
	case KeyCheat:
		s.cheat = !s.cheat
	case KeyView:
		if s.cheat {
			s.firstPerson = !s.firstPerson
		} else {
			s.gunFollow = !s.gunFollow
		}
	case KeyRestart:
		s.Restart()
	case KeyCameraUp, KeyCameraDown, KeyCameraLeft, KeyCameraRight:
		if !s.firstPerson {
			s.moveCamera(k)
		}
	}
}

// ToggleFirstPerson switches the camera mode, bound to the secondary button
func (s *State) ToggleFirstPerson() {
	s.firstPerson = !s.firstPerson
}

func (s *State) move(distance float64) {
	p := vmath.V2FAdd(s.player.Pos, vmath.V2FScale(Heading(s.player.Angle), distance))
	lim := constants.ShooterPlayerClamp
	s.player.Pos = vmath.Vec2F{X: vmath.Clamp(p.X, -lim, lim), Y: vmath.Clamp(p.Y, -lim, lim)}
}

func (s *State) moveCamera(k Key) {
	switch k {
	case KeyCameraUp:
		s.camera.Height += constants.ShooterCameraRaise
	case KeyCameraDown:
		s.camera.Height = math.Max(constants.ShooterCameraMinHeight, s.camera.Height-constants.ShooterCameraRaise)
	case KeyCameraLeft:
		s.camera.Angle = vmath.WrapDegrees(s.camera.Angle - constants.ShooterCameraOrbit)
	case KeyCameraRight:
		s.camera.Angle = vmath.WrapDegrees(s.camera.Angle + constants.ShooterCameraOrbit)
	}
}
