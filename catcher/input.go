package catcher

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
)

// Action is what a click asked the host to do
type Action uint8

const (
	ActionNone Action = iota
	ActionRestart
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRestart:
		return "restart"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// HandleKey applies a key press; the paddle is frozen while paused or over
func (s *State) HandleKey(k Key) {
	switch k {
	case KeyLeft:
		s.movePaddle(-constants.PaddleStep)
	case KeyRight:
		s.movePaddle(constants.PaddleStep)
	case KeyPause:
		s.TogglePause()
	case KeyRestart:
		s.Restart()
	}
}

func (s *State) movePaddle(dx float64) {
	if s.over || s.clock.IsPaused() {
		return
	}
	half := constants.PaddleWidth / 2
	s.paddleX = vmath.Clamp(s.paddleX+dx, half, constants.CatcherWidth-half)
}

// ButtonAt hit-tests the toolbar at a bottom-left origin point
func ButtonAt(x, y float64) Action {
	buttons := [...]struct {
		x      float64
		action Action
	}{
		{constants.RestartButtonX, ActionRestart},
		{constants.PauseButtonX, ActionPause},
		{constants.QuitButtonX, ActionQuit},
	}
	for _, b := range buttons {
		box := vmath.CenteredBox(vmath.Vec2F{X: b.x, Y: constants.ButtonY}, constants.ButtonSize, constants.ButtonSize)
		if box.Contains(vmath.Vec2F{X: x, Y: y}) {
			return b.action
		}
	}
	return ActionNone
}

// Click handles a primary click in top-left mouse coordinates
// Restart and pause are applied here; quit is left to the caller
func (s *State) Click(mx, my float64) Action {
	action := ButtonAt(mx, constants.CatcherHeight-my)
	switch action {
	case ActionRestart:
		s.Restart()
	case ActionPause:
		s.TogglePause()
	case ActionQuit:
		s.emit(Event{Kind: EventQuit, Value: s.score})
	}
	return action
}
