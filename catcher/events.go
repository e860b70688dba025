package catcher

import "github.com/lixenwraith/arcade/vmath"

type EventKind uint8

const (
	EventCatch EventKind = iota + 1
	EventGameOver
	EventRestart
	EventPaused
	EventResumed
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventCatch:
		return "catch"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event reports a gameplay change; Value carries the score where relevant
type Event struct {
	Kind  EventKind
	Pos   vmath.Vec2F
	Value int
}

func (s *State) emit(ev Event) {
	s.events = append(s.events, ev)
}

// DrainEvents returns and clears pending events
func (s *State) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}
