package shooter

import "github.com/lixenwraith/arcade/vmath"

type EventKind uint8

const (
	EventFire EventKind = iota + 1
	EventEnemyHit
	EventPlayerHit
	EventMiss
	EventGameOver
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventEnemyHit:
		return "enemy_hit"
	case EventPlayerHit:
		return "player_hit"
	case EventMiss:
		return "miss"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event reports a gameplay change; Value is score, life or misses depending on Kind
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
