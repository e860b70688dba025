package defense

import "github.com/lixenwraith/arcade/vmath"

// EventKind classifies simulation events for audio, logs and metrics
type EventKind uint8

const (
	EventVirusKilled EventKind = iota + 1
	EventHeartHit
	EventProtectorHit
	EventWaveStarted
	EventCellPlaced
	EventPlacementRejected
	EventCellExpired
	EventPickupSpawned
	EventPickupCollected
	EventMedicineStarted
	EventMedicineEnded
	EventPaused
	EventResumed
	EventReset
	EventWon
	EventLost
)

var eventNames = map[EventKind]string{
	EventVirusKilled:       "virus_killed",
	EventHeartHit:          "heart_hit",
	EventProtectorHit:      "protector_hit",
	EventWaveStarted:       "wave_started",
	EventCellPlaced:        "cell_placed",
	EventPlacementRejected: "placement_rejected",
	EventCellExpired:       "cell_expired",
	EventPickupSpawned:     "pickup_spawned",
	EventPickupCollected:   "pickup_collected",
	EventMedicineStarted:   "medicine_started",
	EventMedicineEnded:     "medicine_ended",
	EventPaused:            "paused",
	EventResumed:           "resumed",
	EventReset:             "reset",
	EventWon:               "won",
	EventLost:              "lost",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is something that happened during a tick or input handler
// Value carries a kind-specific number: wave, remaining health, or placement result
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
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
