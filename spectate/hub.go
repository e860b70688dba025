package spectate

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultSubscriberBuffer is the number of frames a spectator may lag behind
const DefaultSubscriberBuffer = 8

// Subscriber receives broadcast frames on C until unsubscribed or dropped
type Subscriber struct {
	ID   string
	send chan []byte
	once sync.Once
}

// C returns the frame channel; it closes when the hub drops the subscriber
func (s *Subscriber) C() <-chan []byte {
	return s.send
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// Hub fans frames out to spectators
// A spectator whose buffer is full is dropped rather than blocking the game loop
type Hub struct {
	mu      sync.RWMutex
	subs    map[*Subscriber]struct{}
	buffer  int
	dropped uint64
}

// NewHub creates a hub; buffer <= 0 uses DefaultSubscriberBuffer
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a new spectator
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		ID:   uuid.NewString(),
		send: make(chan []byte, h.buffer),
	}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe removes s; safe to call after the hub already dropped it
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
	s.close()
}

// Broadcast queues data for every spectator and returns how many accepted it
func (h *Hub) Broadcast(data []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for s := range h.subs {
		select {
		case s.send <- data:
			sent++
		default:
			delete(h.subs, s)
			s.close()
			h.dropped++
		}
	}
	return sent
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many slow spectators have been disconnected
func (h *Hub) Dropped() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// Close drops every spectator
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		delete(h.subs, s)
		s.close()
	}
}
