package main

import (
	"context"
	"log"

	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
)

type publisher interface {
	Publish(game, runID string, snap defense.Snapshot) error
}

type resultRecorder interface {
	Record(ctx context.Context, r scoreboard.Result) (scoreboard.Result, error)
}

// host runs a headless defense round after round and streams it
type host struct {
	sess  *session.Session
	pilot *autopilot
	pub   publisher
	store resultRecorder

	publishEvery int
	restartAfter int

	ticks     uint64
	overTicks int
}

// tick advances one step; it never stops the loop
func (h *host) tick() bool {
	d := h.sess.Defense()
	if h.pilot != nil {
		h.pilot.step(d)
	}
	h.sess.Tick()
	h.sess.DrainCues()
	h.ticks++

	if r, ok := h.sess.TakeResult(); ok && h.store != nil {
		if _, err := h.store.Record(context.Background(), r); err != nil {
			log.Printf("record result: %v", err)
		}
	}

	if h.publishEvery <= 1 || h.ticks%uint64(h.publishEvery) == 0 || h.sess.Over() {
		if err := h.pub.Publish(string(h.sess.Kind()), h.sess.RunID(), d.Snapshot()); err != nil {
			log.Printf("publish: %v", err)
		}
	}

	if h.sess.Over() {
		h.overTicks++
		if h.overTicks >= h.restartAfter {
			h.overTicks = 0
			h.sess.Restart()
		}
	}
	return true
}
