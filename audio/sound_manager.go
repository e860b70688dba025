// Package audio synthesizes game sound cues with beep and plays them through a shared mixer
// Every call is a no-op until Initialize succeeds, so games run unchanged without a device
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDuration = 100 * time.Millisecond

	// pulseBPM is the tempo of the medicine loop
	pulseBPM = 100.0

	// maxVoices caps concurrent one-shot cues in the mixer
	maxVoices = 16
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	pulse       *beep.Ctrl
	initialized bool
	muted       bool
	played      int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.stopPulse()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences new cues and the loop
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.pulse != nil {
		speaker.Lock()
		sm.stopPulse()
		speaker.Unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) active() bool {
	return sm.initialized && !sm.muted
}

// Play mixes a one-shot cue; dropped when the mixer is saturated
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active() || c == CueNone {
		return
	}
	s := CueSound(c, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(s)
	sm.played++
}

// StartPulse starts the looping medicine beat if it is not already running
func (sm *SoundManager) StartPulse() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active() {
		return
	}
	if sm.pulse != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(NewPulseGenerator(sampleRate, pulseBPM), 0.5)}
	sm.pulse = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopPulse stops the medicine beat
func (sm *SoundManager) StopPulse() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.pulse != nil {
		speaker.Lock()
		sm.stopPulse()
		speaker.Unlock()
	}
}

// stopPulse drains the loop so the mixer drops it; caller holds the speaker lock
func (sm *SoundManager) stopPulse() {
	if sm.pulse != nil {
		sm.pulse.Streamer = nil
		sm.pulse = nil
	}
}

// SetPulse starts or stops the medicine beat to match on
func (sm *SoundManager) SetPulse(on bool) {
	if on {
		sm.StartPulse()
	} else {
		sm.StopPulse()
	}
}
