package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/arcade/vmath"
)

// WhroomGenerator is an endless rising and falling sweep, used for wave starts
type WhroomGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func NewWhroomGenerator(sr beep.SampleRate) *WhroomGenerator {
	return &WhroomGenerator{sr: sr, samples: sr.N(time.Second)}
}

func (g *WhroomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 80Hz to 200Hz and back over one cycle
		cycle := float64(g.pos%g.samples) / float64(g.samples)
		freq := 80 + 120*math.Sin(cycle*math.Pi)
		amp := 0.15 * (0.5 + 0.5*math.Sin(cycle*math.Pi*2))
		s := amp * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *WhroomGenerator) Err() error { return nil }

// BuzzGenerator is a harmonic-rich low buzz for rejected actions
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		s := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		s *= math.Min(t/0.02, 1.0) * 0.2

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// PulseGenerator is a looping kick and bass beat, played while a medicine boost runs
type PulseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

// NewPulseGenerator creates a beat at bpm beats per minute
func NewPulseGenerator(sr beep.SampleRate, bpm float64) *PulseGenerator {
	return &PulseGenerator{
		sr:      sr,
		samples: sr.N(time.Duration(float64(time.Minute) / bpm)),
		kick:    sr.N(100 * time.Millisecond),
	}
}

func (g *PulseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := g.pos % g.samples
		t := float64(beat) / float64(g.sr)

		kick := 0.0
		if beat < g.kick {
			env := 1.0 - float64(beat)/float64(g.kick)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		s := kick + 0.15*math.Sin(2*math.Pi*110*t)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *PulseGenerator) Err() error { return nil }

// DecayGenerator is a crackle with a low rumble, used for damage
type DecayGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise *vmath.FastRand
}

func NewDecayGenerator(sr beep.SampleRate) *DecayGenerator {
	return &DecayGenerator{sr: sr, noise: vmath.NewTimeSeededRand()}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 8)
		noise := g.noise.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*80*t)
		s := env * (0.25*noise + rumble)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error { return nil }
