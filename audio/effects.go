package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/arcade/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= e.totalSamples-e.releaseSamples {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
// math.Log2(0) is -Inf, so silence is explicit
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped oscillator note
type tone struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	volume   float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	return newVolume(NewEnvelope(osc, t.duration, t.attack, t.release, rate), t.volume)
}

// sineBlip is a plain sine from beep's generators, cut to duration
func sineBlip(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(duration))
	}
	return newVolume(beep.Take(rate.N(duration), sine), vol)
}

// CueSound builds the finite streamer for a cue; nil for CueNone
func CueSound(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueFire:
		return tone{660, WaveSquare, 60 * ms, 2 * ms, 40 * ms, 0.15}.streamer(rate)
	case CueHit:
		return beep.Seq(
			sineBlip(rate, 880, 50*ms, 0.3),
			sineBlip(rate, 1320, 50*ms, 0.2),
		)
	case CueDamage:
		return beep.Take(rate.N(300*ms), NewDecayGenerator(rate))
	case CuePlace:
		return tone{520, WaveSine, 90 * ms, 5 * ms, 60 * ms, 0.3}.streamer(rate)
	case CueReject:
		return beep.Take(rate.N(150*ms), NewBuzzGenerator(rate, 120))
	case CuePickup:
		return beep.Mix(
			tone{880, WaveSine, 250 * ms, 5 * ms, 200 * ms, 0.25}.streamer(rate),
			tone{1760, WaveSine, 250 * ms, 5 * ms, 120 * ms, 0.1}.streamer(rate),
		)
	case CueMedicine:
		return tone{0, WaveNoise, 200 * ms, 10 * ms, 150 * ms, 0.2}.streamer(rate)
	case CueWave:
		return beep.Take(rate.N(time.Second), NewWhroomGenerator(rate))
	case CueWin:
		return beep.Seq(
			tone{987.77, WaveSquare, 120 * ms, 5 * ms, 60 * ms, 0.2}.streamer(rate),
			tone{1318.51, WaveSquare, 300 * ms, 5 * ms, 250 * ms, 0.2}.streamer(rate),
		)
	case CueLose:
		return beep.Seq(
			tone{330, WaveSaw, 200 * ms, 5 * ms, 100 * ms, 0.2}.streamer(rate),
			tone{220, WaveSaw, 400 * ms, 5 * ms, 350 * ms, 0.2}.streamer(rate),
		)
	}
	return nil
}
