package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/phanxgames/colorcombine"
)

const (
	chimeNoteDuration = 180 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 120 * time.Millisecond

	// baseFrequency is the pitch of a red (hue 0) merge. A full turn of the
	// hue wheel spans one octave.
	baseFrequency = 440.0
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear fade-in over attack and a linear
// fade-out over the last release of duration.
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
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero volume
// is rendered silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ChimeFrequency maps a hue in degrees to a pitch: 0 is baseFrequency and
// each full turn adds an octave.
func ChimeFrequency(hue float64) float64 {
	return baseFrequency * math.Pow(2, hue/360)
}

// Chime builds the merge sound for a combined color: the hue's note followed
// by its fifth, quieter for darker mixes.
func Chime(c colorcombine.HSLA, volume float64, rate beep.SampleRate) beep.Streamer {
	freq := ChimeFrequency(c.H)
	note := func(f float64) beep.Streamer {
		osc := NewOscillator(f, chimeNoteDuration, WaveSine, rate)
		return NewEnvelope(osc, chimeNoteDuration, chimeAttack, chimeRelease, rate)
	}
	seq := beep.Seq(note(freq), note(freq*1.5))
	return newVolume(seq, volume*(0.5+0.5*c.L))
}

// ChimeDuration is the length of the sound returned by Chime.
func ChimeDuration() time.Duration {
	return 2 * chimeNoteDuration
}
