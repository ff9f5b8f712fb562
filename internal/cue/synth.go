package cue

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// note is one segment of a cue sound.
type note struct {
	freq float64
	dur  time.Duration
	wave Waveform
}

// cueNotes describes every cue as a short sequence of notes.
var cueNotes = map[ID][]note{
	PlayerFire: {
		{freq: 880, dur: 40 * time.Millisecond, wave: WaveSquare},
		{freq: 660, dur: 40 * time.Millisecond, wave: WaveSquare},
	},
	PlayerHit: {
		{freq: 220, dur: 180 * time.Millisecond, wave: WaveSaw},
	},
	EnemyKilled: {
		{freq: 0, dur: 90 * time.Millisecond, wave: WaveNoise},
		{freq: 523, dur: 60 * time.Millisecond, wave: WaveSine},
	},
	EnemyFire: {
		{freq: 330, dur: 70 * time.Millisecond, wave: WaveSquare},
	},
	PlayerDefeated: {
		{freq: 440, dur: 150 * time.Millisecond, wave: WaveSine},
		{freq: 330, dur: 150 * time.Millisecond, wave: WaveSine},
		{freq: 220, dur: 150 * time.Millisecond, wave: WaveSine},
		{freq: 110, dur: 300 * time.Millisecond, wave: WaveSaw},
	},
}

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Waveform
	rate     beep.SampleRate
}

func newOscillator(freq float64, dur time.Duration, wave Waveform, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: rate.N(dur),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
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
			val = rand.Float64()*2 - 1
		}

		// Short linear fade at both ends to avoid clicks
		fade := rampSamples
		if o.position < fade {
			val *= float64(o.position) / float64(fade)
		} else if rem := o.length - o.position; rem < fade {
			val *= float64(rem) / float64(fade)
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

const rampSamples = 220

// withVolume scales a stream by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound builds the streamer for a cue at the given volume.
// Unknown cues produce nil.
func Sound(id ID, vol float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[id]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newOscillator(n.freq, n.dur, n.wave, rate))
	}
	return withVolume(beep.Seq(parts...), vol*0.3)
}

// SoundDuration returns the total playing time of a cue.
func SoundDuration(id ID) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[id] {
		d += n.dur
	}
	return d
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// SynthSink plays cues through the system audio device.
type SynthSink struct {
	volume float64
}

// NewSynthSink initializes the speaker once per process.
// Returns an error when no audio device is available.
func NewSynthSink(volume float64) (*SynthSink, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("cannot initialize speaker: %w", speakerErr)
	}
	return &SynthSink{volume: volume}, nil
}

// Name returns "beep".
func (s *SynthSink) Name() string { return "beep" }

// Play mixes the cue into the speaker output and blocks until it finishes.
func (s *SynthSink) Play(id ID) {
	snd := Sound(id, s.volume, sampleRate)
	if snd == nil {
		return
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(snd, beep.Callback(func() { close(done) })))

	// The speaker may stall if the device disappears; never wait forever.
	select {
	case <-done:
	case <-time.After(SoundDuration(id) + time.Second):
	}
}
