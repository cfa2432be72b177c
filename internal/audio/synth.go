package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration. A zero duration never ends.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a gliding oscillator.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewTone creates a fixed-pitch oscillator.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		freq := o.from
		if o.duration > 0 {
			freq += (o.to - o.from) * float64(o.position) / float64(o.duration)
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 silences it.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	exp, silent := volumeLevel(vol)
	return &effects.Volume{Streamer: s, Base: 2, Volume: exp, Silent: silent}
}

// volumeLevel converts a linear gain to a base-2 exponent.
// math.Log2(0) is -Inf, so zero is handled with silent.
func volumeLevel(vol float64) (exp float64, silent bool) {
	if vol <= 0 {
		return 0, true
	}
	return math.Log2(vol), false
}

// Sound identifies a synthesized effect.
type Sound int

const (
	SoundBounce Sound = iota
	SoundGameOver
	SoundNewRecord
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundGameOver:
		return "game_over"
	case SoundNewRecord:
		return "new_record"
	default:
		return "unknown"
	}
}

// Effect builds a fresh streamer for a sound. pitch scales the base
// frequencies (1 = normal).
func Effect(s Sound, pitch float64, rate beep.SampleRate) beep.Streamer {
	if pitch <= 0 {
		pitch = 1
	}
	switch s {
	case SoundBounce:
		d := 90 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(300*pitch, 650*pitch, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.5)
	case SoundGameOver:
		d := 700 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(420*pitch, 90*pitch, d, WaveSaw, rate), d, 10*time.Millisecond, 250*time.Millisecond, rate), 0.35)
	case SoundNewRecord:
		notes := []float64{1046.5, 1318.5, 1568.0, 2093.0} // C6 E6 G6 C7
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			d := 110 * time.Millisecond
			parts = append(parts, NewEnvelope(NewTone(f*pitch, d, WaveSquare, rate), d, 5*time.Millisecond, 50*time.Millisecond, rate))
		}
		return newVolume(beep.Seq(parts...), 0.2)
	default:
		return nil
	}
}

// music is an endless bass and arpeggio loop.
type music struct {
	rate     beep.SampleRate
	pos      int
	step     int // Samples per eighth note
	phase    float64
	progress []float64
	arp      []float64
}

// NewMusic creates the background loop at the given tempo.
func NewMusic(bpm float64, rate beep.SampleRate) beep.Streamer {
	if bpm <= 0 {
		bpm = 120
	}
	step := rate.N(time.Duration(float64(time.Minute) / bpm / 2))
	if step < 1 {
		step = 1
	}
	return &music{
		rate: rate,
		step: step,
		// A2 F2 C3 G2
		progress: []float64{110.0, 87.31, 130.81, 98.0},
		// Ratios over the root
		arp: []float64{1, 1.5, 2, 1.5, 2.5, 2, 1.5, 1},
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := m.pos / m.step
		bar := (note / len(m.arp)) % len(m.progress)
		root := m.progress[bar]
		freq := root * 2 * m.arp[note%len(m.arp)]

		// Pluck: each eighth note decays
		inNote := float64(m.pos%m.step) / float64(m.step)
		pluck := math.Exp(-inNote * 4)

		t := float64(m.pos) / float64(m.rate)
		bass := 0.25 * waveAt(WaveTriangle, math.Mod(root*t, 1))

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		lead := 0.15 * pluck * waveAt(WaveSquare, m.phase)

		val := bass + lead
		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
