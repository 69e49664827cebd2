package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
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
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
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

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, d, wave, rate)
	return newEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// biteSound is a short low saw growl for being caught.
func biteSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	osc := newOscillator(140, d, waveSaw, rate)
	return newEnvelope(osc, d, 5*time.Millisecond, 120*time.Millisecond, rate)
}

// splashSound is a burst of noise for reaching the water.
func splashSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	noise := newOscillator(0, d, waveNoise, rate)
	return newVolume(newEnvelope(noise, d, 10*time.Millisecond, 300*time.Millisecond, rate), 0.6)
}

// collectSound is a two-note chime for the gem.
func collectSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(987.77, 80*time.Millisecond, waveSquare, rate),
		tone(1318.51, 200*time.Millisecond, waveSquare, rate),
	)
}

// buzzerSound is a flat square buzz for running out of time.
func buzzerSound(rate beep.SampleRate) beep.Streamer {
	d := 500 * time.Millisecond
	return beep.Take(rate.N(d), beep.Mix(
		newVolume(tone(110, d, waveSquare, rate), 0.6),
		newVolume(tone(116.54, d, waveSquare, rate), 0.4),
	))
}

// gameOverSound is a falling four-note phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{392.00, 329.63, 261.63, 196.00}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		d := 250 * time.Millisecond
		if i == len(notes)-1 {
			d = 600 * time.Millisecond
		}
		parts = append(parts, tone(f, d, waveSine, rate))
	}
	return beep.Seq(parts...)
}

// musicPhrase is one pass of the background melody over a bass line.
func musicPhrase(rate beep.SampleRate) beep.Streamer {
	step := 180 * time.Millisecond
	melody := []float64{261.63, 329.63, 392.00, 329.63, 349.23, 440.00, 523.25, 440.00}
	bass := []float64{130.81, 174.61}

	lead := make([]beep.Streamer, 0, len(melody))
	for _, f := range melody {
		lead = append(lead, tone(f, step, waveSine, rate))
	}
	low := make([]beep.Streamer, 0, len(bass))
	for _, f := range bass {
		low = append(low, tone(f, step*time.Duration(len(melody)/len(bass)), waveSquare, rate))
	}

	length := rate.N(step * time.Duration(len(melody)))
	return beep.Take(length, beep.Mix(
		newVolume(beep.Seq(lead...), 0.7),
		newVolume(beep.Seq(low...), 0.2),
	))
}
