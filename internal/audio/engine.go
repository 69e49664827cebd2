// Package audio plays the game's music and sound cues. Sounds are synthesised
// with beep and piped as raw PCM to an external player, so there is no cgo
// audio dependency. Without a player the engine runs silently.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-crossing/internal/crossing"
)

const (
	bufferDuration = 20 * time.Millisecond
	bytesPerFrame  = 4 // s16le stereo
)

// Engine turns game cues into sound. It implements crossing.CueSink.
type Engine struct {
	cfg  Config
	rate beep.SampleRate

	mu      sync.Mutex // Guards mixer and music between Cue and the pump
	mixer   *beep.Mixer
	music   *beep.Ctrl
	effects map[crossing.Cue]func(beep.SampleRate) beep.Streamer

	backend *Backend
	cmd     *exec.Cmd
	stdin   io.WriteCloser

	running atomic.Bool
	silent  atomic.Bool
	played  atomic.Uint64
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewEngine prepares the mixer and the looping music track. Nothing is
// played until Start.
func NewEngine(cfg Config) *Engine {
	rate := beep.SampleRate(cfg.SampleRate)

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	track := beep.NewBuffer(format)
	track.Append(musicPhrase(rate))

	music := &beep.Ctrl{Streamer: beep.Loop(-1, track.Streamer(0, track.Len())), Paused: true}
	mixer := &beep.Mixer{}
	mixer.Add(newVolume(music, cfg.MusicVolume*cfg.MasterVolume))

	return &Engine{
		cfg:   cfg,
		rate:  rate,
		mixer: mixer,
		music: music,
		effects: map[crossing.Cue]func(beep.SampleRate) beep.Streamer{
			crossing.CueCollision: biteSound,
			crossing.CueCrossing:  splashSound,
			crossing.CuePickup:    collectSound,
			crossing.CueTimeout:   buzzerSound,
			crossing.CueGameOver:  gameOverSound,
		},
		stop: make(chan struct{}),
	}
}

// Start launches the backend process and the pump goroutine. A missing or
// failing backend puts the engine in silent mode; that is not an error.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio: engine already running")
	}
	e.running.Store(true)

	if !e.cfg.Enabled {
		e.silent.Store(true)
		return nil
	}

	backend, err := DetectBackend(e.cfg.SampleRate)
	if err != nil {
		e.silent.Store(true)
		return nil
	}
	e.backend = backend

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.silent.Store(true)
		return nil
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		e.silent.Store(true)
		return nil
	}
	e.cmd = cmd
	e.stdin = stdin

	e.wg.Add(2)
	go e.monitorProcess()
	go e.pump(stdin)
	return nil
}

// Stop terminates the pump and the backend process.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	close(e.stop)

	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	e.wg.Wait()
}

// Cue implements crossing.CueSink. Music cues always update the music state;
// effects are only mixed while a backend is playing.
func (e *Engine) Cue(c crossing.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch c {
	case crossing.CueMusicStart, crossing.CueResume:
		e.music.Paused = false
		return
	case crossing.CueMusicStop, crossing.CuePause:
		e.music.Paused = true
		return
	case crossing.CueGameOver:
		e.music.Paused = true
	}

	build, ok := e.effects[c]
	if !ok || !e.audible() {
		return
	}
	vol := e.cfg.EffectVolume * e.cfg.MasterVolume
	e.mixer.Add(newVolume(build(e.rate), vol))
	e.played.Add(1)
}

// MusicPlaying reports whether the background track is unpaused.
func (e *Engine) MusicPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.music.Paused
}

// Silent reports whether the engine runs without a backend.
func (e *Engine) Silent() bool {
	return e.silent.Load()
}

// BackendName returns the detected player, or "none".
func (e *Engine) BackendName() string {
	if e.backend == nil {
		return "none"
	}
	return e.backend.Name
}

// Played returns the number of effects mixed so far.
func (e *Engine) Played() uint64 {
	return e.played.Load()
}

func (e *Engine) audible() bool {
	return e.running.Load() && !e.silent.Load()
}

// monitorProcess switches to silent mode if the backend exits early.
func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	if err := e.cmd.Wait(); err != nil && e.running.Load() {
		e.silent.Store(true)
	}
}

// pump writes one buffer of mixed PCM per tick until stopped or the pipe breaks.
func (e *Engine) pump(out io.Writer) {
	defer e.wg.Done()

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	samples := make([][2]float64, e.rate.N(bufferDuration))
	pcm := make([]byte, len(samples)*bytesPerFrame)

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			e.fill(samples)
			encodeS16LE(samples, pcm)
			if _, err := out.Write(pcm); err != nil {
				e.silent.Store(true)
				return
			}
		}
	}
}

// fill streams the mixer into samples. Anything the mixer leaves unfilled is silence.
func (e *Engine) fill(samples [][2]float64) {
	for i := range samples {
		samples[i] = [2]float64{}
	}

	e.mu.Lock()
	e.mixer.Stream(samples)
	e.mu.Unlock()
}

// encodeS16LE converts float frames to interleaved little-endian int16, clipping to [-1, 1].
func encodeS16LE(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			binary.LittleEndian.PutUint16(out[i*bytesPerFrame+ch*2:], uint16(int16(v*32767)))
		}
	}
}
