package audio

import (
	"errors"
	"os/exec"
	"strconv"
)

// ErrNoAudioBackend is returned when no PCM player is installed.
var ErrNoAudioBackend = errors.New("audio: no audio backend found")

// Backend is an external program that plays raw s16le stereo PCM from stdin.
type Backend struct {
	Name string
	Path string
	Args []string
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// DetectBackend picks the first available player.
// Priority: pacat > pw-cat > aplay > play (sox).
func DetectBackend(sampleRate int) (*Backend, error) {
	rate := strconv.Itoa(sampleRate)

	candidates := []Backend{
		{Name: "pacat", Args: []string{
			"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback",
		}},
		{Name: "pw-cat", Args: []string{
			"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-",
		}},
		{Name: "aplay", Args: []string{
			"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q",
		}},
		{Name: "play", Args: []string{
			"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q",
		}},
	}

	for _, c := range candidates {
		path, err := lookPath(c.Name)
		if err != nil {
			continue
		}
		c.Path = path
		return &c, nil
	}
	return nil, ErrNoAudioBackend
}
