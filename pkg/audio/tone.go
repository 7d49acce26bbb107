// pkg/audio/tone.go
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	toneVolume  = 0.25
	attackTime  = 0.005
	releaseRate = 8.0
)

// tone synthesizes a sine note with a short attack ramp and an
// exponential release, so cues start and fade without clicks.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(freq float64) *tone {
	return &tone{sr: toneSampleRate, freq: freq}
}

// Stream satisfies the beep.Streamer interface.
func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/attackTime, 1.0) * math.Exp(-t*releaseRate)
		sample := envelope * toneVolume * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err satisfies the beep.Streamer interface.
func (g *tone) Err() error {
	return nil
}
