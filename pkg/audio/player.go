// pkg/audio/player.go

// Package audio plays short synthesized cues for simulation events
// through the system speaker. When no audio device is available the
// player degrades to silence instead of failing.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-pong/pkg/event"
)

const (
	toneSampleRate = beep.SampleRate(48000)
	speakerBuffer  = 100 * time.Millisecond

	paddleHitFreq = 880.0
	wallHitFreq   = 440.0

	blipDuration = 60 * time.Millisecond
	noteDuration = 140 * time.Millisecond
)

// pointChime marks a scored point, winFigure the end of the match.
var (
	pointChime = []float64{523.25, 783.99}
	winFigure  = []float64{523.25, 659.25, 1046.5}
)

// Player synthesizes feedback tones for simulation events.
type Player struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	initialized   bool
	subscriptions []*event.Subscription
}

// NewPlayer creates a silent player. Call Initialize to open the
// speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the system speaker and starts streaming the mixer.
// Calling it twice is a no-op. Callers should treat failure as a
// degraded mode rather than a reason to stop.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Attach subscribes the player to the events that make noise.
func (p *Player) Attach(bus *event.Bus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscriptions = append(p.subscriptions,
		bus.Subscribe(event.PaddleHit, func(event.Event) { p.playTone(paddleHitFreq) }),
		bus.Subscribe(event.WallHit, func(event.Event) { p.playTone(wallHitFreq) }),
		bus.Subscribe(event.PointScored, func(event.Event) { p.playFigure(pointChime) }),
		bus.Subscribe(event.GameEnded, func(event.Event) { p.playFigure(winFigure) }),
	)
}

// Detach cancels every event subscription. Safe to call twice.
func (p *Player) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, sub := range p.subscriptions {
		sub.Cancel()
	}
	p.subscriptions = nil
}

// Close detaches from events and releases the speaker.
func (p *Player) Close() {
	p.Detach()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// playTone queues one short blip.
func (p *Player) playTone(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.queue(beep.Take(toneSampleRate.N(blipDuration), newTone(freq)))
}

// playFigure queues a sequence of notes.
func (p *Player) playFigure(freqs []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	notes := make([]beep.Streamer, len(freqs))
	for i, freq := range freqs {
		notes[i] = beep.Take(toneSampleRate.N(noteDuration), newTone(freq))
	}
	p.queue(beep.Seq(notes...))
}

// queue hands a streamer to the mixer. The speaker lock keeps the
// playback goroutine from reading the mixer mid-append.
func (p *Player) queue(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
