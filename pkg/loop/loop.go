// pkg/loop/loop.go

// Package loop drives a simulation at a fixed tick rate while frames
// are drawn at the display rate. Rendering never influences physics;
// a slow frame just replays more fixed steps on the next one.
package loop

import (
	"context"
	"time"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/render"
)

const (
	DefaultTickRate  = 120
	DefaultFrameRate = 60

	// maxFrameTime caps how much real time one frame may feed into
	// the accumulator, so a long stall cannot trigger a tick spiral.
	maxFrameTime = 0.25
)

// Simulation is the part of the game the loop drives.
type Simulation interface {
	Tick(deltaTime float64, intents input.Intents)
	Snapshot() engine.Snapshot
	Done() bool
}

// Source supplies the player's intents, polled once per fixed step.
type Source interface {
	Poll() input.Intents
}

// FuncSource adapts a plain function into a Source.
type FuncSource func() input.Intents

// Poll satisfies the Source interface.
func (f FuncSource) Poll() input.Intents {
	return f()
}

// Options tunes the loop. Zero rates fall back to the defaults; a zero
// MaxTicks means the loop runs until the simulation finishes.
type Options struct {
	TickRate  int
	FrameRate int
	MaxTicks  uint64
}

// Run drives the simulation until it reports done, the tick budget is
// spent, or the context ends. The final state is always rendered
// before returning.
func Run(ctx context.Context, sim Simulation, source Source, renderer render.Renderer, opts Options) error {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}

	step := 1.0 / float64(tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	last := time.Now()
	accumulator := 0.0
	var totalSteps uint64

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			accumulator += now.Sub(last).Seconds()
			last = now
			if accumulator > maxFrameTime {
				accumulator = maxFrameTime
			}

			for accumulator >= step {
				sim.Tick(step, source.Poll())
				accumulator -= step
				totalSteps++
				if opts.MaxTicks > 0 && totalSteps >= opts.MaxTicks {
					break
				}
			}

			render.RenderFrame(renderer, render.BuildFrame(sim.Snapshot()))

			if sim.Done() {
				return nil
			}
			if opts.MaxTicks > 0 && totalSteps >= opts.MaxTicks {
				return nil
			}
		}
	}
}
