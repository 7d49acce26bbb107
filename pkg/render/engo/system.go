// pkg/render/engo/system.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/engine"
)

// maxFrameTime caps how much real time one frame may feed into the
// accumulator, so a stalled window doesn't trigger a catch-up spiral.
const maxFrameTime = 0.25

// matchSystem advances the fixed-step simulation from engo's variable
// frame loop and keeps the board in step with it.
type matchSystem struct {
	game  *engine.Game
	board *Board
	step  float64

	accumulator float64
	lastTitle   string
}

// Remove satisfies the ecs.System interface.
func (m *matchSystem) Remove(basic ecs.BasicEntity) {}

// Update satisfies the ecs.System interface. It drains the frame time
// through fixed simulation steps, then syncs the drawable entities.
func (m *matchSystem) Update(dt float32) {
	if m.game.Done() {
		engo.Exit()
		return
	}

	m.accumulator += float64(dt)
	if m.accumulator > maxFrameTime {
		m.accumulator = maxFrameTime
	}

	intents := PollIntents()
	for m.accumulator >= m.step {
		m.game.Tick(m.step, intents)
		m.accumulator -= m.step
	}

	snap := m.game.Snapshot()
	m.board.Sync(snap)
	m.syncTitle(snap)
}

func (m *matchSystem) syncTitle(snap engine.Snapshot) {
	title := bannerTitle(snap)
	if title == m.lastTitle {
		return
	}
	m.lastTitle = title
	engo.SetTitle(title)
}
