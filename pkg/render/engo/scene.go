// pkg/render/engo/scene.go

// Package engo presents the simulation in a desktop window using the
// Engo game engine. The board is drawn from solid rectangle entities,
// scores and the serve countdown as seven-segment digits, and phase
// banners through the window title.
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pong/pkg/engine"
)

// defaultTickRate guards against a scene built without a usable rate.
const defaultTickRate = 120

// Options configures the engo window.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	TickRate   int
}

// Run opens the window and blocks until the player exits.
func Run(game *engine.Game, opts Options) {
	engo.Run(engo.RunOptions{
		Title:        "Pong",
		Width:        opts.Width,
		Height:       opts.Height,
		Fullscreen:   opts.Fullscreen,
		VSync:        true,
		NotResizable: true,
	}, NewScene(game, opts.TickRate))
}

// Scene drives a match inside an engo window.
type Scene struct {
	game     *engine.Game
	tickRate int
}

// NewScene wraps a simulation for presentation at the given tick rate.
func NewScene(game *engine.Game, tickRate int) *Scene {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return &Scene{game: game, tickRate: tickRate}
}

// Type uniquely identifies the scene within engo.
func (s *Scene) Type() string {
	return "PongScene"
}

// Preload is a no-op; every drawable is generated at setup time.
func (s *Scene) Preload() {}

// Setup assembles the render system, control bindings, and the match
// loop inside the fresh world.
func (s *Scene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		return
	}

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	RegisterButtons()

	board := NewBoard(renderSystem, s.game.Config.Field(),
		float64(engo.GameWidth()), float64(engo.GameHeight()))
	board.Sync(s.game.Snapshot())

	world.AddSystem(&matchSystem{
		game:  s.game,
		board: board,
		step:  1.0 / float64(s.tickRate),
	})
}

// Exit runs when the window closes.
func (s *Scene) Exit() {}
