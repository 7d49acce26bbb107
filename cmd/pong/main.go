// cmd/pong/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-pong/pkg/audio"
	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/loop"
	"github.com/opd-ai/go-pong/pkg/render"
	engoview "github.com/opd-ai/go-pong/pkg/render/engo"
	"github.com/opd-ai/go-pong/pkg/render/terminal"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Invalid environment configuration", err)
		os.Exit(1)
	}

	// Command-line flags override environment values
	renderer := flag.String("renderer", envConfig.Renderer, "Renderer type: 'terminal', 'engo', or 'null'")
	width := flag.Int("width", envConfig.WindowWidth, "Window width (engo only)")
	height := flag.Int("height", envConfig.WindowHeight, "Window height (engo only)")
	fullscreen := flag.Bool("fullscreen", envConfig.Fullscreen, "Run in fullscreen mode (engo only)")
	seed := flag.Uint64("seed", envConfig.Seed, "Simulation seed, 0 picks one from the clock")
	mute := flag.Bool("mute", envConfig.Mute, "Disable audio cues")
	ticks := flag.Uint64("ticks", 0, "Stop after this many simulation ticks (null renderer)")
	flag.Parse()

	usedSeed := *seed
	if usedSeed == 0 {
		usedSeed = uint64(time.Now().UnixNano())
	}
	random := rand.New(rand.NewPCG(usedSeed, 0x9e3779b97f4a7c15))

	game := engine.NewGame(engine.DefaultConfig(), random)

	player := audio.NewPlayer()
	if !*mute {
		if err := player.Initialize(); err != nil {
			logger.Warn(ctx, "Audio unavailable, continuing without sound",
				"error", err.Error(),
			)
		}
	}
	player.Attach(game.EventBus)
	defer player.Close()

	subscribeLogging(logger, game.EventBus)

	logger.Info(ctx, "Starting match",
		"renderer", *renderer,
		"seed", usedSeed,
	)

	switch *renderer {
	case config.RendererEngo:
		engoview.Run(game, engoview.Options{
			Width:      *width,
			Height:     *height,
			Fullscreen: *fullscreen,
			TickRate:   envConfig.TickRate,
		})
	case config.RendererNull:
		runHeadless(ctx, logger, game, envConfig, *ticks)
	case config.RendererTerminal:
		fallthrough
	default:
		runTerminal(ctx, logger, game, envConfig)
	}

	snap := game.Snapshot()
	logger.Info(ctx, "Match finished",
		"ticks", snap.Tick,
		"left", snap.Score.Left,
		"right", snap.Score.Right,
	)
}

// runTerminal plays the match on a tcell screen. The screen handles
// keyboard input, so Ctrl-C arrives as a key event rather than SIGINT.
func runTerminal(ctx context.Context, logger *logging.Logger, game *engine.Game, envConfig *config.EnvironmentConfig) {
	screen, err := terminal.NewScreen()
	if err != nil {
		logger.Error(ctx, "Failed to initialize the terminal", err)
		os.Exit(1)
	}
	defer screen.Fini()

	source := terminal.NewSource(screen)
	sink := terminal.NewRenderer(screen, game.Config.Field())

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{TickRate: envConfig.TickRate, FrameRate: envConfig.FrameRate}
	if err := loop.Run(runCtx, game, source, sink, opts); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Game loop stopped", err)
	}
}

// runHeadless drives a full match without a display. The source starts
// the match from Idle and exits once a winner is decided, so the run
// terminates on its own unless a tick budget cuts it short.
func runHeadless(ctx context.Context, logger *logging.Logger, game *engine.Game, envConfig *config.EnvironmentConfig, ticks uint64) {
	source := loop.FuncSource(func() input.Intents {
		switch game.Phase() {
		case engine.PhaseIdle:
			return input.Intents{}.With(input.Start)
		case engine.PhaseGameOver:
			return input.Intents{}.With(input.Exit)
		}
		return input.Intents{}
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		TickRate:  envConfig.TickRate,
		FrameRate: envConfig.FrameRate,
		MaxTicks:  ticks,
	}
	if err := loop.Run(runCtx, game, source, render.NewNullRenderer(), opts); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Game loop stopped", err)
	}
}

// subscribeLogging mirrors match milestones into the structured log.
func subscribeLogging(logger *logging.Logger, bus *event.Bus) {
	ctx := context.Background()

	bus.Subscribe(event.GameStarted, func(e event.Event) {
		logger.Info(ctx, "Match started")
	})
	bus.Subscribe(event.PointScored, func(e event.Event) {
		if score, ok := e.(*event.ScoreEvent); ok {
			logger.Info(ctx, "Point scored",
				"scorer", score.Scorer.String(),
				"left", score.Left,
				"right", score.Right,
			)
		}
	})
	bus.Subscribe(event.GameEnded, func(e event.Event) {
		if ended, ok := e.(*event.GameEvent); ok && ended.HasWinner {
			logger.Info(ctx, "Match ended", "winner", ended.Winner.String())
		}
	})
	bus.Subscribe(event.GameReset, func(e event.Event) {
		logger.Info(ctx, "Match reset")
	})
}
