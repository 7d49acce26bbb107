// pkg/engine/game.go
package engine

import (
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/ai"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Game owns the complete simulation state for one match: the ball, both
// paddles, the score, and the phase machine that sequences serves,
// rallies, and the end of the match. It is not safe for concurrent use;
// the game loop drives it from a single goroutine.
type Game struct {
	Config   *Config
	EventBus *event.Bus

	Ball        *entity.Ball
	LeftPaddle  *entity.Paddle
	RightPaddle *entity.Paddle
	Score       entity.Score

	CurrentTick uint64

	opponent *ai.Controller
	random   *rand.Rand

	phase     Phase
	remaining float64

	rallyWinner   entity.Side
	matchWinner   entity.Side
	lastWinner    entity.Side
	hasLastWinner bool

	done bool
}

// NewGame creates a match in the Idle phase. The random source drives
// serve angles and opponent aim error; seeding it makes runs repeatable.
func NewGame(config *Config, random *rand.Rand) *Game {
	game := &Game{
		Config:   config,
		EventBus: event.NewEventBus(),
		random:   random,
		phase:    PhaseIdle,
	}

	game.initEntities()
	game.opponent = ai.NewController(config.AI, random)

	return game
}

// initEntities places the ball and paddles in their starting positions
func (g *Game) initEntities() {
	c := g.Config
	paddleY := (c.FieldHeight - c.PaddleHeight) / 2

	g.Ball = entity.NewBall(c.FieldCenter(), c.BallRadius)
	g.LeftPaddle = entity.NewPaddle(entity.Left,
		physics.Vector2D{X: 0, Y: paddleY},
		c.PaddleWidth, c.PaddleHeight, c.PlayerSpeed)
	g.RightPaddle = entity.NewPaddle(entity.Right,
		physics.Vector2D{X: c.FieldWidth - c.PaddleWidth, Y: paddleY},
		c.PaddleWidth, c.PaddleHeight, c.OpponentSpeed)
}

// Tick advances the simulation by one fixed step. Intents are the
// player inputs sampled for this step; deltaTime is the step length in
// seconds. Once Exit has been requested, further ticks are no-ops.
func (g *Game) Tick(deltaTime float64, intents input.Intents) {
	if g.done {
		return
	}
	g.CurrentTick++

	if intents.Has(input.Exit) {
		g.done = true
		return
	}
	if intents.Has(input.Reset) {
		g.reset()
		return
	}

	switch g.phase {
	case PhaseIdle:
		g.tickIdle(intents)
	case PhaseCountdown:
		g.tickCountdown(deltaTime, intents)
	case PhasePlaying:
		g.tickPlaying(deltaTime, intents)
	case PhasePointScored:
		g.tickPointScored(deltaTime, intents)
	case PhaseGameOver:
		// Frozen until Reset or Exit, both handled above.
	}
}

// tickIdle waits for the start intent; movement input is ignored
func (g *Game) tickIdle(intents input.Intents) {
	if !intents.Has(input.Start) {
		return
	}
	g.remaining = g.Config.CountdownTime
	g.transition(PhaseCountdown)
	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g))
}

// tickCountdown runs the pre-serve pause, then serves and enters play
func (g *Game) tickCountdown(deltaTime float64, intents input.Intents) {
	if g.waitStep(deltaTime, intents) {
		g.serve()
		g.transition(PhasePlaying)
	}
}

// tickPointScored runs the between-point pause, then serves the next rally
func (g *Game) tickPointScored(deltaTime float64, intents input.Intents) {
	if g.waitStep(deltaTime, intents) {
		g.serve()
		g.transition(PhasePlaying)
	}
}

// waitStep advances one tick of a serve pause: paddles stay live (the
// player repositions, the opponent recenters) while the ball holds at
// the field center. Returns true once the pause has elapsed.
func (g *Game) waitStep(deltaTime float64, intents input.Intents) bool {
	if intents.Has(input.Pause) {
		g.pause()
		return false
	}

	g.LeftPaddle.MoveBy(intents.Vertical(), deltaTime, g.Config.FieldHeight)
	move := g.opponent.Recenter(g.RightPaddle, g.Config.FieldHeight)
	g.RightPaddle.MoveBy(move.Direction(), deltaTime, g.Config.FieldHeight)

	g.remaining -= deltaTime
	return g.remaining <= 0
}

// tickPlaying advances one tick of an active rally: player input first,
// then the opponent's decision, then ball motion and collisions
func (g *Game) tickPlaying(deltaTime float64, intents input.Intents) {
	if intents.Has(input.Pause) {
		g.pause()
		return
	}

	g.LeftPaddle.MoveBy(intents.Vertical(), deltaTime, g.Config.FieldHeight)
	move := g.opponent.Decide(deltaTime, g.Ball, g.RightPaddle)
	g.RightPaddle.MoveBy(move.Direction(), deltaTime, g.Config.FieldHeight)

	g.Ball.Advance(deltaTime)
	g.resolveCollisions()
}

// serve launches the ball from the field center toward the side that
// won the previous point, or the default side on the first serve
func (g *Game) serve() {
	toward := g.Config.DefaultServeSide
	if g.hasLastWinner {
		toward = g.lastWinner
	}

	g.Ball.Serve(g.Config.FieldCenter(), toward, g.Config.ServeSpeed,
		g.Config.ServeAngleMax, g.random)
	g.opponent.BeginRally()
	g.EventBus.Publish(event.NewServeEvent(g, toward))
}

// scorePoint credits a point, then either ends the match or schedules
// the next serve
func (g *Game) scorePoint(scorer entity.Side) {
	g.Score.Add(scorer)
	g.lastWinner = scorer
	g.hasLastWinner = true
	g.Ball.CenterAt(g.Config.FieldCenter())

	g.EventBus.Publish(event.NewScoreEvent(g, scorer, g.Score.Left, g.Score.Right))

	if g.Score.Get(scorer) >= g.Config.WinScore {
		g.matchWinner = scorer
		g.transition(PhaseGameOver)
		g.EventBus.Publish(event.NewGameEndedEvent(g, scorer))
		return
	}

	g.rallyWinner = scorer
	g.remaining = g.Config.PointPause
	g.transition(PhasePointScored)
}

// pause suspends the match back to Idle. Scores and the serve rotation
// are kept; Start resumes with a fresh countdown.
func (g *Game) pause() {
	g.Ball.CenterAt(g.Config.FieldCenter())
	g.transition(PhaseIdle)
}

// reset returns the match to its initial state from any phase
func (g *Game) reset() {
	g.Score.Reset()
	g.initEntities()
	g.opponent = ai.NewController(g.Config.AI, g.random)

	g.rallyWinner = 0
	g.matchWinner = 0
	g.lastWinner = 0
	g.hasLastWinner = false
	g.remaining = 0

	g.transition(PhaseIdle)
	g.EventBus.Publish(event.NewGameEvent(event.GameReset, g))
}

// transition moves the phase machine and announces the change
func (g *Game) transition(next Phase) {
	if next == g.phase {
		return
	}
	previous := g.phase
	g.phase = next
	g.EventBus.Publish(event.NewPhaseEvent(g, previous.String(), next.String()))
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Remaining returns the time left in the current pause, in seconds.
// It is meaningful in the Countdown and PointScored phases.
func (g *Game) Remaining() float64 {
	return g.remaining
}

// Winner returns the side that won the match. The second return is
// false until the game reaches GameOver.
func (g *Game) Winner() (entity.Side, bool) {
	return g.matchWinner, g.phase == PhaseGameOver
}

// Done reports whether an exit has been requested
func (g *Game) Done() bool {
	return g.done
}
