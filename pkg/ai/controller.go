// pkg/ai/controller.go
package ai

import (
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/entity"
)

// Move is the controller's movement decision for one tick
type Move int

const (
	Hold Move = iota
	Up
	Down
)

// Direction converts the move into a paddle direction scalar
func (m Move) Direction() float64 {
	switch m {
	case Up:
		return -1
	case Down:
		return 1
	default:
		return 0
	}
}

// Config tunes the opponent's reaction behavior
type Config struct {
	ReactionTime      float64 // seconds before reacting to a direction change
	Deadband          float64 // tolerance around the target, prevents jitter
	AimErrorMax       float64 // bound for the per-rally tracking error
	RecenterTolerance float64 // how close to the middle counts as recentered
}

// DefaultConfig returns the tuning used by the stock opponent
func DefaultConfig() Config {
	return Config{
		ReactionTime:      0.25,
		Deadband:          10,
		AimErrorMax:       40,
		RecenterTolerance: 4,
	}
}

// Controller steers a paddle by tracking the ball. All randomness comes
// from the injected source, so a controller with a fixed seed plays the
// same game every time.
type Controller struct {
	config Config
	random *rand.Rand

	reactionTimer float64
	aimOffset     float64
	movingRight   bool
	tracked       bool
}

// NewController creates a controller with the given tuning and random source
func NewController(config Config, random *rand.Rand) *Controller {
	return &Controller{
		config: config,
		random: random,
	}
}

// BeginRally resamples the per-rally aim error and arms the reaction timer.
// The engine calls this on every serve.
func (c *Controller) BeginRally() {
	c.aimOffset = (c.random.Float64()*2 - 1) * c.config.AimErrorMax
	c.reactionTimer = c.config.ReactionTime
	c.tracked = false
}

// Decide returns the controller's movement for this tick. The reaction
// timer reloads whenever the ball's horizontal direction flips, so the
// opponent is blind for a moment after every return.
func (c *Controller) Decide(deltaTime float64, ball *entity.Ball, paddle *entity.Paddle) Move {
	if ball.Velocity.X != 0 {
		movingRight := ball.Velocity.X > 0
		if c.tracked && movingRight != c.movingRight {
			c.reactionTimer = c.config.ReactionTime
		}
		c.movingRight = movingRight
		c.tracked = true
	}

	if c.reactionTimer > 0 {
		c.reactionTimer -= deltaTime
		return Hold
	}

	if !c.approaching(ball, paddle) {
		return Hold
	}

	target := c.intercept(ball, paddle) + c.aimOffset
	return c.moveToward(target, paddle.CenterY(), c.config.Deadband)
}

// Recenter drifts the paddle back toward the vertical middle of the field.
// Used between rallies while the ball is parked.
func (c *Controller) Recenter(paddle *entity.Paddle, fieldHeight float64) Move {
	return c.moveToward(fieldHeight/2, paddle.CenterY(), c.config.RecenterTolerance)
}

func (c *Controller) moveToward(target, current, tolerance float64) Move {
	diff := target - current
	switch {
	case diff < -tolerance:
		return Up
	case diff > tolerance:
		return Down
	default:
		return Hold
	}
}

// approaching reports whether the ball is moving toward the paddle's side
func (c *Controller) approaching(ball *entity.Ball, paddle *entity.Paddle) bool {
	if paddle.Side == entity.Right {
		return ball.Velocity.X > 0
	}
	return ball.Velocity.X < 0
}

// intercept extrapolates the ball's y coordinate to the paddle's face
// using the current velocity. Only valid while the ball approaches.
func (c *Controller) intercept(ball *entity.Ball, paddle *entity.Paddle) float64 {
	faceX := paddle.Position.X + paddle.Width
	if paddle.Side == entity.Right {
		faceX = paddle.Position.X
	}
	t := (faceX - ball.Position.X) / ball.Velocity.X
	return ball.Position.Y + ball.Velocity.Y*t
}
