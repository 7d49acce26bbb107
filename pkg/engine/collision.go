// pkg/engine/collision.go
package engine

import (
	"math"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
)

// resolveCollisions applies one tick of collision handling after the
// ball has moved: paddles first, then the walls, then the goal lines.
// A paddle hit ends the pass, so when the ball reaches a corner the
// paddle response wins over the wall bounce for that tick.
func (g *Game) resolveCollisions() {
	if g.resolvePaddleHit() {
		return
	}
	g.resolveWallBounce()
	g.resolveScoring()
}

// resolvePaddleHit checks the ball's bounding box against both paddles
// and applies the bounce for the first overlap found. At most one
// paddle interaction happens per tick.
func (g *Game) resolvePaddleHit() bool {
	for _, paddle := range []*entity.Paddle{g.LeftPaddle, g.RightPaddle} {
		if !g.Ball.Bounds().Intersects(paddle.Bounds()) {
			continue
		}
		g.bounceOffPaddle(paddle)
		return true
	}
	return false
}

// bounceOffPaddle reflects the ball off a paddle face: the horizontal
// velocity flips away from the paddle, the ball is pushed flush with
// the face so it cannot re-collide next tick, the contact offset adds
// spin, and the ball speeds up toward the cap.
func (g *Game) bounceOffPaddle(paddle *entity.Paddle) {
	ball := g.Ball

	if paddle.Side == entity.Left {
		ball.Velocity.X = math.Abs(ball.Velocity.X)
		ball.Position.X = paddle.Bounds().Right() + ball.Radius
	} else {
		ball.Velocity.X = -math.Abs(ball.Velocity.X)
		ball.Position.X = paddle.Bounds().X - ball.Radius
	}

	offset := ball.Position.Y - paddle.CenterY()
	ball.Velocity.Y += offset * g.Config.SpinFactor

	speed := ball.Speed() * g.Config.SpeedUpFactor
	ball.Velocity = ball.Velocity.Normalize().Scale(speed).Limit(g.Config.MaxBallSpeed)

	g.EventBus.Publish(event.NewPaddleHitEvent(g, paddle.Side, ball.Speed()))
}

// resolveWallBounce reflects the ball off the top and bottom field
// edges. The tolerance widens the test slightly so grazing contact
// still registers; the position clamp keeps the ball inside the field
// even after a deep overlap.
func (g *Game) resolveWallBounce() {
	ball := g.Ball
	tolerance := g.Config.WallTolerance

	if ball.Position.Y-ball.Radius <= tolerance {
		ball.Velocity.Y = math.Abs(ball.Velocity.Y)
		ball.Position.Y = ball.Radius + tolerance
		g.EventBus.Publish(event.NewWallHitEvent(g, true))
	} else if ball.Position.Y+ball.Radius >= g.Config.FieldHeight-tolerance {
		ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
		ball.Position.Y = g.Config.FieldHeight - ball.Radius - tolerance
		g.EventBus.Publish(event.NewWallHitEvent(g, false))
	}
}

// resolveScoring awards a point when the ball reaches a goal line.
// Scoring re-centers the ball, so at most one point is credited per
// crossing.
func (g *Game) resolveScoring() {
	ball := g.Ball

	if ball.Position.X-ball.Radius <= 0 {
		g.scorePoint(entity.Right)
	} else if ball.Position.X+ball.Radius >= g.Config.FieldWidth {
		g.scorePoint(entity.Left)
	}
}
