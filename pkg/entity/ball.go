// pkg/entity/ball.go
package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/physics"
)

// Ball represents the game ball. Position is the center of the ball.
type Ball struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// NewBall creates a stationary ball centered at the given position
func NewBall(center physics.Vector2D, radius float64) *Ball {
	return &Ball{
		Position: center,
		Radius:   radius,
	}
}

// Advance moves the ball along its velocity for one time step
func (b *Ball) Advance(deltaTime float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
}

// CenterAt parks the ball at the given position with zero velocity
func (b *Ball) CenterAt(center physics.Vector2D) {
	b.Position = center
	b.Velocity = physics.Vector2D{}
}

// Serve places the ball at center and launches it toward the given side.
// The serve speed is exact; the vertical angle is drawn uniformly from
// [-maxAngle, maxAngle] using the supplied random source.
func (b *Ball) Serve(center physics.Vector2D, toward Side, speed, maxAngle float64, rng *rand.Rand) {
	b.Position = center

	angle := (rng.Float64()*2 - 1) * maxAngle
	velocity := physics.FromAngle(angle, speed)
	if toward == Left {
		velocity.X = -velocity.X
	}
	b.Velocity = velocity
}

// Bounds returns the ball's axis-aligned bounding box
func (b *Ball) Bounds() physics.Rect {
	return physics.Rect{
		X:      b.Position.X - b.Radius,
		Y:      b.Position.Y - b.Radius,
		Width:  b.Radius * 2,
		Height: b.Radius * 2,
	}
}

// Speed returns the magnitude of the ball's velocity
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}
