// pkg/entity/paddle.go
package entity

import (
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Paddle represents one player's paddle. Position is the top-left corner.
type Paddle struct {
	Position physics.Vector2D
	Width    float64
	Height   float64
	Speed    float64
	Side     Side
}

// NewPaddle creates a paddle for the given side
func NewPaddle(side Side, position physics.Vector2D, width, height, speed float64) *Paddle {
	return &Paddle{
		Position: position,
		Width:    width,
		Height:   height,
		Speed:    speed,
		Side:     side,
	}
}

// MoveBy moves the paddle vertically by direction * speed * deltaTime and
// clamps it to the field. Direction is -1 (up), 0 (hold) or +1 (down);
// fractional values scale the movement.
func (p *Paddle) MoveBy(direction, deltaTime, fieldHeight float64) {
	p.Position.Y = physics.Clamp(
		p.Position.Y+direction*p.Speed*deltaTime,
		0,
		fieldHeight-p.Height,
	)
}

// Bounds returns the paddle's rectangle
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{
		X:      p.Position.X,
		Y:      p.Position.Y,
		Width:  p.Width,
		Height: p.Height,
	}
}

// CenterY returns the y coordinate of the paddle's vertical center
func (p *Paddle) CenterY() float64 {
	return p.Position.Y + p.Height/2
}
