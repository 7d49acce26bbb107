// pkg/engine/config.go
package engine

import (
	"math"

	"github.com/opd-ai/go-pong/pkg/ai"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Config holds the gameplay tuning for a match. All distances are in
// world units, speeds in units per second, durations in seconds.
type Config struct {
	FieldWidth  float64
	FieldHeight float64

	PaddleWidth   float64
	PaddleHeight  float64
	PlayerSpeed   float64
	OpponentSpeed float64

	BallRadius    float64
	ServeSpeed    float64
	ServeAngleMax float64
	SpeedUpFactor float64
	MaxBallSpeed  float64
	SpinFactor    float64
	WallTolerance float64

	CountdownTime float64
	PointPause    float64

	WinScore         int
	DefaultServeSide entity.Side

	AI ai.Config
}

// DefaultConfig returns the standard match tuning
func DefaultConfig() *Config {
	return &Config{
		FieldWidth:       900,
		FieldHeight:      600,
		PaddleWidth:      15,
		PaddleHeight:     100,
		PlayerSpeed:      500,
		OpponentSpeed:    300,
		BallRadius:       10,
		ServeSpeed:       300,
		ServeAngleMax:    math.Pi / 6,
		SpeedUpFactor:    1.05,
		MaxBallSpeed:     650,
		SpinFactor:       2.0,
		WallTolerance:    1.0,
		CountdownTime:    3.0,
		PointPause:       3.0,
		WinScore:         3,
		DefaultServeSide: entity.Left,
		AI:               ai.DefaultConfig(),
	}
}

// Field returns the playing field bounds with the origin at the top-left
func (c *Config) Field() physics.Rect {
	return physics.Rect{X: 0, Y: 0, Width: c.FieldWidth, Height: c.FieldHeight}
}

// FieldCenter returns the midpoint of the playing field
func (c *Config) FieldCenter() physics.Vector2D {
	return physics.Vector2D{X: c.FieldWidth / 2, Y: c.FieldHeight / 2}
}
