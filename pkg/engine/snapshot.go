// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Snapshot is a value copy of everything a frontend needs to draw one
// frame. Frontends never touch the live Game; the loop takes a
// snapshot on the simulation goroutine and hands it over.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Remaining float64
	Field     physics.Rect

	Ball  BallState
	Left  PaddleState
	Right PaddleState
	Score ScoreState

	Winner    entity.Side
	HasWinner bool
}

// BallState is the drawable state of the ball. Visible is false during
// serve pauses and after the match ends, when the ball holds hidden at
// the field center.
type BallState struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
	Visible  bool
}

// PaddleState is the drawable state of one paddle
type PaddleState struct {
	Side   entity.Side
	Bounds physics.Rect
}

// ScoreState carries both scores plus which side's tally should flash
// during the between-point pause
type ScoreState struct {
	Left  int
	Right int

	Flash       entity.Side
	FlashActive bool
}

// Snapshot copies the current game state for rendering
func (g *Game) Snapshot() Snapshot {
	winner, hasWinner := g.Winner()

	return Snapshot{
		Tick:      g.CurrentTick,
		Phase:     g.phase,
		Remaining: g.remaining,
		Field:     g.Config.Field(),
		Ball: BallState{
			Position: g.Ball.Position,
			Velocity: g.Ball.Velocity,
			Radius:   g.Ball.Radius,
			Visible:  g.phase == PhaseIdle || g.phase == PhasePlaying,
		},
		Left: PaddleState{
			Side:   entity.Left,
			Bounds: g.LeftPaddle.Bounds(),
		},
		Right: PaddleState{
			Side:   entity.Right,
			Bounds: g.RightPaddle.Bounds(),
		},
		Score: ScoreState{
			Left:        g.Score.Left,
			Right:       g.Score.Right,
			Flash:       g.rallyWinner,
			FlashActive: g.phase == PhasePointScored,
		},
		Winner:    winner,
		HasWinner: hasWinner,
	}
}
