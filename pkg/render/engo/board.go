// pkg/render/engo/board.go
package engo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Field layout in world units. Digits follow the classic seven-segment
// proportions; the countdown digit is larger than the score tallies.
const (
	midlineWidth = 4.0
	midlineDash  = 20.0

	scoreDigitWidth  = 40.0
	scoreDigitHeight = 70.0
	scoreDigitStroke = 8.0
	scoreOffsetY     = 30.0

	countdownWidth  = 60.0
	countdownHeight = 100.0
	countdownStroke = 12.0
)

var (
	colorForeground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colorAccent     = color.RGBA{R: 255, G: 214, B: 64, A: 255}
	colorMidline    = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// rectEntity pairs an ECS identity with the components the render
// system needs to draw a solid rectangle.
type rectEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// digit is a seven-segment display assembled from rectangle entities.
type digit struct {
	segments [7]*rectEntity
}

// set lights the segments for value, or hides the whole digit.
func (d *digit) set(value int, visible bool, col color.Color) {
	if value > 9 {
		value = 9
	}
	mask := uint8(0)
	if visible && value >= 0 {
		mask = digitSegments[value]
	}
	for i, segment := range d.segments {
		segment.RenderComponent.Hidden = mask&(1<<uint(i)) == 0
		segment.RenderComponent.Color = col
	}
}

// Board owns every drawable entity on the playing field and keeps them
// in step with simulation snapshots.
type Board struct {
	render *common.RenderSystem
	field  physics.Rect
	scaleX float64
	scaleY float64

	leftPaddle  *rectEntity
	rightPaddle *rectEntity
	ball        *rectEntity
	midline     []*rectEntity
	leftScore   *digit
	rightScore  *digit
	countdown   *digit
}

// NewBoard creates the midline decoration plus one entity per moving
// piece, scaled from field units to a window of the given size.
func NewBoard(render *common.RenderSystem, field physics.Rect, windowWidth, windowHeight float64) *Board {
	board := &Board{
		render: render,
		field:  field,
		scaleX: windowWidth / field.Width,
		scaleY: windowHeight / field.Height,
	}
	board.addMidline()
	board.leftPaddle = board.addRect(physics.Rect{}, colorForeground)
	board.rightPaddle = board.addRect(physics.Rect{}, colorForeground)
	board.ball = board.addRect(physics.Rect{}, colorForeground)
	board.leftScore = board.newDigit(field.Width/4-scoreDigitWidth/2, scoreOffsetY,
		scoreDigitWidth, scoreDigitHeight, scoreDigitStroke)
	board.rightScore = board.newDigit(3*field.Width/4-scoreDigitWidth/2, scoreOffsetY,
		scoreDigitWidth, scoreDigitHeight, scoreDigitStroke)
	board.countdown = board.newDigit(field.Width/2-countdownWidth/2, field.Height/2-countdownHeight/2,
		countdownWidth, countdownHeight, countdownStroke)
	return board
}

// Sync repositions, recolors, and hides entities to match the snapshot.
func (b *Board) Sync(snap engine.Snapshot) {
	b.place(b.leftPaddle, snap.Left.Bounds)
	b.place(b.rightPaddle, snap.Right.Bounds)

	b.place(b.ball, ballBounds(snap.Ball))
	b.ball.RenderComponent.Hidden = !snap.Ball.Visible

	leftColor, rightColor := color.Color(colorForeground), color.Color(colorForeground)
	if snap.Score.FlashActive {
		if snap.Score.Flash == entity.Left {
			leftColor = colorAccent
		} else {
			rightColor = colorAccent
		}
	}
	b.leftScore.set(snap.Score.Left, true, leftColor)
	b.rightScore.set(snap.Score.Right, true, rightColor)

	inWait := snap.Phase == engine.PhaseCountdown || snap.Phase == engine.PhasePointScored
	b.countdown.set(countdownValue(snap.Remaining), inWait, colorAccent)
}

// addRect registers a rectangle entity with the render system.
func (b *Board) addRect(bounds physics.Rect, col color.Color) *rectEntity {
	e := &rectEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: common.Rectangle{},
		Color:    col,
	}
	e.SpaceComponent = b.space(bounds)
	b.render.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	return e
}

// addMidline lays a dashed vertical line down the center of the field.
func (b *Board) addMidline() {
	x := b.field.Width/2 - midlineWidth/2
	for y := 0.0; y < b.field.Height; y += 2 * midlineDash {
		dash := b.addRect(physics.Rect{X: x, Y: y, Width: midlineWidth, Height: midlineDash}, colorMidline)
		b.midline = append(b.midline, dash)
	}
}

// newDigit builds a hidden seven-segment digit at the given origin.
func (b *Board) newDigit(x, y, w, h, t float64) *digit {
	d := &digit{}
	for i, seg := range segmentRects(w, h, t) {
		bounds := physics.Rect{X: x + seg.X, Y: y + seg.Y, Width: seg.Width, Height: seg.Height}
		d.segments[i] = b.addRect(bounds, colorForeground)
		d.segments[i].RenderComponent.Hidden = true
	}
	return d
}

// place maps a field-space rectangle onto the entity's screen space.
func (b *Board) place(e *rectEntity, bounds physics.Rect) {
	e.SpaceComponent = b.space(bounds)
}

func (b *Board) space(bounds physics.Rect) common.SpaceComponent {
	return common.SpaceComponent{
		Position: engo.Point{
			X: float32(bounds.X * b.scaleX),
			Y: float32(bounds.Y * b.scaleY),
		},
		Width:  float32(bounds.Width * b.scaleX),
		Height: float32(bounds.Height * b.scaleY),
	}
}

func ballBounds(ball engine.BallState) physics.Rect {
	return physics.Rect{
		X:      ball.Position.X - ball.Radius,
		Y:      ball.Position.Y - ball.Radius,
		Width:  2 * ball.Radius,
		Height: 2 * ball.Radius,
	}
}

// countdownValue converts remaining seconds into the digit to show. The
// display never drops to zero; serving replaces it instead.
func countdownValue(remaining float64) int {
	value := int(math.Ceil(remaining))
	if value < 1 {
		value = 1
	}
	return value
}

// bannerTitle composes the window title for the current phase. Titles
// stand in for on-field text, which would need a bundled font.
func bannerTitle(snap engine.Snapshot) string {
	switch snap.Phase {
	case engine.PhaseIdle:
		if snap.Score.Left+snap.Score.Right > 0 {
			return "Pong - press S to resume"
		}
		return "Pong - press S to start, first to 3 points wins"
	case engine.PhasePointScored:
		return fmt.Sprintf("Pong - point to %s", snap.Score.Flash)
	case engine.PhaseGameOver:
		if snap.HasWinner {
			return fmt.Sprintf("Pong - %s wins! press R to restart", snap.Winner)
		}
		return "Pong - game over"
	default:
		return "Pong"
	}
}
