// pkg/render/frame.go
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Frame layout tuning, in field units.
const (
	midlineWidth = 4.0
	midlineDash  = 20.0

	scoreScale   = 4.0
	scoreOffsetY = 50.0

	countdownScale = 8.0
	titleScale     = 10.0
	bannerScale    = 4.0
	helpScale      = 2.0
)

// BuildFrame translates a simulation snapshot into an ordered batch of
// draw commands. Later commands paint over earlier ones, so the board
// goes first and phase overlays go last.
func BuildFrame(snap engine.Snapshot) []Command {
	commands := make([]Command, 0, 32)

	commands = appendMidline(commands, snap)
	commands = append(commands,
		NewRect(snap.Left.Bounds, StyleNormal),
		NewRect(snap.Right.Bounds, StyleNormal),
	)
	commands = appendBall(commands, snap)
	commands = appendScore(commands, snap)
	commands = appendOverlay(commands, snap)

	return commands
}

// appendMidline draws the dashed center line
func appendMidline(commands []Command, snap engine.Snapshot) []Command {
	x := snap.Field.Center().X - midlineWidth/2
	for y := 0.0; y < snap.Field.Height; y += 2 * midlineDash {
		dash := physics.Rect{X: x, Y: y, Width: midlineWidth, Height: midlineDash}
		commands = append(commands, NewRect(dash, StyleNormal))
	}
	return commands
}

// appendBall draws the ball's bounding box when it is in play
func appendBall(commands []Command, snap engine.Snapshot) []Command {
	if !snap.Ball.Visible {
		return commands
	}
	bounds := physics.Rect{
		X:      snap.Ball.Position.X - snap.Ball.Radius,
		Y:      snap.Ball.Position.Y - snap.Ball.Radius,
		Width:  2 * snap.Ball.Radius,
		Height: 2 * snap.Ball.Radius,
	}
	return append(commands, NewRect(bounds, StyleNormal))
}

// appendScore draws both tallies in the top quarters. The side that
// just scored is accented for the length of the between-point pause.
func appendScore(commands []Command, snap engine.Snapshot) []Command {
	leftStyle, rightStyle := StyleNormal, StyleNormal
	if snap.Score.FlashActive {
		if snap.Score.Flash == entity.Left {
			leftStyle = StyleAccent
		} else {
			rightStyle = StyleAccent
		}
	}

	return append(commands,
		NewText(strconv.Itoa(snap.Score.Left),
			physics.Vector2D{X: snap.Field.Width / 4, Y: scoreOffsetY},
			scoreScale, leftStyle),
		NewText(strconv.Itoa(snap.Score.Right),
			physics.Vector2D{X: snap.Field.Width * 3 / 4, Y: scoreOffsetY},
			scoreScale, rightStyle),
	)
}

// appendOverlay adds the phase-specific text on top of the board
func appendOverlay(commands []Command, snap engine.Snapshot) []Command {
	center := snap.Field.Center()
	bannerPos := physics.Vector2D{X: center.X, Y: snap.Field.Height / 3}
	helpPos := physics.Vector2D{X: center.X, Y: snap.Field.Height/3 + 70}

	switch snap.Phase {
	case engine.PhaseIdle:
		help := "press S to start"
		if snap.Score.Left+snap.Score.Right > 0 {
			help = "press S to resume"
		}
		commands = append(commands,
			NewText("PONG", bannerPos, titleScale, StyleNormal),
			NewText(help, helpPos, helpScale, StyleNormal),
			NewText("first to 3 points wins",
				physics.Vector2D{X: helpPos.X, Y: helpPos.Y + 30},
				helpScale, StyleNormal),
		)

	case engine.PhaseCountdown:
		commands = append(commands, NewText(countdownDigit(snap.Remaining),
			center, countdownScale, StyleAccent))

	case engine.PhasePointScored:
		commands = append(commands,
			NewText(fmt.Sprintf("point to %s", snap.Score.Flash),
				bannerPos, bannerScale, StyleNormal),
			NewText(countdownDigit(snap.Remaining), center, countdownScale, StyleAccent),
		)

	case engine.PhaseGameOver:
		commands = append(commands,
			NewText(fmt.Sprintf("%s wins!", snap.Winner), bannerPos, bannerScale, StyleAccent),
			NewText("press R to restart, E to exit", helpPos, helpScale, StyleNormal),
		)
	}

	return commands
}

// countdownDigit renders the remaining pause time as a 3-2-1 digit
func countdownDigit(remaining float64) string {
	digit := int(math.Ceil(remaining))
	if digit < 1 {
		digit = 1
	}
	return strconv.Itoa(digit)
}
