// pkg/render/command.go
package render

import (
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Kind discriminates draw commands
type Kind int

const (
	KindRect Kind = iota
	KindText
)

// Style selects how a command is painted. Frontends map styles to
// whatever their medium offers: colors, terminal attributes, blink.
type Style int

const (
	// StyleNormal is the default foreground on the field background.
	StyleNormal Style = iota
	// StyleAccent highlights transient elements: the countdown digits
	// and the flashing tally of the side that just scored.
	StyleAccent
)

// Command is one frontend-agnostic draw instruction in field
// coordinates. Rect commands use Pos as the top-left corner and Size
// as extent; Text commands anchor Pos at the center of the rendered
// string.
type Command struct {
	Kind  Kind
	Pos   physics.Vector2D
	Size  physics.Vector2D
	Text  string
	Scale float64
	Style Style
}

// NewRect creates a rectangle draw command
func NewRect(bounds physics.Rect, style Style) Command {
	return Command{
		Kind:  KindRect,
		Pos:   physics.Vector2D{X: bounds.X, Y: bounds.Y},
		Size:  physics.Vector2D{X: bounds.Width, Y: bounds.Height},
		Style: style,
	}
}

// NewText creates a text draw command centered on pos
func NewText(text string, pos physics.Vector2D, scale float64, style Style) Command {
	return Command{
		Kind:  KindText,
		Pos:   pos,
		Text:  text,
		Scale: scale,
		Style: style,
	}
}
