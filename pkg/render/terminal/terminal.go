// pkg/render/terminal/terminal.go
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/physics"
	"github.com/opd-ai/go-pong/pkg/render"
)

// NewScreen creates and initializes a tcell screen for the game. The
// caller owns the screen and must call Fini on shutdown.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, logging.WrapError(err, "creating terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, logging.WrapError(err, "initializing terminal screen")
	}
	screen.HideCursor()
	return screen, nil
}

// Renderer draws the game into terminal cells. The playing field is
// scaled to whatever size the terminal currently has, so resizing just
// changes the resolution of the next frame.
type Renderer struct {
	screen tcell.Screen
	field  physics.Rect

	// Cell dimensions, refreshed on every Clear.
	width  int
	height int
}

// NewRenderer creates a renderer on an initialized screen
func NewRenderer(screen tcell.Screen, field physics.Rect) *Renderer {
	r := &Renderer{
		screen: screen,
		field:  field,
	}
	r.width, r.height = screen.Size()
	return r
}

// Clear implements render.Renderer
func (r *Renderer) Clear() {
	r.screen.Clear()
	r.width, r.height = r.screen.Size()
}

// Present implements render.Renderer
func (r *Renderer) Present() {
	r.screen.Show()
}

// DrawRect implements render.Renderer by filling the covered cells
// with block runes
func (r *Renderer) DrawRect(pos, size physics.Vector2D, style render.Style) {
	x0, y0 := r.cell(pos)
	x1, y1 := r.cell(pos.Add(size))

	// A rect never vanishes entirely: thin paddles and the ball stay at
	// least one cell wide.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	st := r.style(style)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.setContent(x, y, '█', st)
		}
	}
}

// DrawText implements render.Renderer. Text is anchored at its center;
// the scale hint is ignored because terminal glyphs have one size.
func (r *Renderer) DrawText(text string, pos physics.Vector2D, scale float64, style render.Style) {
	cx, cy := r.cell(pos)
	x := cx - len(text)/2

	st := r.style(style)
	for i, ch := range text {
		r.setContent(x+i, cy, ch, st)
	}
}

// cell maps field coordinates to cell coordinates
func (r *Renderer) cell(pos physics.Vector2D) (int, int) {
	x := int(pos.X / r.field.Width * float64(r.width))
	y := int(pos.Y / r.field.Height * float64(r.height))
	return x, y
}

// setContent writes one cell, dropping anything off screen
func (r *Renderer) setContent(x, y int, ch rune, st tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

// style maps draw styles onto terminal attributes
func (r *Renderer) style(style render.Style) tcell.Style {
	switch style {
	case render.StyleAccent:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
