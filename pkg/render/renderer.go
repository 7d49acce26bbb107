// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Renderer is the drawing surface a frontend provides. Frames arrive
// as Clear, a batch of draw calls, then Present.
type Renderer interface {
	Clear()
	DrawRect(pos, size physics.Vector2D, style Style)
	DrawText(text string, pos physics.Vector2D, scale float64, style Style)
	Present()
}

// RenderFrame replays a command batch onto a renderer
func RenderFrame(r Renderer, commands []Command) {
	r.Clear()
	for _, cmd := range commands {
		switch cmd.Kind {
		case KindRect:
			r.DrawRect(cmd.Pos, cmd.Size, cmd.Style)
		case KindText:
			r.DrawText(cmd.Text, cmd.Pos, cmd.Scale, cmd.Style)
		}
	}
	r.Present()
}

// NullRenderer discards every draw call, logging at debug level. It
// backs headless runs and keeps the draw path exercised in tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// DrawRect implements Renderer
func (d *NullRenderer) DrawRect(pos, size physics.Vector2D, style Style) {
	ctx := context.Background()
	d.logger.Debug(ctx, "DrawRect called",
		"x", pos.X,
		"y", pos.Y,
		"width", size.X,
		"height", size.Y,
		"style", int(style),
	)
}

// DrawText implements Renderer
func (d *NullRenderer) DrawText(text string, pos physics.Vector2D, scale float64, style Style) {
	ctx := context.Background()
	d.logger.Debug(ctx, "DrawText called",
		"text", text,
		"x", pos.X,
		"y", pos.Y,
		"scale", scale,
	)
}

// Present implements Renderer
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}
