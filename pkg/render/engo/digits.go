// pkg/render/engo/digits.go
package engo

import (
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Segment bit flags for a seven-segment digit, in drawing order.
const (
	segTop = 1 << iota
	segTopLeft
	segTopRight
	segMiddle
	segBottomLeft
	segBottomRight
	segBottom
)

// digitSegments maps the digits 0-9 onto their lit segments.
var digitSegments = [10]uint8{
	segTop | segTopLeft | segTopRight | segBottomLeft | segBottomRight | segBottom,
	segTopRight | segBottomRight,
	segTop | segTopRight | segMiddle | segBottomLeft | segBottom,
	segTop | segTopRight | segMiddle | segBottomRight | segBottom,
	segTopLeft | segTopRight | segMiddle | segBottomRight,
	segTop | segTopLeft | segMiddle | segBottomRight | segBottom,
	segTop | segTopLeft | segMiddle | segBottomLeft | segBottomRight | segBottom,
	segTop | segTopRight | segBottomRight,
	segTop | segTopLeft | segTopRight | segMiddle | segBottomLeft | segBottomRight | segBottom,
	segTop | segTopLeft | segTopRight | segMiddle | segBottomRight | segBottom,
}

// segmentRects returns the seven segment rectangles for a digit box of
// the given width and height with stroke thickness t, relative to the
// box's top-left corner. Order matches the segment bit flags.
func segmentRects(w, h, t float64) [7]physics.Rect {
	return [7]physics.Rect{
		{X: t, Y: 0, Width: w - 2*t, Height: t},
		{X: 0, Y: t, Width: t, Height: h/2 - t},
		{X: w - t, Y: t, Width: t, Height: h/2 - t},
		{X: t, Y: h/2 - t/2, Width: w - 2*t, Height: t},
		{X: 0, Y: h/2 + t/2, Width: t, Height: h/2 - t},
		{X: w - t, Y: h/2 + t/2, Width: t, Height: h/2 - t},
		{X: t, Y: h - t, Width: w - 2*t, Height: t},
	}
}
