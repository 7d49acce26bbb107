// pkg/render/engo/digits_test.go
package engo

import (
	"math/bits"
	"testing"
)

func TestDigitSegments_LitCountsMatchSevenSegmentConventions(t *testing.T) {
	litCounts := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}

	for value, mask := range digitSegments {
		if got := bits.OnesCount8(mask); got != litCounts[value] {
			t.Errorf("digit %d lights %d segments, want %d", value, got, litCounts[value])
		}
	}
}

func TestDigitSegments_AllDigitsAreDistinct(t *testing.T) {
	seen := make(map[uint8]int)
	for value, mask := range digitSegments {
		if prev, ok := seen[mask]; ok {
			t.Errorf("digits %d and %d share segment mask %07b", prev, value, mask)
		}
		seen[mask] = value
	}
}

func TestDigitSegments_SpotChecks(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		segment uint8
		lit     bool
	}{
		{"zero_has_no_middle_bar", 0, segMiddle, false},
		{"one_keeps_top_right", 1, segTopRight, true},
		{"one_drops_left_column", 1, segTopLeft, false},
		{"four_has_no_top_bar", 4, segTop, false},
		{"four_has_middle_bar", 4, segMiddle, true},
		{"seven_has_top_bar", 7, segTop, true},
		{"seven_has_no_bottom_bar", 7, segBottom, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := digitSegments[tt.value]&tt.segment != 0
			if lit != tt.lit {
				t.Errorf("digit %d segment %07b lit = %v, want %v", tt.value, tt.segment, lit, tt.lit)
			}
		})
	}
}

func TestSegmentRects_GeometryStaysInsideDigitBox(t *testing.T) {
	const w, h, stroke = 40.0, 70.0, 8.0

	rects := segmentRects(w, h, stroke)
	for i, r := range rects {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > w || r.Y+r.Height > h {
			t.Errorf("segment %d rect %+v escapes the %gx%g box", i, r, w, h)
		}
		if r.Width <= 0 || r.Height <= 0 {
			t.Errorf("segment %d rect %+v has no area", i, r)
		}
	}
}

func TestSegmentRects_PlacesBarsAndColumns(t *testing.T) {
	const w, h, stroke = 40.0, 70.0, 8.0

	rects := segmentRects(w, h, stroke)

	top := rects[0]
	if top.Y != 0 || top.X != stroke || top.Width != w-2*stroke || top.Height != stroke {
		t.Errorf("top bar = %+v, want horizontal bar at the box top", top)
	}

	middle := rects[3]
	if middle.Y != h/2-stroke/2 {
		t.Errorf("middle bar y = %v, want %v", middle.Y, h/2-stroke/2)
	}

	bottom := rects[6]
	if bottom.Y != h-stroke {
		t.Errorf("bottom bar y = %v, want %v", bottom.Y, h-stroke)
	}

	topLeft, bottomRight := rects[1], rects[5]
	if topLeft.X != 0 || topLeft.Height != h/2-stroke {
		t.Errorf("top-left column = %+v, want half-height column on the left edge", topLeft)
	}
	if bottomRight.X != w-stroke || bottomRight.Y != h/2+stroke/2 {
		t.Errorf("bottom-right column = %+v, want lower half of the right edge", bottomRight)
	}
}
