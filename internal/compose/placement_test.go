package compose

import (
	"testing"
)

func TestResolvePlacementAutoCenter(t *testing.T) {
	master := Size{W: 200, H: 300}
	content := Size{W: 180, H: 280}

	p := ResolvePlacement(master, content, Auto, Auto)
	if p.X != 10 || p.Y != 10 {
		t.Errorf("ResolvePlacement auto = (%v, %v), want (10, 10)", p.X, p.Y)
	}
}

func TestResolvePlacementExplicit(t *testing.T) {
	tests := []struct {
		name            string
		master, content Size
		x, y            float64
		want            Point
	}{
		{"both explicit", Size{200, 300}, Size{180, 280}, 25, 30, Point{25, 30}},
		{"explicit ignores dimensions", Size{999, 999}, Size{1, 1}, 25, 30, Point{25, 30}},
		{"zero is explicit", Size{200, 300}, Size{180, 280}, 0, 0, Point{0, 0}},
		{"mixed auto x", Size{200, 300}, Size{180, 280}, -1, 40, Point{10, 40}},
		{"mixed auto y", Size{200, 300}, Size{180, 280}, 40, -1, Point{40, 10}},
		{"any negative is auto", Size{200, 300}, Size{180, 280}, -7.5, -0.1, Point{10, 10}},
	}

	for _, tt := range tests {
		got := ResolvePlacement(tt.master, tt.content, tt.x, tt.y)
		if got != tt.want {
			t.Errorf("%s: ResolvePlacement = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestResolvePlacementOffCanvas(t *testing.T) {
	// Content larger than the master centers to a negative offset; that is
	// permitted and clips visually rather than erroring.
	p := ResolvePlacement(Size{W: 100, H: 100}, Size{W: 140, H: 160}, Auto, Auto)
	if p.X != -20 || p.Y != -30 {
		t.Errorf("ResolvePlacement oversized = (%v, %v), want (-20, -30)", p.X, p.Y)
	}

	// Explicit placement past the canvas edge is likewise permitted.
	p = ResolvePlacement(Size{W: 100, H: 100}, Size{W: 50, H: 50}, 90, 95)
	if p.X != 90 || p.Y != 95 {
		t.Errorf("ResolvePlacement off-canvas = (%v, %v), want (90, 95)", p.X, p.Y)
	}
}
