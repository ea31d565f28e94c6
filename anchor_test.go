package board

import "testing"

func TestAnchorPoint(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 40, H: 60}
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorTop, Point{X: 120, Y: 200}},
		{AnchorRight, Point{X: 140, Y: 230}},
		{AnchorBottom, Point{X: 120, Y: 260}},
		{AnchorLeft, Point{X: 100, Y: 230}},
		{AnchorCenter, Point{X: 120, Y: 230}},
		{Anchor("corner"), Point{X: 120, Y: 230}}, // unknown resolves to center
	}
	for _, tt := range tests {
		if got := AnchorPoint(r, tt.anchor); got != tt.want {
			t.Errorf("AnchorPoint(%q) = %v, want %v", tt.anchor, got, tt.want)
		}
	}
}

func TestNearestAnchor(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		name string
		p    Point
		want Anchor
	}{
		{"above top edge", Point{X: 50, Y: -5}, AnchorTop},
		{"right of right edge", Point{X: 110, Y: 50}, AnchorRight},
		{"below bottom edge", Point{X: 50, Y: 108}, AnchorBottom},
		{"left of left edge", Point{X: -4, Y: 50}, AnchorLeft},
		{"dead center", Point{X: 50, Y: 50}, AnchorCenter},
		{"near center", Point{X: 55, Y: 48}, AnchorCenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestAnchor(r, tt.p); got != tt.want {
				t.Errorf("NearestAnchor(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestAnchor_Valid(t *testing.T) {
	for _, a := range EdgeAnchors() {
		if !a.Valid() {
			t.Errorf("%q is not valid", a)
		}
	}
	if !AnchorCenter.Valid() {
		t.Error("center is not valid")
	}
	if Anchor("corner").Valid() {
		t.Error("unknown anchor reported valid")
	}
	if Anchor("").Valid() {
		t.Error("empty anchor reported valid")
	}
}
