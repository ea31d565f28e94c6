package board

import (
	"math"
	"testing"
)

func TestCamera_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		cam   Camera
		world Point
	}{
		{"identity", NewCamera(), Pt(37, -12)},
		{"panned", Camera{X: 100, Y: -50, Zoom: 1}, Pt(0, 0)},
		{"zoomed in", Camera{X: 10, Y: 20, Zoom: 2.5}, Pt(-3.25, 41.5)},
		{"zoomed out", Camera{X: -400, Y: 900, Zoom: 0.25}, Pt(123.5, -77.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cam.ScreenToWorld(tt.cam.WorldToScreen(tt.world))
			if math.Abs(got.X-tt.world.X) > 1e-9 || math.Abs(got.Y-tt.world.Y) > 1e-9 {
				t.Errorf("round trip = %v, want %v", got, tt.world)
			}
		})
	}
}

func TestCamera_WorldToScreen(t *testing.T) {
	cam := Camera{X: 100, Y: 50, Zoom: 2}
	got := cam.WorldToScreen(Pt(110, 60))
	if got.X != 20 || got.Y != 20 {
		t.Errorf("WorldToScreen = %v, want (20, 20)", got)
	}
}

func TestCamera_Pan(t *testing.T) {
	cam := Camera{X: 0, Y: 0, Zoom: 2}
	cam = cam.Pan(100, -50)

	// A 100px screen drag at zoom 2 covers 50 world units.
	if cam.X != -50 || cam.Y != 25 {
		t.Errorf("after Pan: (%v, %v), want (-50, 25)", cam.X, cam.Y)
	}
}

func TestCamera_ZoomAt_FixedPoint(t *testing.T) {
	tests := []struct {
		name   string
		cam    Camera
		anchor Point
		factor float64
	}{
		{"zoom in at center", Camera{X: 0, Y: 0, Zoom: 1}, Pt(640, 400), 2},
		{"zoom out offset", Camera{X: 250, Y: -30, Zoom: 1.5}, Pt(17, 903), 0.5},
		{"tiny step", Camera{X: -5, Y: 12, Zoom: 0.8}, Pt(200, 100), 1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.cam.ScreenToWorld(tt.anchor)
			after := tt.cam.ZoomAt(tt.factor, tt.anchor)

			got := after.ScreenToWorld(tt.anchor)
			if math.Abs(before.X-got.X) > 1e-9 || math.Abs(before.Y-got.Y) > 1e-9 {
				t.Errorf("anchor world point moved: %v -> %v", before, got)
			}
			want := tt.cam.Zoom * tt.factor
			if math.Abs(after.Zoom-want) > 1e-12 {
				t.Errorf("Zoom = %v, want %v", after.Zoom, want)
			}
		})
	}
}

func TestCamera_ZoomAt_Clamps(t *testing.T) {
	cam := NewCamera()
	cam = cam.ZoomAt(1000, Pt(0, 0))
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", cam.Zoom, MaxZoom)
	}
	cam = cam.ZoomAt(1e-6, Pt(0, 0))
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", cam.Zoom, MinZoom)
	}
}

func TestCamera_VisibleWorld(t *testing.T) {
	cam := Camera{X: 100, Y: 200, Zoom: 2}
	got := cam.VisibleWorld(800, 600)
	want := R(100, 200, 400, 300)
	if got != want {
		t.Errorf("VisibleWorld = %+v, want %+v", got, want)
	}
}
