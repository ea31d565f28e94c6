package board

import "testing"

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"ordered corners", Pt(10, 20), Pt(40, 60), R(10, 20, 30, 40)},
		{"reversed corners", Pt(40, 60), Pt(10, 20), R(10, 20, 30, 40)},
		{"mixed corners", Pt(40, 20), Pt(10, 60), R(10, 20, 30, 40)},
		{"degenerate", Pt(5, 5), Pt(5, 5), R(5, 5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromPoints(tt.a, tt.b); got != tt.want {
				t.Errorf("RectFromPoints(%v, %v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := R(0, 0, 100, 50)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(50, 25), true},
		{"top-left corner", Pt(0, 0), true},
		{"bottom-right corner", Pt(100, 50), true},
		{"right edge", Pt(100, 25), true},
		{"just outside", Pt(100.001, 25), false},
		{"above", Pt(50, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", R(0, 0, 10, 10), R(5, 5, 10, 10), true},
		{"contained", R(0, 0, 100, 100), R(10, 10, 5, 5), true},
		{"touching edge", R(0, 0, 10, 10), R(10, 0, 10, 10), true},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), false},
		{"above", R(0, 0, 10, 10), R(0, -20, 10, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := R(0, 0, 100, 100)
	if !outer.ContainsRect(R(10, 10, 50, 50)) {
		t.Error("inner rect should be contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect should contain itself")
	}
	if outer.ContainsRect(R(60, 60, 50, 50)) {
		t.Error("overhanging rect should not be contained")
	}
}

func TestRect_ExpandUnion(t *testing.T) {
	r := R(10, 10, 20, 20)
	if got, want := r.Expand(5), R(5, 5, 30, 30); got != want {
		t.Errorf("Expand(5) = %+v, want %+v", got, want)
	}
	if got, want := r.Expand(-5), R(15, 15, 10, 10); got != want {
		t.Errorf("Expand(-5) = %+v, want %+v", got, want)
	}
	if got, want := r.Union(R(50, 0, 10, 10)), R(10, 0, 50, 30); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	if R(0, 0, 10, 10).IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if !R(0, 0, 0, 10).IsEmpty() || !R(0, 0, 10, -1).IsEmpty() {
		t.Error("zero or negative size should be empty")
	}
}
