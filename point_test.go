package board

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %+v, want {4 2}", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %+v, want {2 6}", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want {6 8}", got)
	}
	if got := p.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %+v, want {1.5 2}", got)
	}
}

func TestPoint_Length(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length of (3, 4) = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("Length of origin = %v, want 0", got)
	}
}

func TestPoint_Distance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, -20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %+v, want %+v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %+v, want %+v", got, q)
	}
	mid := p.Lerp(q, 0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y+10) > 1e-9 {
		t.Errorf("Lerp(0.5) = %+v, want {5 -10}", mid)
	}
}
