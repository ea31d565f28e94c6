package canvas

import (
	"slices"
	"testing"
)

func TestRecorder_Sequence(t *testing.T) {
	r := NewRecorder(800, 600)
	r.Clear(RGB(1, 1, 1))
	r.SetColor(RGB(1, 0, 0))
	r.DrawRectangle(10, 20, 30, 40)
	r.Fill()

	ops := r.Ops()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	want := []string{"Clear", "SetColor", "DrawRectangle", "Fill"}
	if !slices.Equal(names, want) {
		t.Fatalf("op names = %v, want %v", names, want)
	}

	if got := ops[2].Args; !slices.Equal(got, []float64{10, 20, 30, 40}) {
		t.Errorf("DrawRectangle args = %v", got)
	}
	if ops[0].Color != RGB(1, 1, 1) {
		t.Errorf("Clear color = %+v", ops[0].Color)
	}
	if ops[1].Color != RGB(1, 0, 0) {
		t.Errorf("SetColor color = %+v", ops[1].Color)
	}
}

func TestRecorder_CountAndTexts(t *testing.T) {
	r := NewRecorder(100, 100)
	r.DrawString("alpha", 0, 10, 14)
	r.DrawLine(0, 0, 5, 5)
	r.DrawString("beta", 0, 30, 14)

	if n := r.Count("DrawString"); n != 2 {
		t.Errorf("Count(DrawString) = %d, want 2", n)
	}
	if n := r.Count("Pop"); n != 0 {
		t.Errorf("Count(Pop) = %d, want 0", n)
	}
	if got := r.Texts("DrawString"); !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Errorf("Texts(DrawString) = %v", got)
	}
}

func TestRecorder_DrawStringOp(t *testing.T) {
	r := NewRecorder(100, 100)
	r.DrawString("note", 5, 25, 16)

	ops := r.Ops()
	if len(ops) != 1 {
		t.Fatalf("recorded %d ops, want 1", len(ops))
	}
	op := ops[0]
	if op.Text != "note" || !slices.Equal(op.Args, []float64{5, 25, 16}) {
		t.Errorf("DrawString op = %+v", op)
	}
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder(100, 100)
	r.Push()
	r.Pop()
	r.Reset()

	if len(r.Ops()) != 0 {
		t.Errorf("Ops() after Reset = %v, want empty", r.Ops())
	}
	if n := r.Count("Push"); n != 0 {
		t.Errorf("Count(Push) after Reset = %d, want 0", n)
	}
}

func TestRecorder_Size(t *testing.T) {
	r := NewRecorder(800, 600)
	if w, h := r.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = (%d, %d), want (800, 600)", w, h)
	}
}

func TestRecorder_MeasureString(t *testing.T) {
	r := NewRecorder(100, 100)

	w, h := r.MeasureString("hello", 10)
	if w != 30 || h != 10 {
		t.Errorf("MeasureString(hello, 10) = (%v, %v), want (30, 10)", w, h)
	}

	// Runes count, not bytes.
	if w, _ := r.MeasureString("héllo", 10); w != 30 {
		t.Errorf("MeasureString(héllo, 10) = %v, want 30", w)
	}

	if w, h := r.MeasureString("", 10); w != 0 || h != 10 {
		t.Errorf("MeasureString(empty, 10) = (%v, %v), want (0, 10)", w, h)
	}
}
