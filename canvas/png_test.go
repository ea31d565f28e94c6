package canvas

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNG(t *testing.T) {
	dc := newTestContext(t, 8, 8)
	dc.Clear(RGB(1, 0, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, dc.Image()); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", b)
	}
}

func TestSavePNG_MissingDirectory(t *testing.T) {
	dc := newTestContext(t, 4, 4)
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := SavePNG(path, dc.Image()); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
