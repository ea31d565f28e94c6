package canvas

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{name: "short rgb", in: "#f80", want: RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{name: "short rgba", in: "#f808", want: RGBA{R: 1, G: 136.0 / 255, B: 0, A: 136.0 / 255}},
		{name: "long rgb", in: "#ff8800", want: RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{name: "long rgba", in: "#11223344", want: RGBA{R: 17.0 / 255, G: 34.0 / 255, B: 51.0 / 255, A: 68.0 / 255}},
		{name: "no hash", in: "3498db", want: RGBA{R: 52.0 / 255, G: 152.0 / 255, B: 219.0 / 255, A: 1}},
		{name: "uppercase", in: "#FFAA00", want: RGBA{R: 1, G: 170.0 / 255, B: 0, A: 1}},
		{name: "empty", in: "", wantErr: true},
		{name: "five digits", in: "#12345", wantErr: true},
		{name: "nine digits", in: "#123456789", wantErr: true},
		{name: "bad digit", in: "#gg0011", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Hex(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Hex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	got := RGB(0.2, 0.4, 0.6)
	want := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if got != want {
		t.Errorf("RGB(0.2, 0.4, 0.6) = %+v, want %+v", got, want)
	}
}

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.RGBA
	}{
		{name: "opaque red", c: RGBA{R: 1, A: 1}, want: color.RGBA{R: 255, A: 255}},
		{name: "half alpha white premultiplies", c: RGBA{R: 1, G: 1, B: 1, A: 0.5}, want: color.RGBA{R: 128, G: 128, B: 128, A: 128}},
		{name: "zero alpha", c: RGBA{R: 1, G: 1, B: 1}, want: color.RGBA{}},
		{name: "components clamped", c: RGBA{R: 2, G: -1, B: 0.5, A: 1}, want: color.RGBA{R: 255, G: 0, B: 128, A: 255}},
		{name: "alpha clamped", c: RGBA{B: 1, A: 3}, want: color.RGBA{B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA
	}{
		{name: "opaque nrgba", in: color.NRGBA{R: 51, G: 102, B: 153, A: 255}, want: RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}},
		{name: "premultiplied half alpha", in: color.RGBA{R: 128, G: 64, A: 128}, want: RGBA{R: 1, G: 0.5, A: 128.0 / 255}},
		{name: "transparent", in: color.RGBA{}, want: RGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			if absDiff(got.R, tt.want.R) > 1e-3 || absDiff(got.G, tt.want.G) > 1e-3 ||
				absDiff(got.B, tt.want.B) > 1e-3 || absDiff(got.A, tt.want.A) > 1e-3 {
				t.Errorf("FromColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGBA{R: 0, G: 0.2, B: 1, A: 1}
	b := RGBA{R: 1, G: 0.8, B: 0, A: 0.5}

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{name: "start", t: 0, want: a},
		{name: "end", t: 1, want: b},
		{name: "midpoint", t: 0.5, want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.75}},
		{name: "clamped low", t: -2, want: a},
		{name: "clamped high", t: 3, want: b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if absDiff(got.R, tt.want.R) > 1e-9 || absDiff(got.G, tt.want.G) > 1e-9 ||
				absDiff(got.B, tt.want.B) > 1e-9 || absDiff(got.A, tt.want.A) > 1e-9 {
				t.Errorf("Lerp(t=%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
