package canvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG writes img to path in PNG format.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: save png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("canvas: save png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: save png: %w", err)
	}
	return nil
}
