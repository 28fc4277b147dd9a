package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/raycast/pkg/scene"
)

func TestToRGBAClamps(t *testing.T) {
	tests := []struct {
		name string
		in   scene.Color
		want color.RGBA
	}{
		{"black", scene.Black(), color.RGBA{0, 0, 0, 255}},
		{"white", scene.White(), color.RGBA{255, 255, 255, 255}},
		{"over", scene.RGB(4, 1.5, 1), color.RGBA{255, 255, 255, 255}},
		{"under", scene.RGB(-1, 0, 0.2), color.RGBA{0, 0, 51, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToRGBA(tc.in); got != tc.want {
				t.Errorf("ToRGBA(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(-1, 0, color.RGBA{255, 0, 0, 255})
	fb.SetPixel(3, 0, color.RGBA{255, 0, 0, 255})
	fb.SetColor(2, 1, scene.RGB(1, 0, 0))

	if got := fb.GetPixel(2, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("GetPixel = %v", got)
	}
	if got := fb.GetPixel(5, 5); got != (color.RGBA{}) {
		t.Errorf("out of bounds GetPixel = %v", got)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(color.RGBA{1, 2, 3, 255})

	fb.Resize(2, 2)
	if fb.GetPixel(1, 1) != (color.RGBA{1, 2, 3, 255}) {
		t.Error("same-size resize should keep pixels")
	}

	fb.Resize(4, 3)
	if fb.Width != 4 || fb.Height != 3 || len(fb.Pixels) != 12 {
		t.Errorf("resized to %dx%d with %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(color.RGBA{10, 20, 30, 255})
	fb.SetPixel(3, 2, color.RGBA{200, 100, 50, 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	if err := fb.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	acc.Add(scene.RGB(1, 0, 0))
	acc.Add(scene.RGB(0, 1, 0))
	acc.Scale(0.5)
	if acc.Color() != scene.RGB(0.5, 0.5, 0) || acc.Count() != 2 {
		t.Errorf("acc = %v (%d)", acc.Color(), acc.Count())
	}
	acc.Reset()
	if !acc.Color().IsBlack() || acc.Count() != 0 {
		t.Error("Reset should clear the accumulator")
	}
}

func TestFramebufferSizeForTerminal(t *testing.T) {
	tr := NewTerminalRenderer(nil, 80, 24)
	w, h := tr.FramebufferSize()
	if w != 80 || h != 48 {
		t.Errorf("FramebufferSize = %dx%d, want 80x48", w, h)
	}
}
