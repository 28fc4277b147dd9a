// Package render turns a scene into pixels: primary ray sampling, Phong
// shading, mirror reflection and the framebuffer the result lands in.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/raycast/pkg/scene"
)

// Framebuffer is a 2D array of pixels. In the terminal it is drawn with
// half-block characters (▀), two pixel rows per cell row.
type Framebuffer struct {
	Width  int          // Width in pixels
	Height int          // Height in pixels
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Resize changes the dimensions. Pixel contents are discarded when the size
// changes.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pixels = make([]color.RGBA, width*height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// SetColor writes a linear shading result, clamping each channel to [0, 1].
func (fb *Framebuffer) SetColor(x, y int, c scene.Color) {
	fb.SetPixel(x, y, ToRGBA(c))
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// ToRGBA converts a shading result to an opaque 8-bit color.
func ToRGBA(c scene.Color) color.RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// Accumulator is the running color of the pixel being rendered.
type Accumulator struct {
	sum   scene.Color
	count int
}

// Reset starts a new pixel.
func (a *Accumulator) Reset() {
	a.sum = scene.Black()
	a.count = 0
}

// Add sums one subsample.
func (a *Accumulator) Add(c scene.Color) {
	a.sum = a.sum.Add(c)
	a.count++
}

// Count returns the number of subsamples added since Reset.
func (a *Accumulator) Count() int {
	return a.count
}

// Scale multiplies the running color by f.
func (a *Accumulator) Scale(f float64) {
	a.sum = a.sum.Scale(f)
}

// Color returns the running color.
func (a *Accumulator) Color() scene.Color {
	return a.sum
}
