package render

import (
	"errors"
	"fmt"
	"math"
)

// Settings validation errors.
var (
	ErrSubsamplesNotSquare = errors.New("subsamples must be a positive perfect square")
	ErrInvalidSize         = errors.New("width and height must be positive")
	ErrNegativeDepth       = errors.New("max depth must not be negative")
	ErrUnknownSampleScale  = errors.New("unknown sample scale")
)

// SampleScale selects how a pixel's summed subsamples are normalized.
type SampleScale int

const (
	// ScaleMean divides by the subsample count, so a uniform scene renders
	// the same color at every density.
	ScaleMean SampleScale = iota
	// ScaleSqrt divides by the square root of the subsample count, which
	// brightens the image as density grows.
	ScaleSqrt
)

// String implements fmt.Stringer.
func (s SampleScale) String() string {
	switch s {
	case ScaleMean:
		return "mean"
	case ScaleSqrt:
		return "sqrt"
	default:
		return fmt.Sprintf("SampleScale(%d)", int(s))
	}
}

// ParseSampleScale parses "mean" or "sqrt".
func ParseSampleScale(s string) (SampleScale, error) {
	switch s {
	case "", "mean":
		return ScaleMean, nil
	case "sqrt":
		return ScaleSqrt, nil
	default:
		return ScaleMean, fmt.Errorf("%w: %q", ErrUnknownSampleScale, s)
	}
}

// Factor returns the multiplier applied to a sum of n subsamples.
func (s SampleScale) Factor(n int) float64 {
	if n <= 0 {
		return 0
	}
	if s == ScaleSqrt {
		return 1 / math.Sqrt(float64(n))
	}
	return 1 / float64(n)
}

// Settings are the user-adjustable render options. They are read once per
// frame.
type Settings struct {
	Width      int
	Height     int
	Subsamples int // Rays per pixel, a perfect square

	Phong          bool // Full lighting instead of flat base color
	Shadows        bool // Occlusion test per light
	Mirrors        bool // Recursive mirror reflection
	AllLights      bool // Every point light instead of the first one
	CorrectSpheres bool // Analytic re-shading pass for spheres
	MaxDepth       int  // Reflection bounce limit

	SampleScale SampleScale
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Width:      400,
		Height:     400,
		Subsamples: 1,
		Phong:      true,
		Shadows:    true,
		Mirrors:    true,
		AllLights:  true,
		MaxDepth:   3,
	}
}

// Validate reports the first settings error.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if k := GridSize(s.Subsamples); k == 0 || k*k != s.Subsamples {
		return fmt.Errorf("%w: %d", ErrSubsamplesNotSquare, s.Subsamples)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, s.MaxDepth)
	}
	if s.SampleScale != ScaleMean && s.SampleScale != ScaleSqrt {
		return fmt.Errorf("%w: %v", ErrUnknownSampleScale, s.SampleScale)
	}
	return nil
}

// GridSize returns floor(sqrt(n)), the side of the subsample grid.
func GridSize(n int) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Sqrt(float64(n)))
	// Guard against float rounding on large squares
	for (k+1)*(k+1) <= n {
		k++
	}
	for k*k > n {
		k--
	}
	return k
}
