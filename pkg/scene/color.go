package scene

// Color is a linear RGB color. Channels are nominally in [0, 1] but
// intermediate shading results may exceed that range.
type Color struct {
	R, G, B float64
}

// RGB creates a new Color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1).
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the channel-wise sum a + b.
func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

// Mul returns the channel-wise product a ⊙ b.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

// Scale returns a * s.
func (a Color) Scale(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s}
}

// Lerp moves a toward b by t (t=0 gives a, t=1 gives b).
func (a Color) Lerp(b Color, t float64) Color {
	return Color{
		a.R + (b.R-a.R)*t,
		a.G + (b.G-a.G)*t,
		a.B + (b.B-a.B)*t,
	}
}

// IsBlack reports whether all channels are exactly zero.
func (a Color) IsBlack() bool {
	return a.R == 0 && a.G == 0 && a.B == 0
}
