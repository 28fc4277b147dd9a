package scene

// Material describes how a surface is shaded. It is owned by the scene and
// treated as read-only while rendering.
type Material struct {
	Name         string
	Color        Color   // Base (diffuse) color
	Specular     Color   // Specular highlight color
	Shininess    float64 // Phong exponent, >= 0
	Mirror       bool    // Surface takes part in mirror reflection
	Reflectivity float64 // Blend factor toward the reflected color, in [0, 1]
}

// NewMaterial creates a matte material with a dim white highlight, the
// same defaults a freshly constructed Phong material has.
func NewMaterial(name string, color Color) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Specular:  RGB(0.0667, 0.0667, 0.0667),
		Shininess: 30,
	}
}

// NewMirror creates a mirror material with the given reflectivity.
func NewMirror(name string, color Color, reflectivity float64) *Material {
	m := NewMaterial(name, color)
	m.Mirror = true
	m.Reflectivity = clamp01(reflectivity)
	return m
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
