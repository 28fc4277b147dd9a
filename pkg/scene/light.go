package scene

import "github.com/taigrr/raycast/pkg/math3d"

// LightKind distinguishes the light types a scene may hold.
type LightKind int

const (
	LightPoint   LightKind = iota // Positional light, used by the shader
	LightAmbient                  // Constant fill; ignored by the ambient-free Phong model
)

// String returns the kind's name as used in scene files.
func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// Light is a light source owned by the scene.
type Light struct {
	Kind      LightKind
	Position  math3d.Vec3
	Color     Color
	Intensity float64 // >= 0
}

// NewPointLight creates a point light.
func NewPointLight(pos math3d.Vec3, color Color, intensity float64) *Light {
	return &Light{
		Kind:      LightPoint,
		Position:  pos,
		Color:     color,
		Intensity: intensity,
	}
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(color Color, intensity float64) *Light {
	return &Light{
		Kind:      LightAmbient,
		Color:     color,
		Intensity: intensity,
	}
}
