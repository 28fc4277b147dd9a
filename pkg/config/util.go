package config

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// V3 converts to a math3d vector.
func (v Vec) V3() math3d.Vec3 { return math3d.V3(v[0], v[1], v[2]) }

// IsZero reports whether all components are zero.
func (v Vec) IsZero() bool { return v == Vec{} }

// parseColor reads a "#rrggbb" string. An empty string yields def.
func parseColor(s string, def scene.Color) (scene.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def, fmt.Errorf("%w %q: %w", ErrBadColor, s, err)
	}
	return scene.RGB(c.R, c.G, c.B), nil
}
