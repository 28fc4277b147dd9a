package render

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Shade returns the direct illumination at a primary hit.
func (c *Context) Shade(hit scene.Hit) scene.Color {
	return c.shade(hit.Point, hit.Normal, hit.Material, primarySpecular)
}

// shade evaluates the lighting model at point with the given normal and
// material. specScale multiplies the shininess-weighted highlight.
//
// With Phong off the result is the material color. Otherwise every
// selected point light adds diffuse and specular terms attenuated by
// 1/d^2, unless Shadows is on and the oracle finds something closer than
// the light along the light direction. Shadow rays start exactly at point.
func (c *Context) shade(point, normal math3d.Vec3, m *scene.Material, specScale float64) scene.Color {
	if m == nil {
		return scene.Black()
	}
	if !c.Settings.Phong {
		return m.Color
	}

	out := scene.Black()
	view := c.Camera.Position.Sub(point).Normalize()

	for _, light := range c.lights {
		toLight := light.Position.Sub(point)
		distSq := toLight.LenSq()
		attenuation := 1 / distSq
		distance := math.Sqrt(distSq)
		l := toLight.Normalize()

		if c.Settings.Shadows {
			c.stats.ShadowRays++
			if occluder, ok := c.nearest(math3d.NewRay(point, l)); ok && occluder.Distance < distance {
				continue
			}
		}

		half := l.Add(view).Normalize()
		diffuse := math.Max(normal.Dot(l), 0)
		specular := math.Pow(math.Max(normal.Dot(half), 0), m.Shininess) * m.Shininess * specScale

		diffuseColor := m.Color.Mul(light.Color).Scale(diffuse * light.Intensity)
		specularColor := m.Specular.Mul(light.Color).Scale(specular * light.Intensity)
		out = out.Add(diffuseColor.Add(specularColor).Scale(attenuation))
	}
	return out
}
