package render

import (
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// CorrectSpheres re-shades a pixel against every sphere in the scene.
//
// ray and hit are the pixel's primary ray and its nearest hit. For each
// sphere whose far root along ray is non-negative, the sphere's material
// is shaded at hit.Point with the normal pointing away from the position of
// the object the primary ray actually hit, added to acc, and acc is scaled
// by factor again. It reports whether acc changed.
func (c *Context) CorrectSpheres(ray math3d.Ray, hit scene.Hit, acc *Accumulator, factor float64) bool {
	normal := hit.Normal
	if hit.Object != nil {
		normal = hit.Point.Sub(hit.Object.Position()).Normalize()
	}

	dir := ray.Direction.Normalize()
	unit := math3d.Ray{Origin: ray.Origin, Direction: dir}

	changed := false
	for _, sp := range c.spheres {
		_, far, ok := sp.Roots(unit)
		if !ok || far < 0 {
			continue
		}
		c.stats.SphereRoots++
		acc.Add(c.shade(hit.Point, normal, sp.Material, sphereSpecular))
		acc.Scale(factor)
		changed = true
	}
	return changed
}
