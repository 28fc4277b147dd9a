package render

import (
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Reflect follows the mirror bounce off hit for at most depth bounces.
//
// The result is the base color of the surface the bounce lands on plus
// whatever the next bounce returns. Landing on another mirror discards
// everything and yields black, though the chain is still followed past
// it. depth <= 0, a nil hit or a bounce into empty space yield black.
func (c *Context) Reflect(hit *scene.Hit, incoming math3d.Vec3, depth int) scene.Color {
	if depth <= 0 || hit == nil {
		return scene.Black()
	}

	dir := incoming.Reflect(hit.Normal).Normalize()
	c.stats.ReflectionRays++
	next, ok := c.nearest(math3d.NewRay(hit.Point, dir))
	if !ok {
		return scene.Black()
	}

	deeper := c.Reflect(&next, dir, depth-1)
	if next.Material == nil {
		return deeper
	}
	if next.Material.Mirror {
		return scene.Black()
	}
	return next.Material.Color.Add(deeper)
}
