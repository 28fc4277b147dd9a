package render

import (
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Specular multipliers. The primary path halves the shininess-scaled
// highlight, the sphere correction path quarters it.
const (
	primarySpecular = 0.5
	sphereSpecular  = 0.25
)

// Context bundles everything a frame reads: camera, scene, oracle and
// settings. Shading, reflection and the sphere pass all take their inputs
// from it. A Context is used by one goroutine at a time.
type Context struct {
	Camera   *Camera
	Scene    *scene.Scene
	Oracle   scene.Intersector
	Settings Settings

	lights  []*scene.Light
	spheres []*scene.Sphere
	stats   RenderStats
}

// NewContext snapshots the light selection and sphere list for a frame.
// A nil oracle falls back to a brute-force list over the scene.
func NewContext(cam *Camera, sc *scene.Scene, oracle scene.Intersector, settings Settings) *Context {
	if oracle == nil {
		oracle = sc.List()
	}
	c := &Context{
		Camera:   cam,
		Scene:    sc,
		Oracle:   oracle,
		Settings: settings,
		spheres:  sc.Spheres(),
	}
	if settings.AllLights {
		c.lights = sc.PointLights()
	} else if l, ok := sc.FirstPointLight(); ok {
		c.lights = []*scene.Light{l}
	}
	return c
}

// Lights returns the point lights that take part in shading.
func (c *Context) Lights() []*scene.Light {
	return c.lights
}

// Stats returns the counters collected so far.
func (c *Context) Stats() RenderStats {
	return c.stats
}

func (c *Context) nearest(ray math3d.Ray) (scene.Hit, bool) {
	c.stats.OracleQueries++
	return scene.Nearest(c.Oracle, ray)
}

// Trace shades one primary ray: direct lighting at the nearest hit, blended
// toward the mirror reflection when the surface is a mirror. ok is false
// when the ray hits nothing.
func (c *Context) Trace(ray math3d.Ray) (color scene.Color, hit scene.Hit, ok bool) {
	c.stats.PrimaryRays++
	hit, ok = c.nearest(ray)
	if !ok {
		return scene.Black(), hit, false
	}

	color = c.Shade(hit)
	m := hit.Material
	if m != nil && m.Mirror && c.Settings.Mirrors && c.Settings.MaxDepth > 0 {
		reflected := c.Reflect(&hit, ray.Direction, c.Settings.MaxDepth)
		color = color.Lerp(reflected, m.Reflectivity)
	}
	return color, hit, true
}
