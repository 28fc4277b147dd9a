package render

import (
	"image/color"
	"time"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Raytracer renders a scene into a framebuffer, one frame per Render call.
type Raytracer struct {
	camera   *Camera
	scene    *scene.Scene
	oracle   scene.Intersector
	fb       *Framebuffer
	settings Settings
	logger   Logger

	// Background is the color a pixel keeps when nothing is written to it.
	Background color.RGBA
}

// NewRaytracer creates a raytracer. A nil oracle means a bounding volume
// hierarchy built from the scene.
func NewRaytracer(cam *Camera, sc *scene.Scene, oracle scene.Intersector, settings Settings) *Raytracer {
	if oracle == nil {
		oracle = sc.BVH()
	}
	rt := &Raytracer{
		camera:     cam,
		scene:      sc,
		oracle:     oracle,
		settings:   settings,
		fb:         NewFramebuffer(settings.Width, settings.Height),
		Background: color.RGBA{0, 0, 0, 0},
	}
	rt.syncCamera()
	return rt
}

// SetLogger sets the progress logger. nil silences it.
func (rt *Raytracer) SetLogger(l Logger) {
	rt.logger = l
}

// SetOracle replaces the intersection oracle, for example after the scene
// changed.
func (rt *Raytracer) SetOracle(o scene.Intersector) {
	rt.oracle = o
}

// Settings returns the current settings.
func (rt *Raytracer) Settings() Settings {
	return rt.settings
}

// SetSettings replaces the settings and resizes the framebuffer when the
// raster size changed.
func (rt *Raytracer) SetSettings(s Settings) {
	rt.settings = s
	rt.fb.Resize(s.Width, s.Height)
	rt.syncCamera()
}

// Framebuffer returns the output raster.
func (rt *Raytracer) Framebuffer() *Framebuffer {
	return rt.fb
}

// Camera returns the camera rays are generated from.
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

func (rt *Raytracer) syncCamera() {
	if rt.settings.Height > 0 {
		rt.camera.SetAspectRatio(float64(rt.settings.Width) / float64(rt.settings.Height))
	}
}

func (rt *Raytracer) logf(format string, args ...any) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// Render draws one full frame synchronously and returns its statistics.
//
// Each pixel sums the traced color of its subsamples and is scaled by the
// configured sample scale. With CorrectSpheres on, a pixel whose last
// subsample hit something then goes through the sphere correction pass.
func (rt *Raytracer) Render() RenderStats {
	start := time.Now()
	s := rt.settings
	rt.fb.Resize(s.Width, s.Height)
	rt.fb.Clear(rt.Background)

	ctx := NewContext(rt.camera, rt.scene, rt.oracle, s)
	sampler := NewSampler(s.Width, s.Height, s.Subsamples)
	factor := s.SampleScale.Factor(sampler.Count())

	var (
		acc  Accumulator
		rays []math3d.Ray
	)
	pixels := 0
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			acc.Reset()
			rays = sampler.PixelRays(rt.camera, x, y, rays[:0])

			var (
				last    math3d.Ray
				lastHit scene.Hit
				hitAny  bool
			)
			for _, ray := range rays {
				c, hit, ok := ctx.Trace(ray)
				last, lastHit, hitAny = ray, hit, ok
				if ok {
					acc.Add(c)
				}
			}
			if acc.Count() == 0 {
				continue
			}

			acc.Scale(factor)
			if s.CorrectSpheres && hitAny {
				ctx.CorrectSpheres(last, lastHit, &acc, factor)
			}
			rt.fb.SetColor(x, y, acc.Color())
			pixels++
		}
	}

	stats := ctx.Stats()
	stats.Pixels = pixels
	stats.Elapsed = time.Since(start)
	rt.logf("rendered %dx%d (%d spp): %s", s.Width, s.Height, sampler.Count(), stats)
	return stats
}
