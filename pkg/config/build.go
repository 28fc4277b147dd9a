package config

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/models"
	"github.com/taigrr/raycast/pkg/render"
	"github.com/taigrr/raycast/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// maxParallelLoads bounds concurrent mesh file reads.
const maxParallelLoads = 4

// Built is a ready-to-render scene.
type Built struct {
	Scene    *scene.Scene
	Camera   *render.Camera
	Settings render.Settings
}

// defaultMaterial is used by objects that name no material.
func defaultMaterial() *scene.Material {
	return scene.NewMaterial("default", scene.RGB(0.8, 0.8, 0.8))
}

// Build creates the scene, camera and settings described by the config.
// base supplies every setting the file leaves out. Mesh files are loaded
// concurrently; the first failure cancels the rest.
func (c *Config) Build(ctx context.Context, base render.Settings) (*Built, error) {
	settings, err := c.Settings.ApplySettings(base)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	mats, err := c.buildMaterials()
	if err != nil {
		return nil, err
	}

	objects := make([]scene.Object, len(c.Objects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	for i, oc := range c.Objects {
		mat, err := lookupMaterial(mats, oc.Material)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if oc.Type == "mesh" {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				obj, err := c.loadMesh(oc, mat)
				if err != nil {
					return fmt.Errorf("object %d: %w", i, err)
				}
				objects[i] = obj
				return nil
			})
			continue
		}
		obj, err := buildPrimitive(oc, mat)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects[i] = obj
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load meshes: %w", err)
	}

	sc := scene.New(c.Name)
	sc.Add(objects...)
	for i, lc := range c.Lights {
		l, err := buildLight(lc)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sc.AddLight(l)
	}

	cam := c.Camera.build()
	cam.SetAspectRatio(float64(settings.Width) / float64(settings.Height))

	return &Built{Scene: sc, Camera: cam, Settings: settings}, nil
}

func (c *Config) buildMaterials() (map[string]*scene.Material, error) {
	mats := make(map[string]*scene.Material, len(c.Materials))
	for name, mc := range c.Materials {
		color, err := parseColor(mc.Color, scene.White())
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		m := scene.NewMaterial(name, color)
		if m.Specular, err = parseColor(mc.Specular, m.Specular); err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		if mc.Shininess > 0 {
			m.Shininess = mc.Shininess
		}
		if mc.Mirror {
			m.Mirror = true
			m.Reflectivity = math.Max(0, math.Min(1, mc.Reflectivity))
		}
		mats[name] = m
	}
	return mats, nil
}

func lookupMaterial(mats map[string]*scene.Material, name string) (*scene.Material, error) {
	if name == "" {
		return defaultMaterial(), nil
	}
	m, ok := mats[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

func buildPrimitive(oc ObjectCfg, mat *scene.Material) (scene.Object, error) {
	switch oc.Type {
	case "sphere":
		if oc.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere radius %v", ErrBadGeometry, oc.Radius)
		}
		s := scene.NewSphere(oc.Center.V3(), oc.Radius, mat)
		s.Name = oc.Name
		return s, nil
	case "quad":
		if oc.Width <= 0 || oc.Height <= 0 || oc.U.V3().Cross(oc.V.V3()).LenSq() == 0 {
			return nil, fmt.Errorf("%w: degenerate quad", ErrBadGeometry)
		}
		q := scene.NewQuadCentered(oc.Center.V3(), oc.U.V3(), oc.V.V3(), oc.Width, oc.Height, mat)
		q.Name = oc.Name
		return q, nil
	case "box":
		if oc.Size[0] <= 0 || oc.Size[1] <= 0 || oc.Size[2] <= 0 {
			return nil, fmt.Errorf("%w: box size %v", ErrBadGeometry, oc.Size)
		}
		return scene.NewBox(oc.Name, oc.Center.V3(), oc.Size.V3(), mat), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownObject, oc.Type)
	}
}

func (c *Config) loadMesh(oc ObjectCfg, fallback *scene.Material) (scene.Object, error) {
	path := oc.Path
	if !filepath.IsAbs(path) && c.baseDir != "" {
		path = filepath.Join(c.baseDir, path)
	}
	mesh, err := models.LoadGLB(path)
	if err != nil {
		return nil, err
	}
	if oc.Name != "" {
		mesh.Name = oc.Name
	}
	if oc.Fit > 0 {
		mesh.Fit(oc.Fit)
	}

	rot := oc.Rotation.V3().Scale(math.Pi / 180)
	transform := math3d.TRS(oc.Position.V3(), rot, math3d.V3(1, 1, 1))
	return mesh.ToScene(transform, fallback), nil
}

func buildLight(lc LightCfg) (*scene.Light, error) {
	color, err := parseColor(lc.Color, scene.White())
	if err != nil {
		return nil, err
	}
	if lc.Intensity < 0 {
		return nil, fmt.Errorf("%w: negative intensity %v", ErrBadGeometry, lc.Intensity)
	}
	switch lc.Type {
	case "point", "":
		return scene.NewPointLight(lc.Position.V3(), color, lc.Intensity), nil
	case "ambient":
		return scene.NewAmbientLight(color, lc.Intensity), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownLight, lc.Type)
	}
}

func (cc CameraCfg) build() *render.Camera {
	cam := render.NewCamera()
	if !cc.Position.IsZero() {
		cam.SetPosition(cc.Position.V3())
	}
	if cc.FOV > 0 {
		cam.SetFOV(cc.FOV * math.Pi / 180)
	}
	if cc.LookAt.V3() != cam.Position {
		cam.LookAt(cc.LookAt.V3())
	}
	return cam
}
