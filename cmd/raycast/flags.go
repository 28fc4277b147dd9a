package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taigrr/raycast/pkg/config"
	"github.com/taigrr/raycast/pkg/render"
	"github.com/taigrr/raycast/pkg/scene"
)

// sceneFlags are the options shared by every command that renders.
type sceneFlags struct {
	settings    render.Settings
	sampleScale string
	oracle      string
	verbose     bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	d := render.DefaultSettings()
	fs := cmd.Flags()
	fs.IntVar(&f.settings.Width, "width", d.Width, "Image width in pixels")
	fs.IntVar(&f.settings.Height, "height", d.Height, "Image height in pixels")
	fs.IntVarP(&f.settings.Subsamples, "subsamples", "s", d.Subsamples, "Rays per pixel (1, 4, 9, ...)")
	fs.BoolVar(&f.settings.Phong, "phong", d.Phong, "Phong lighting (off renders flat base colors)")
	fs.BoolVar(&f.settings.Shadows, "shadows", d.Shadows, "Cast shadow rays toward lights")
	fs.BoolVar(&f.settings.Mirrors, "mirrors", d.Mirrors, "Trace mirror reflections")
	fs.BoolVar(&f.settings.AllLights, "all-lights", d.AllLights, "Shade with every point light instead of the first")
	fs.BoolVar(&f.settings.CorrectSpheres, "correct-spheres", d.CorrectSpheres, "Run the analytic sphere correction pass")
	fs.IntVarP(&f.settings.MaxDepth, "max-depth", "d", d.MaxDepth, "Mirror bounce limit")
	fs.StringVar(&f.sampleScale, "sample-scale", "mean", "Subsample normalization: mean or sqrt")
	fs.StringVar(&f.oracle, "oracle", "bvh", "Intersection backend: bvh or list")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log render statistics")
}

// overlay copies every flag the user set onto s.
func (f *sceneFlags) overlay(cmd *cobra.Command, s render.Settings) (render.Settings, error) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		s.Width = f.settings.Width
	}
	if fs.Changed("height") {
		s.Height = f.settings.Height
	}
	if fs.Changed("subsamples") {
		s.Subsamples = f.settings.Subsamples
	}
	if fs.Changed("phong") {
		s.Phong = f.settings.Phong
	}
	if fs.Changed("shadows") {
		s.Shadows = f.settings.Shadows
	}
	if fs.Changed("mirrors") {
		s.Mirrors = f.settings.Mirrors
	}
	if fs.Changed("all-lights") {
		s.AllLights = f.settings.AllLights
	}
	if fs.Changed("correct-spheres") {
		s.CorrectSpheres = f.settings.CorrectSpheres
	}
	if fs.Changed("max-depth") {
		s.MaxDepth = f.settings.MaxDepth
	}
	if fs.Changed("sample-scale") {
		scale, err := render.ParseSampleScale(f.sampleScale)
		if err != nil {
			return s, err
		}
		s.SampleScale = scale
	}
	return s, s.Validate()
}

// load reads the scene named by args (or the built-in one) and applies
// the flags on top of its settings.
func (f *sceneFlags) load(ctx context.Context, cmd *cobra.Command, args []string) (*config.Built, string, error) {
	cfg := config.Default()
	name := "built-in scene"
	if len(args) > 0 {
		var err error
		cfg, err = config.Load(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("load scene: %w", err)
		}
		name = filepath.Base(args[0])
	}

	built, err := cfg.Build(ctx, render.DefaultSettings())
	if err != nil {
		return nil, "", fmt.Errorf("build scene: %w", err)
	}
	built.Settings, err = f.overlay(cmd, built.Settings)
	if err != nil {
		return nil, "", fmt.Errorf("flags: %w", err)
	}
	return built, name, nil
}

// newOracle builds the selected intersection backend.
func (f *sceneFlags) newOracle(sc *scene.Scene) (scene.Intersector, error) {
	switch f.oracle {
	case "bvh", "":
		return sc.BVH(), nil
	case "list":
		return sc.List(), nil
	default:
		return nil, fmt.Errorf("unknown oracle %q (use bvh or list)", f.oracle)
	}
}
