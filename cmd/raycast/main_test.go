package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
)

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"render", "--width", "16", "--height", "12", "-s", "4", "--oracle", "list", "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a PNG at %s: %v", out, err)
	}
	if !strings.Contains(stdout.String(), "built-in scene") {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestRenderCommandRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-square subsamples", []string{"render", "-s", "3"}},
		{"unknown oracle", []string{"render", "--oracle", "octree", "--width", "4", "--height", "4"}},
		{"bad scale", []string{"render", "--sample-scale", "median"}},
		{"missing scene", []string{"render", "/nonexistent/scene.json"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append(tc.args, "-o", filepath.Join(t.TempDir(), "x.png")))
			if err := cmd.Execute(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFlagOverlayOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var f sceneFlags
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--shadows=false", "--max-depth", "7"}); err != nil {
		t.Fatal(err)
	}

	base := render.DefaultSettings()
	base.Width = 123
	got, err := f.overlay(cmd, base)
	if err != nil {
		t.Fatal(err)
	}
	if got.Shadows || got.MaxDepth != 7 {
		t.Errorf("shadows=%v depth=%d", got.Shadows, got.MaxDepth)
	}
	if got.Width != 123 {
		t.Errorf("unset flag overwrote width: %d", got.Width)
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	cam := render.NewCamera()
	cam.SetPosition(math3d.V3(3, 2, 4))
	target := math3d.V3(0, 1, 0)

	o := newOrbit(cam, target, 60)
	o.Apply(cam)
	if !cam.Position.ApproxEqual(math3d.V3(3, 2, 4), 1e-9) {
		t.Errorf("orbit moved the camera to %v", cam.Position)
	}
	if o.Moving() {
		t.Error("a fresh orbit should be at rest")
	}
}

func TestOrbitImpulseDecays(t *testing.T) {
	cam := render.NewCamera()
	o := newOrbit(cam, math3d.Zero3(), 60)
	start := o.Yaw.Position

	o.Impulse(2, 0)
	for range 600 {
		o.Update(1.0 / 60)
	}
	if o.Yaw.Position <= start {
		t.Errorf("yaw did not advance: %v", o.Yaw.Position)
	}
	if math.Abs(o.Yaw.Velocity) > 1e-3 {
		t.Errorf("velocity should decay, got %v", o.Yaw.Velocity)
	}
}

func TestOrbitZoomClamps(t *testing.T) {
	o := newOrbit(render.NewCamera(), math3d.Zero3(), 60)
	for range 100 {
		o.Zoom(0.1)
	}
	if o.distTarget != 0.5 {
		t.Errorf("distTarget = %v, want 0.5", o.distTarget)
	}
	if !o.Moving() {
		t.Error("zooming should start the distance spring")
	}
}
