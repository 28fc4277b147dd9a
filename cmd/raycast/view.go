package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/raycast/pkg/config"
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
	"github.com/taigrr/raycast/pkg/scene"
)

const viewHelp = `Controls:
  Mouse drag / arrows / WASD  Orbit the camera
  Scroll / + -                Zoom
  Enter                       Render with full subsampling
  1-5                         Toggle phong, shadows, mirrors, all lights, sphere pass
  [ ]                         Decrease / increase mirror depth
  N                           Cycle subsamples (1, 4, 9, 16)
  M                           Toggle sample scale (mean / sqrt)
  E                           Export a PNG at the configured size
  R                           Reset camera
  ?                           Toggle HUD
  Esc                         Quit`

func newViewCmd() *cobra.Command {
	var (
		flags     sceneFlags
		output    string
		targetFPS int
	)
	cmd := &cobra.Command{
		Use:   "view [scene.json]",
		Short: "Explore a scene in the terminal",
		Long:  "Interactive half-block preview of a scene.\n\n" + viewHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, name, err := flags.load(cmd.Context(), cmd, args)
			if err != nil {
				return err
			}
			oracle, err := flags.newOracle(built.Scene)
			if err != nil {
				return err
			}
			v := &viewer{
				built:  built,
				name:   name,
				oracle: oracle,
				output: output,
				fps:    targetFPS,
			}
			return v.run(cmd.Context())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "raycast.png", "PNG path for the export key")
	cmd.Flags().IntVar(&targetFPS, "fps", 30, "Target FPS")
	return cmd
}

// viewer is the interactive terminal session.
type viewer struct {
	built  *config.Built
	name   string
	oracle scene.Intersector
	output string
	fps    int

	// settings is what the user toggles; previews render at terminal size.
	settings render.Settings
	orbit    *orbit
	hud      *hud
	dirty    bool
	full     bool // next frame uses full subsampling
}

func (v *viewer) run(ctx context.Context) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1002h") // Button-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1002l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	v.settings = v.built.Settings
	cam := v.built.Camera
	target := math3d.Zero3()
	if b, ok := v.built.Scene.Bounds(); ok {
		target = b.Center()
	}
	v.orbit = newOrbit(cam, target, v.fps)
	v.hud = newHUD(v.name, len(v.built.Scene.Objects), v.built.Scene.TriangleCount())
	v.dirty = true

	termRenderer := render.NewTerminalRenderer(term, width, height)
	rt := render.NewRaytracer(cam, v.built.Scene, v.oracle, v.previewSettings(termRenderer))

	var (
		mouseDown              bool
		lastMouseX, lastMouseY int
	)

	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				v.dirty = true

			case uv.KeyPressEvent:
				if quit := v.handleKey(ev, rt); quit {
					return nil
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					v.orbit.Impulse(-float64(dx)*0.3, float64(dy)*0.3)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					v.orbit.Zoom(0.9)
				case uv.MouseWheelDown:
					v.orbit.Zoom(1.1)
				}
			}

		case now := <-ticker.C:
			dt := min(now.Sub(lastFrame).Seconds(), 0.1)
			lastFrame = now

			moving := v.orbit.Moving()
			v.orbit.Update(dt)
			if !moving && !v.dirty {
				continue
			}
			v.orbit.Apply(cam)

			rt.SetSettings(v.previewSettings(termRenderer))
			stats := rt.Render()
			v.dirty = false
			v.full = false

			termRenderer.Render(rt.Framebuffer())
			if err := termRenderer.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
			v.hud.Frame(stats)
			v.hud.Render(width, height, rt.Settings())
		}
	}
}

// previewSettings sizes the render to the terminal. Subsampling is kept
// only for explicit full renders.
func (v *viewer) previewSettings(tr *render.TerminalRenderer) render.Settings {
	s := v.settings
	s.Width, s.Height = tr.FramebufferSize()
	if !v.full {
		s.Subsamples = 1
	}
	return s
}

// handleKey applies a key press. It reports whether the viewer should quit.
func (v *viewer) handleKey(ev uv.KeyPressEvent, rt *render.Raytracer) bool {
	const impulse = 1.5
	s := &v.settings

	switch {
	case ev.MatchString("escape", "ctrl+c"):
		return true
	case ev.MatchString("a", "left"):
		v.orbit.Impulse(-impulse, 0)
	case ev.MatchString("d", "right"):
		v.orbit.Impulse(impulse, 0)
	case ev.MatchString("w", "up"):
		v.orbit.Impulse(0, impulse)
	case ev.MatchString("s", "down"):
		v.orbit.Impulse(0, -impulse)
	case ev.MatchString("+", "="):
		v.orbit.Zoom(0.8)
	case ev.MatchString("-", "_"):
		v.orbit.Zoom(1.25)
	case ev.MatchString("r"):
		v.orbit.Reset()
	case ev.MatchString("enter"):
		v.full = true
	case ev.MatchString("1"):
		s.Phong = !s.Phong
	case ev.MatchString("2"):
		s.Shadows = !s.Shadows
	case ev.MatchString("3"):
		s.Mirrors = !s.Mirrors
	case ev.MatchString("4"):
		s.AllLights = !s.AllLights
	case ev.MatchString("5"):
		s.CorrectSpheres = !s.CorrectSpheres
	case ev.MatchString("["):
		s.MaxDepth = max(0, s.MaxDepth-1)
	case ev.MatchString("]"):
		s.MaxDepth++
	case ev.MatchString("n"):
		k := render.GridSize(s.Subsamples)%4 + 1
		s.Subsamples = k * k
		v.full = true
	case ev.MatchString("m"):
		if s.SampleScale == render.ScaleMean {
			s.SampleScale = render.ScaleSqrt
		} else {
			s.SampleScale = render.ScaleMean
		}
	case ev.MatchString("e"):
		v.export(rt.Camera())
	case ev.MatchString("?", "shift+/"):
		v.hud.show = !v.hud.show
	default:
		return false
	}
	v.dirty = true
	return false
}

// export renders the current view at the configured size and saves it.
func (v *viewer) export(cam *render.Camera) {
	shot := *cam
	rt := render.NewRaytracer(&shot, v.built.Scene, v.oracle, v.settings)
	stats := rt.Render()
	if err := rt.Framebuffer().SavePNG(v.output); err != nil {
		v.hud.Status(fmt.Sprintf("export failed: %v", err))
		return
	}
	v.hud.Status(fmt.Sprintf("saved %s (%s)", v.output, stats.Elapsed.Round(time.Millisecond)))
}
