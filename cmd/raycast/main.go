// raycast - Whitted-style ray caster for the terminal and PNG files.
//
// Usage:
//
//	raycast render [scene.json] -o out.png   Render a frame to a PNG file
//	raycast view [scene.json]                Interactive terminal preview
//
// Without a scene file the built-in scene is used.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "raycast",
		Short: "Ray cast 3D scenes with Phong shading, shadows and mirrors",
		Long: `raycast renders spheres, boxes, quads and glTF meshes with per-light Phong
shading, hard shadows and recursive mirror reflection.

Scenes are JSON files; without one the built-in scene is rendered.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newViewCmd())
	return root
}
