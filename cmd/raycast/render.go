package main

import (
	"fmt"
	"log"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/taigrr/raycast/pkg/render"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
)

func newRenderCmd() *cobra.Command {
	var (
		flags  sceneFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render one frame to a PNG file",
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

			rt := render.NewRaytracer(built.Camera, built.Scene, oracle, built.Settings)
			if flags.verbose {
				rt.SetLogger(log.New(cmd.ErrOrStderr(), "raycast: ", log.LstdFlags))
			}
			stats := rt.Render()

			if err := rt.Framebuffer().SavePNG(output); err != nil {
				return fmt.Errorf("save image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				okStyle.Render("✓"),
				name,
				labelStyle.Render("→"),
				output,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", labelStyle.Render("stats"), stats)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "raycast.png", "Output PNG path")
	return cmd
}
