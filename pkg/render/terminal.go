package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Display is a terminal screen that can push its buffered cells out.
// *uv.Terminal satisfies it.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer draws framebuffers onto a terminal, two pixel rows per
// cell row.
type TerminalRenderer struct {
	screen Display
	cols   int
	rows   int
}

// NewTerminalRenderer creates a renderer for a terminal of cols x rows cells.
func NewTerminalRenderer(screen Display, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions that fill the terminal.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render draws the framebuffer into the screen buffer.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.screen, uv.Rect(0, 0, t.cols, t.rows))
}

// Flush writes pending cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.screen.Display()
}

// Draw converts the framebuffer to terminal cells and draws them on the
// screen.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
