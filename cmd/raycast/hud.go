package main

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/taigrr/raycast/pkg/render"
)

var (
	hudBase   = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Foreground(lipgloss.Color("#ffffff"))
	hudTitle  = hudBase.Bold(true)
	hudStat   = hudBase.Foreground(lipgloss.Color("#5fd7ff"))
	hudOn     = hudBase.Foreground(lipgloss.Color("#5fd75f"))
	hudOff    = hudBase.Foreground(lipgloss.Color("#6c6c6c"))
	hudStatus = hudBase.Foreground(lipgloss.Color("#ffd75f")).Bold(true)
)

// hud is the overlay with scene info, render stats and setting toggles.
type hud struct {
	name      string
	objects   int
	triangles int
	show      bool

	last      render.RenderStats
	status    string
	statusExp time.Time
}

func newHUD(name string, objects, triangles int) *hud {
	return &hud{name: name, objects: objects, triangles: triangles, show: true}
}

// Frame records the stats of the frame just drawn.
func (h *hud) Frame(stats render.RenderStats) {
	h.last = stats
}

// Status shows a transient message on the bottom row.
func (h *hud) Status(msg string) {
	h.status = msg
	h.statusExp = time.Now().Add(3 * time.Second)
}

func toggle(label string, on bool) string {
	if on {
		return hudOn.Render("[✓] " + label)
	}
	return hudOff.Render("[ ] " + label)
}

// Render draws the HUD rows directly to the terminal.
func (h *hud) Render(width, height int, s render.Settings) {
	const clearLine = "\x1b[2K"
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	bottom := ""
	if h.status != "" && time.Now().Before(h.statusExp) {
		bottom = hudStatus.Render(" " + h.status + " ")
	} else if h.show {
		bottom = strings.Join([]string{
			toggle("phong", s.Phong),
			toggle("shadows", s.Shadows),
			toggle("mirrors", s.Mirrors),
			toggle("all lights", s.AllLights),
			toggle("spheres", s.CorrectSpheres),
			hudBase.Render(fmt.Sprintf("depth %d  spp %d  %s", s.MaxDepth, s.Subsamples, s.SampleScale)),
		}, hudBase.Render(" "))
	}
	fmt.Print(moveTo(height, 1) + bottom)

	if !h.show {
		return
	}

	// Top left: frame time
	fmt.Print(moveTo(1, 1) + hudStat.Render(fmt.Sprintf(" %s ", h.last.Elapsed.Round(time.Millisecond))))

	// Top middle: scene name
	titleCol := max((width-lipgloss.Width(h.name)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + hudTitle.Render(" "+h.name+" "))

	// Top right: scene size
	size := fmt.Sprintf(" %d objects, %d tris ", h.objects, h.triangles)
	fmt.Print(moveTo(1, max(width-lipgloss.Width(size)+1, 1)) + hudStat.Render(size))
}
