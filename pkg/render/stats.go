package render

import (
	"fmt"
	"time"
)

// Logger receives progress messages from a render. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// RenderStats counts the work done by one frame.
type RenderStats struct {
	Pixels         int           // Pixels written
	PrimaryRays    int           // Camera rays cast
	OracleQueries  int           // Intersection queries of every kind
	ShadowRays     int           // Occlusion tests toward lights
	ReflectionRays int           // Mirror bounces cast
	SphereRoots    int           // Spheres re-shaded by the correction pass
	Elapsed        time.Duration // Wall time of the frame
}

// RaysPerSecond returns oracle throughput for the frame.
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.OracleQueries) / s.Elapsed.Seconds()
}

// String implements fmt.Stringer.
func (s RenderStats) String() string {
	return fmt.Sprintf("%d px, %d primary, %d shadow, %d reflection rays in %s",
		s.Pixels, s.PrimaryRays, s.ShadowRays, s.ReflectionRays, s.Elapsed.Round(time.Millisecond))
}
