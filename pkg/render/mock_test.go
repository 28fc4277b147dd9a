package render

import (
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// mockOracle answers queries from a script: call i returns script[i], and
// calls past the end return nothing.
type mockOracle struct {
	script [][]scene.Hit
	rays   []math3d.Ray
}

func (m *mockOracle) Intersect(ray math3d.Ray) []scene.Hit {
	i := len(m.rays)
	m.rays = append(m.rays, ray)
	if i < len(m.script) {
		return m.script[i]
	}
	return nil
}

// mockObject is a bare object for hits produced by mockOracle.
type mockObject struct {
	pos  math3d.Vec3
	kind scene.Kind
}

func (o *mockObject) Kind() scene.Kind { return o.kind }
func (o *mockObject) Position() math3d.Vec3 { return o.pos }
func (o *mockObject) Bounds() scene.AABB { return scene.NewAABB(o.pos, o.pos) }
func (o *mockObject) Intersect(_ math3d.Ray, hits []scene.Hit) []scene.Hit { return hits }

// flatHit is a hit at the origin facing +Y.
func flatHit(m *scene.Material, dist float64) scene.Hit {
	return scene.Hit{
		Point:    math3d.Zero3(),
		Distance: dist,
		Normal:   math3d.Up(),
		Object:   &mockObject{},
		Material: m,
	}
}

// testCamera looks down -Z at the origin from (0, 0, 5).
func testCamera() *Camera {
	cam := NewCamera()
	cam.SetPosition(math3d.V3(0, 0, 5))
	cam.LookAt(math3d.Zero3())
	return cam
}

func colorNear(a, b scene.Color, eps float64) bool {
	d := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}
