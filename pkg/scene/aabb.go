package scene

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates the smallest AABB containing all points.
func NewAABBFromPoints(points ...math3d.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Union returns the box bounding both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Transform returns an AABB that bounds the original AABB after transformation.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]math3d.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
	for i := range corners {
		corners[i] = m.MulVec3(corners[i])
	}
	return NewAABBFromPoints(corners[:]...)
}

// Hit reports whether the ray passes through the box at any distance in
// [tMin, tMax], using the slab method.
func (b AABB) Hit(ray math3d.Ray, tMin, tMax float64) bool {
	for axis := range 3 {
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
		origin, dir := ray.Origin.Axis(axis), ray.Direction.Axis(axis)

		// Parallel to this slab: inside or never
		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		inv := 1.0 / dir
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
