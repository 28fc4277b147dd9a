// Package math3d provides 3D math primitives for the raycast renderer.
package math3d

import "math"

// Vec3 represents a 3D vector or point.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length.
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Reflect returns the reflection of a about the unit normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Axis returns the component along axis 0 (X), 1 (Y) or 2 (Z).
func (a Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}
