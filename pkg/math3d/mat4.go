package math3d

import "math"

// Mat4 is a 4x4 matrix stored in column-major order.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
type Mat4 [16]float64

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TRS composes translation * rotation(X, then Y, then Z, radians) * scale.
// This is the object-to-world transform used for placed meshes.
func TRS(t, rot, s Vec3) Mat4 {
	r := RotateZ(rot.Z).Mul(RotateY(rot.Y)).Mul(RotateX(rot.X))
	return Translate(t).Mul(r).Mul(Scale(s))
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulVec3 transforms a Vec3 as a point (w=1).
func (m Mat4) MulVec3(v Vec3) Vec3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) / w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) / w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) / w,
	}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
