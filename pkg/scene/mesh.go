package scene

import (
	"github.com/taigrr/raycast/pkg/math3d"
)

// Triangle is a single mesh face. Its normal follows the winding
// (V1-V0) × (V2-V0).
type Triangle struct {
	V0, V1, V2 math3d.Vec3
	Material   *Material

	owner  *Mesh
	normal math3d.Vec3
	bounds AABB
}

// NewTriangle creates a free-standing triangle.
func NewTriangle(v0, v1, v2 math3d.Vec3, material *Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	t.bounds = NewAABBFromPoints(v0, v1, v2)
	return t
}

// Kind implements Object.
func (t *Triangle) Kind() Kind { return KindGeneric }

// Position implements Object. A triangle inside a mesh reports the mesh
// origin, otherwise its centroid.
func (t *Triangle) Position() math3d.Vec3 {
	if t.owner != nil {
		return t.owner.Origin
	}
	return t.V0.Add(t.V1).Add(t.V2).Scale(1.0 / 3)
}

// Normal returns the unit face normal.
func (t *Triangle) Normal() math3d.Vec3 { return t.normal }

// Bounds implements Object.
func (t *Triangle) Bounds() AABB { return t.bounds }

// Intersect implements Object using the Möller-Trumbore algorithm.
// Back faces are culled.
func (t *Triangle) Intersect(ray math3d.Ray, hits []Hit) []Hit {
	const epsilon = 1e-12

	if ray.Direction.Dot(t.normal) > 0 {
		return hits
	}

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return hits // Parallel to the face
	}

	f := 1.0 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return hits
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return hits
	}

	dist := f * edge2.Dot(q)
	if dist < 0 {
		return hits
	}

	var owner Object = t
	if t.owner != nil {
		owner = t.owner
	}
	return append(hits, Hit{
		Point:    ray.At(dist),
		Distance: dist,
		Normal:   t.normal,
		Object:   owner,
		Material: t.Material,
	})
}

// Mesh is a triangle mesh placed in the world. Hits on any face report the
// mesh as their object.
type Mesh struct {
	Name      string
	Origin    math3d.Vec3
	Triangles []*Triangle

	bounds AABB
}

// NewMesh creates an empty mesh with its origin at pos.
func NewMesh(name string, pos math3d.Vec3) *Mesh {
	return &Mesh{Name: name, Origin: pos}
}

// AddTriangle appends a face given in world space.
func (m *Mesh) AddTriangle(v0, v1, v2 math3d.Vec3, material *Material) {
	t := NewTriangle(v0, v1, v2, material)
	t.owner = m
	if len(m.Triangles) == 0 {
		m.bounds = t.bounds
	} else {
		m.bounds = m.bounds.Union(t.bounds)
	}
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Kind implements Object.
func (m *Mesh) Kind() Kind { return KindGeneric }

// Position implements Object.
func (m *Mesh) Position() math3d.Vec3 { return m.Origin }

// Bounds implements Object.
func (m *Mesh) Bounds() AABB { return m.bounds }

// Intersect implements Object by testing every face.
func (m *Mesh) Intersect(ray math3d.Ray, hits []Hit) []Hit {
	if len(m.Triangles) == 0 || !m.bounds.Hit(ray, 0, maxDistance) {
		return hits
	}
	for _, t := range m.Triangles {
		hits = t.Intersect(ray, hits)
	}
	return hits
}

// Primitives implements Compound.
func (m *Mesh) Primitives() []Object {
	out := make([]Object, len(m.Triangles))
	for i, t := range m.Triangles {
		out[i] = t
	}
	return out
}

// NewBox creates an axis-aligned box mesh centered on center, with outward
// facing normals.
func NewBox(name string, center, size math3d.Vec3, material *Material) *Mesh {
	m := NewMesh(name, center)
	h := size.Scale(0.5)

	// Corners indexed by bit pattern: bit0=x, bit1=y, bit2=z (0=min, 1=max)
	var c [8]math3d.Vec3
	for i := range c {
		x, y, z := -h.X, -h.Y, -h.Z
		if i&1 != 0 {
			x = h.X
		}
		if i&2 != 0 {
			y = h.Y
		}
		if i&4 != 0 {
			z = h.Z
		}
		c[i] = center.Add(math3d.V3(x, y, z))
	}

	// Each face listed counter-clockwise when seen from outside.
	faces := [6][4]int{
		{1, 3, 7, 5}, // +X
		{0, 4, 6, 2}, // -X
		{2, 6, 7, 3}, // +Y
		{0, 1, 5, 4}, // -Y
		{4, 5, 7, 6}, // +Z
		{0, 2, 3, 1}, // -Z
	}
	for _, f := range faces {
		m.AddTriangle(c[f[0]], c[f[1]], c[f[2]], material)
		m.AddTriangle(c[f[0]], c[f[2]], c[f[3]], material)
	}
	return m
}
