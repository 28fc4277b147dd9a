package scene

import (
	"github.com/taigrr/raycast/pkg/math3d"
)

// Quad is a flat parallelogram spanned by two edge vectors from a corner.
type Quad struct {
	Name     string
	Corner   math3d.Vec3
	U, V     math3d.Vec3
	Material *Material

	normal math3d.Vec3
	d      float64     // Plane constant: normal · p = d
	w      math3d.Vec3 // normal / (normal · (U × V)), for planar coordinates
}

// NewQuad creates a quad. The normal is U × V.
func NewQuad(corner, u, v math3d.Vec3, material *Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Scale(1 / n.Dot(n)),
	}
}

// NewQuadCentered creates a quad of the given width (along u) and height
// (along v) centered on center.
func NewQuadCentered(center, u, v math3d.Vec3, width, height float64, material *Material) *Quad {
	eu := u.Normalize().Scale(width)
	ev := v.Normalize().Scale(height)
	corner := center.Sub(eu.Scale(0.5)).Sub(ev.Scale(0.5))
	return NewQuad(corner, eu, ev, material)
}

// Kind implements Object.
func (q *Quad) Kind() Kind { return KindGeneric }

// Position implements Object; a quad's origin is its center.
func (q *Quad) Position() math3d.Vec3 {
	return q.Corner.Add(q.U.Scale(0.5)).Add(q.V.Scale(0.5))
}

// Normal returns the unit face normal.
func (q *Quad) Normal() math3d.Vec3 { return q.normal }

// Bounds implements Object.
func (q *Quad) Bounds() AABB {
	return NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// Intersect implements Object. Rays arriving from behind the quad miss.
func (q *Quad) Intersect(ray math3d.Ray, hits []Hit) []Hit {
	denom := ray.Direction.Dot(q.normal)
	if denom > -1e-12 {
		return hits
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if t < 0 {
		return hits
	}

	p := ray.At(t)
	rel := p.Sub(q.Corner)
	alpha := q.w.Dot(rel.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(rel))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return hits
	}

	return append(hits, Hit{
		Point:    p,
		Distance: t,
		Normal:   q.normal,
		Object:   q,
		Material: q.Material,
	})
}
