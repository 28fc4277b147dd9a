package scene

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// Sphere is an analytic sphere.
type Sphere struct {
	Name     string
	Center   math3d.Vec3
	Radius   float64
	Material *Material
}

// NewSphere creates a sphere.
func NewSphere(center math3d.Vec3, radius float64, material *Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Kind implements Object.
func (s *Sphere) Kind() Kind { return KindSphere }

// Position implements Object; a sphere's origin is its center.
func (s *Sphere) Position() math3d.Vec3 { return s.Center }

// Bounds implements Object.
func (s *Sphere) Bounds() AABB {
	r := math3d.V3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Roots solves |o + t*d - c|^2 = r^2 for t. ok is false when the
// discriminant is negative. near <= far.
func (s *Sphere) Roots(ray math3d.Ray) (near, far float64, ok bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, 0, false
	}

	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

// Intersect implements Object. Only front faces are reported: a crossing
// whose outward normal points along the ray is culled, so a ray leaving the
// surface never re-hits it. Roots gives the raw crossings for callers that
// need the far wall.
func (s *Sphere) Intersect(ray math3d.Ray, hits []Hit) []Hit {
	near, far, ok := s.Roots(ray)
	if !ok {
		return hits
	}
	for _, t := range [2]float64{near, far} {
		if t < 0 {
			continue
		}
		p := ray.At(t)
		n := p.Sub(s.Center).Normalize()
		if ray.Direction.Dot(n) > 0 {
			continue
		}
		hits = append(hits, Hit{
			Point:    p,
			Distance: t,
			Normal:   n,
			Object:   s,
			Material: s.Material,
		})
		if near == far {
			break
		}
	}
	return hits
}
