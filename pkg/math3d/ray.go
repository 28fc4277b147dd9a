package math3d

// Ray is a half-line with an origin and a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
