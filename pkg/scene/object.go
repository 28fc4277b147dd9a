package scene

import "github.com/taigrr/raycast/pkg/math3d"

// Kind is the geometry kind of an object as far as shading cares.
type Kind int

const (
	KindGeneric Kind = iota
	KindSphere
)

// Object is anything the intersection oracle can hit.
type Object interface {
	// Kind reports whether the object is a sphere.
	Kind() Kind
	// Position is the object's origin in world space.
	Position() math3d.Vec3
	// Bounds is the world-space bounding box.
	Bounds() AABB
	// Intersect appends every crossing of the ray with the object at
	// distance >= 0 to hits and returns the extended slice. Order is
	// unspecified; the oracle sorts.
	Intersect(ray math3d.Ray, hits []Hit) []Hit
}

// Compound is implemented by objects made of smaller primitives
// (triangle meshes). Acceleration structures index the primitives.
type Compound interface {
	Primitives() []Object
}

// Hit is one crossing of a ray with a surface. Hits are produced per query
// and never stored.
type Hit struct {
	Point    math3d.Vec3
	Distance float64     // Distance along the ray, >= 0
	Normal   math3d.Vec3 // Unit, world space
	Object   Object      // Owning object
	Material *Material   // nil when the surface has no material
}
