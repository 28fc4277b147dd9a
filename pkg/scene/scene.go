// Package scene holds the objects, materials and lights a frame is
// rendered from, plus the intersection oracles that answer ray queries
// against them.
package scene

// Scene is a flat collection of objects and lights.
type Scene struct {
	Name    string
	Objects []Object
	Lights  []*Light
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// Add appends objects to the scene.
func (s *Scene) Add(objects ...Object) {
	s.Objects = append(s.Objects, objects...)
}

// AddLight appends lights to the scene.
func (s *Scene) AddLight(lights ...*Light) {
	s.Lights = append(s.Lights, lights...)
}

// PointLights returns every point light in scene order.
func (s *Scene) PointLights() []*Light {
	var out []*Light
	for _, l := range s.Lights {
		if l.Kind == LightPoint {
			out = append(out, l)
		}
	}
	return out
}

// FirstPointLight returns the first point light, if any.
func (s *Scene) FirstPointLight() (*Light, bool) {
	for _, l := range s.Lights {
		if l.Kind == LightPoint {
			return l, true
		}
	}
	return nil, false
}

// Spheres returns every sphere in scene order.
func (s *Scene) Spheres() []*Sphere {
	var out []*Sphere
	for _, o := range s.Objects {
		if sp, ok := o.(*Sphere); ok {
			out = append(out, sp)
		}
	}
	return out
}

// TriangleCount returns the number of mesh faces in the scene.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, o := range s.Objects {
		if m, ok := o.(*Mesh); ok {
			n += m.TriangleCount()
		}
	}
	return n
}

// Bounds returns the box around every object. ok is false for an empty scene.
func (s *Scene) Bounds() (b AABB, ok bool) {
	for i, o := range s.Objects {
		if i == 0 {
			b = o.Bounds()
			continue
		}
		b = b.Union(o.Bounds())
	}
	return b, len(s.Objects) > 0
}

// List returns a brute-force oracle over the scene.
func (s *Scene) List() *List {
	return NewList(s.Objects)
}

// BVH returns a hierarchy-backed oracle over the scene.
func (s *Scene) BVH() *BVH {
	return NewBVH(s.Objects)
}
