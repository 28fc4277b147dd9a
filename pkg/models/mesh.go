// Package models provides 3D model loading for the raycast renderer.
package models

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Mesh represents an imported triangle mesh with per-face materials.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds the vertex attributes the ray caster needs. Shading
// uses face normals, so only positions are kept.
type MeshVertex struct {
	Position math3d.Vec3
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the PBR description found in the source file.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
	Metallic  float64    // 0 = dielectric, 1 = metal
	Roughness float64    // 0 = smooth, 1 = rough
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it so its largest
// dimension equals size.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	s := m.Size()
	maxDim := math.Max(s.X, math.Max(s.Y, s.Z))
	if maxDim <= 0 {
		return
	}
	k := size / maxDim
	m.Transform(math3d.ScaleUniform(k).Mul(math3d.Translate(m.Center().Scale(-1))))
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// Phong converts a PBR material to the renderer's Phong material.
// Polished metals become mirrors whose reflectivity grows with smoothness.
func (mat Material) Phong() *scene.Material {
	base := scene.RGB(mat.BaseColor[0], mat.BaseColor[1], mat.BaseColor[2])
	gloss := 1 - mat.Roughness

	out := scene.NewMaterial(mat.Name, base)
	out.Specular = scene.RGB(0.04, 0.04, 0.04).Lerp(base, mat.Metallic)
	out.Shininess = 1 + gloss*gloss*127
	if mat.Metallic >= 0.9 && mat.Roughness <= 0.2 {
		out.Mirror = true
		out.Reflectivity = mat.Metallic * gloss
	}
	return out
}

// ToScene builds a world-space scene mesh. transform places the model;
// fallback shades faces that carry no material (may be nil).
func (m *Mesh) ToScene(transform math3d.Mat4, fallback *scene.Material) *scene.Mesh {
	out := scene.NewMesh(m.Name, transform.Translation())

	mats := make([]*scene.Material, len(m.Materials))
	for i, mat := range m.Materials {
		mats[i] = mat.Phong()
	}

	// A mirroring transform reverses winding, which would turn every face
	// away from the viewer once back faces are culled.
	x := transform.MulVec3Dir(math3d.V3(1, 0, 0))
	y := transform.MulVec3Dir(math3d.V3(0, 1, 0))
	z := transform.MulVec3Dir(math3d.V3(0, 0, 1))
	mirrored := x.Cross(y).Dot(z) < 0

	for _, f := range m.Faces {
		mat := fallback
		if f.Material >= 0 && f.Material < len(mats) {
			mat = mats[f.Material]
		}
		v0 := transform.MulVec3(m.Vertices[f.V[0]].Position)
		v1 := transform.MulVec3(m.Vertices[f.V[1]].Position)
		v2 := transform.MulVec3(m.Vertices[f.V[2]].Position)
		if mirrored {
			v1, v2 = v2, v1
		}
		out.AddTriangle(v0, v1, v2, mat)
	}
	return out
}
