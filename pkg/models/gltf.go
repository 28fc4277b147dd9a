package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/raycast/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// SkipMaterials leaves every face without a material so the caller's
	// fallback material is used.
	SkipMaterials bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{}
}

// LoadGLB loads a .glb or .gltf file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(filepath.Base(path), doc)
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh(name)

	if !l.SkipMaterials {
		for i, m := range doc.Materials {
			mesh.Materials = append(mesh.Materials, convertMaterial(i, m))
		}
	}

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("no triangles in %s", name)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func convertMaterial(i int, m *gltf.Material) Material {
	out := Material{
		Name:      m.Name,
		BaseColor: [4]float64{1, 1, 1, 1},
		Metallic:  1,
		Roughness: 1,
	}
	if out.Name == "" {
		out.Name = fmt.Sprintf("material%d", i)
	}
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		out.BaseColor = pbr.BaseColorFactorOrDefault()
		out.Metallic = pbr.MetallicFactorOrDefault()
		out.Roughness = pbr.RoughnessFactorOrDefault()
	}
	return out
}

// processMesh extracts triangles from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Lines and points have no surface to hit
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		material := -1
		if prim.Material != nil && !l.SkipMaterials {
			material = *prim.Material
		}

		baseVertex := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])),
			})
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		// GLTF front faces wind counter-clockwise, which matches the face
		// normal convention of scene.Triangle.
		for i := 0; i+2 < len(indices); i += 3 {
			face := Face{Material: material}
			for k := range 3 {
				idx := int(indices[i+k])
				if idx >= len(positions) {
					return fmt.Errorf("index %d out of range (%d vertices)", idx, len(positions))
				}
				face.V[k] = baseVertex + idx
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}

	return nil
}
