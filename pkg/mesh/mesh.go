// Package mesh holds indexed triangle meshes and the measurements taken on
// them: signed volume, surface area and closed-ness checks.
package mesh

import (
	"fmt"

	"github.com/philipparndt/govol/pkg/geometry"
)

// Face is an ordered list of vertex indices. The order defines the winding
// and therefore the sign of the face's volume contribution.
type Face []int

// Mesh is a set of vertices plus faces referencing them by index
type Mesh struct {
	Vertices []geometry.Vector3
	Faces    []Face
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face referencing existing vertices
func (m *Mesh) AddFace(indices ...int) {
	face := make(Face, len(indices))
	copy(face, indices)
	m.Faces = append(m.Faces, face)
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]geometry.Vector3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	for i, f := range m.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

// Transformed returns a copy of the mesh with every vertex mapped through t.
// Faces are shared with the receiver; neither mesh is modified afterwards.
func (m *Mesh) Transformed(t geometry.Transform) *Mesh {
	return &Mesh{
		Vertices: transformVertices(m.Vertices, t),
		Faces:    m.Faces,
	}
}

// FlipWinding returns a copy of the mesh with every face's winding reversed
func (m *Mesh) FlipWinding() *Mesh {
	out := m.Clone()
	for _, f := range out.Faces {
		for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
			f[i], f[j] = f[j], f[i]
		}
	}
	return out
}

// BoundingBox returns the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}

// Validate checks that every vertex is finite and every face is a triangle
// referencing existing vertices
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: mesh is nil", ErrInvalidInput)
	}
	if err := m.checkVertices(); err != nil {
		return err
	}
	for i, f := range m.Faces {
		if err := m.checkFace(i, f); err != nil {
			return err
		}
	}
	return nil
}

// Triangles returns the faces as geometry triangles with computed normals
func (m *Mesh) Triangles() ([]geometry.Triangle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	triangles := make([]geometry.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		tri := geometry.Triangle{
			V1: m.Vertices[f[0]],
			V2: m.Vertices[f[1]],
			V3: m.Vertices[f[2]],
		}
		tri.Normal = tri.CalculateNormal()
		triangles = append(triangles, tri)
	}
	return triangles, nil
}

func (m *Mesh) checkVertices() error {
	for i, v := range m.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d has non-finite coordinates %v", ErrInvalidInput, i, v)
		}
	}
	return nil
}

func (m *Mesh) checkFace(i int, f Face) error {
	if len(f) != 3 {
		return fmt.Errorf("%w: face %d has %d vertices, expected 3", ErrUnsupportedTopology, i, len(f))
	}
	for _, idx := range f {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidInput, i, idx, len(m.Vertices))
		}
	}
	return nil
}

func transformVertices(vertices []geometry.Vector3, t geometry.Transform) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(vertices))
	for i, v := range vertices {
		out[i] = t.Apply(v)
	}
	return out
}
