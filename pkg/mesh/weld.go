package mesh

import "github.com/philipparndt/govol/pkg/geometry"

// FromTriangles builds an indexed mesh from a triangle soup, merging
// vertices whose coordinates are exactly equal. Triangle order and winding
// are preserved.
func FromTriangles(triangles []geometry.Triangle) *Mesh {
	m := &Mesh{
		Vertices: make([]geometry.Vector3, 0, len(triangles)),
		Faces:    make([]Face, 0, len(triangles)),
	}

	index := make(map[geometry.Vector3]int, len(triangles))
	lookup := func(v geometry.Vector3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := m.AddVertex(v)
		index[v] = i
		return i
	}

	for _, tri := range triangles {
		m.Faces = append(m.Faces, Face{lookup(tri.V1), lookup(tri.V2), lookup(tri.V3)})
	}

	return m
}
