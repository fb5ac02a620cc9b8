package mesh

import (
	"fmt"
	"math"

	"github.com/philipparndt/govol/pkg/geometry"
)

// ComputeVolume returns the signed volume enclosed by a closed triangle mesh.
//
// Every vertex is mapped through t into a private copy before summation, so
// m is never modified. Each face contributes (a × b) · c, six times the
// signed volume of the tetrahedron spanned by the origin and the face. The
// sum is divided by six and multiplied by unitScale³, where unitScale is the
// length of one scene unit in the target unit (1 for no conversion).
//
// Outward winding gives a positive result and inward winding the negated
// one; no absolute value is taken. For open or self-intersecting surfaces
// the value is well defined but is not a physical volume.
//
// A face with other than three vertices aborts the computation with
// ErrUnsupportedTopology. A nil mesh, a non-finite vertex, an out-of-range
// index or a unit scale that is not a positive finite number yields
// ErrInvalidInput.
func ComputeVolume(m *Mesh, t geometry.Transform, unitScale float64) (float64, error) {
	if err := checkInputs(m, t, unitScale); err != nil {
		return 0, err
	}

	vertices := transformVertices(m.Vertices, t)

	sum := 0.0
	for i, f := range m.Faces {
		if err := m.checkFace(i, f); err != nil {
			return 0, err
		}
		sum += tripleProduct(vertices, f)
	}

	return sum / 6.0 * unitScale * unitScale * unitScale, nil
}

// SurfaceArea returns the total area of all faces after mapping the vertices
// through t, scaled by unitScale². It validates its inputs like ComputeVolume.
func SurfaceArea(m *Mesh, t geometry.Transform, unitScale float64) (float64, error) {
	if err := checkInputs(m, t, unitScale); err != nil {
		return 0, err
	}

	vertices := transformVertices(m.Vertices, t)

	area := 0.0
	for i, f := range m.Faces {
		if err := m.checkFace(i, f); err != nil {
			return 0, err
		}
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		area += b.Sub(a).Cross(c.Sub(a)).Length() / 2.0
	}

	return area * unitScale * unitScale, nil
}

// tripleProduct returns (a × b) · c for a triangle face. The product is
// invariant under cyclic rotation, so the face is rotated to start at its
// lowest vertex index and evaluated as a · (b × c). Reversing the winding
// then negates the result bit for bit.
func tripleProduct(vertices []geometry.Vector3, f Face) float64 {
	i0, i1, i2 := f[0], f[1], f[2]
	switch {
	case i1 < i0 && i1 <= i2:
		i0, i1, i2 = i1, i2, i0
	case i2 < i0 && i2 < i1:
		i0, i1, i2 = i2, i0, i1
	}
	a, b, c := vertices[i0], vertices[i1], vertices[i2]
	return a.Dot(b.Cross(c))
}

func checkInputs(m *Mesh, t geometry.Transform, unitScale float64) error {
	if m == nil {
		return fmt.Errorf("%w: mesh is nil", ErrInvalidInput)
	}
	if unitScale <= 0 || math.IsNaN(unitScale) || math.IsInf(unitScale, 0) {
		return fmt.Errorf("%w: unit scale must be a positive finite number, got %v", ErrInvalidInput, unitScale)
	}
	if !t.IsFinite() {
		return fmt.Errorf("%w: transform has non-finite coefficients", ErrInvalidInput)
	}
	return m.checkVertices()
}
