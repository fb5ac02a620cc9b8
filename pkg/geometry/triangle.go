package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the normal vector for the triangle from its winding
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// TripleProduct returns (V1 × V2) · V3, six times the signed volume of the
// tetrahedron spanned by the origin and the triangle.
func (t Triangle) TripleProduct() float64 {
	return t.V1.Cross(t.V2).Dot(t.V3)
}

// SignedVolume returns the signed volume of the tetrahedron formed by the
// origin and the triangle. Summed over a closed, outward-wound surface
// these add up to the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return t.TripleProduct() / 6.0
}

// Flipped returns the triangle with reversed winding and negated normal
func (t Triangle) Flipped() Triangle {
	return Triangle{
		Normal: t.Normal.Mul(-1),
		V1:     t.V1,
		V2:     t.V3,
		V3:     t.V2,
	}
}

// Transformed maps every vertex through tr and recomputes the normal
func (t Triangle) Transformed(tr Transform) Triangle {
	out := Triangle{
		V1: tr.Apply(t.V1),
		V2: tr.Apply(t.V2),
		V3: tr.Apply(t.V3),
	}
	out.Normal = out.CalculateNormal()
	return out
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}
