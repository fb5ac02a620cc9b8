package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFaceCopiesIndices(t *testing.T) {
	m := New()
	indices := []int{0, 1, 2}
	m.AddFace(indices...)
	indices[0] = 9

	assert.Equal(t, Face{0, 1, 2}, m.Faces[0])
	assert.Equal(t, 1, m.FaceCount())
}

func TestCloneIsDeep(t *testing.T) {
	m := tetrahedron()
	c := m.Clone()
	c.Vertices[0] = geometry.NewVector3(9, 9, 9)
	c.Faces[0][0] = 3

	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Vertices[0])
	assert.Equal(t, 0, m.Faces[0][0])
}

func TestTransformedLeavesOriginal(t *testing.T) {
	m := unitCube()
	moved := m.Transformed(geometry.Translation(geometry.NewVector3(1, 0, 0)))

	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Vertices[0])
	assert.Equal(t, geometry.NewVector3(1, 0, 0), moved.Vertices[0])
	assert.Equal(t, geometry.NewVector3(2, 1, 1), moved.BoundingBox().Max)
}

func TestFlipWinding(t *testing.T) {
	m := tetrahedron()
	flipped := m.FlipWinding()

	assert.Equal(t, Face{1, 2, 0}, flipped.Faces[0])
	assert.Equal(t, Face{0, 2, 1}, m.Faces[0])
}

func TestValidate(t *testing.T) {
	require.NoError(t, unitCube().Validate())

	var nilMesh *Mesh
	assert.ErrorIs(t, nilMesh.Validate(), ErrInvalidInput)

	m := tetrahedron()
	m.AddFace(0, 1)
	assert.ErrorIs(t, m.Validate(), ErrUnsupportedTopology)

	m = tetrahedron()
	m.AddFace(0, 1, -1)
	assert.ErrorIs(t, m.Validate(), ErrInvalidInput)

	m = tetrahedron()
	m.Vertices[2].Z = math.Inf(1)
	assert.ErrorIs(t, m.Validate(), ErrInvalidInput)
}

func TestTriangles(t *testing.T) {
	triangles, err := unitCube().Triangles()
	require.NoError(t, err)
	require.Len(t, triangles, 12)

	// Bottom face points down
	assert.Equal(t, geometry.NewVector3(0, 0, -1), triangles[0].Normal)

	total := 0.0
	for _, tri := range triangles {
		total += tri.SignedVolume()
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}
