package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box returns an outward-wound axis-aligned box from the origin to size
func box(size geometry.Vector3) *mesh.Mesh {
	m := mesh.New()
	for i := 0; i < 8; i++ {
		m.AddVertex(geometry.NewVector3(
			float64(i&1)*size.X,
			float64((i>>1)&1)*size.Y,
			float64((i>>2)&1)*size.Z,
		))
	}
	// vertex i has x = bit 0, y = bit 1, z = bit 2
	for _, f := range [][3]int{
		{0, 2, 1}, {1, 2, 3}, // z = 0
		{4, 5, 6}, {5, 7, 6}, // z = 1
		{0, 1, 4}, {1, 5, 4}, // y = 0
		{2, 6, 3}, {3, 6, 7}, // y = 1
		{0, 4, 2}, {2, 4, 6}, // x = 0
		{1, 3, 5}, {3, 7, 5}, // x = 1
	} {
		m.AddFace(f[0], f[1], f[2])
	}
	return m
}

func TestAnalyzeModel(t *testing.T) {
	result, err := AnalyzeModel(box(geometry.NewVector3(3, 4, 12)), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)

	assert.InDelta(t, 144.0, result.SignedVolume, 1e-9)
	assert.InDelta(t, 144.0, result.Volume, 1e-9)
	assert.InDelta(t, 144.0, result.BoundingVolume, 1e-9)
	assert.InDelta(t, 2*(12+36+48), result.SurfaceArea, 1e-9)
	assert.True(t, result.Closed)
	assert.Equal(t, 8, result.VertexCount)
	assert.Equal(t, 12, result.TriangleCount)
	assert.Equal(t, 36, result.EdgeCount)
	assert.Equal(t, geometry.NewVector3(3, 4, 12), result.Dimensions)
	assert.InDelta(t, 3.0, result.MinEdgeLength, 1e-12)
	assert.InDelta(t, math.Sqrt(4*4+12*12), result.MaxEdgeLength, 1e-12)
}

func TestAnalyzeModelUnitScaleAndTransform(t *testing.T) {
	m := box(geometry.NewVector3(1, 1, 1))
	tr := geometry.Translation(geometry.NewVector3(5, 0, 0))

	result, err := AnalyzeModel(m, tr, 10)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, result.Volume, 1e-6)
	assert.InDelta(t, 600.0, result.SurfaceArea, 1e-6)
	assert.Equal(t, geometry.NewVector3(50, 0, 0), result.BoundingBox.Min)
	assert.InDelta(t, 10.0, result.MinEdgeLength, 1e-9)
}

func TestAnalyzeModelInwardWinding(t *testing.T) {
	result, err := AnalyzeModel(box(geometry.NewVector3(1, 2, 3)).FlipWinding(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)

	assert.InDelta(t, -6.0, result.SignedVolume, 1e-9)
	assert.InDelta(t, 6.0, result.Volume, 1e-9)
}

func TestAnalyzeModelRejectsQuads(t *testing.T) {
	m := box(geometry.NewVector3(1, 1, 1))
	m.AddFace(0, 1, 3, 2)

	_, err := AnalyzeModel(m, geometry.IdentityTransform(), 1.0)
	assert.ErrorIs(t, err, mesh.ErrUnsupportedTopology)
}

func TestAnalyzeEmptyModel(t *testing.T) {
	result, err := AnalyzeModel(mesh.New(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)
	assert.Zero(t, result.Volume)
	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MinEdgeLength)
}

func TestFindEdges(t *testing.T) {
	result, err := AnalyzeModel(box(geometry.NewVector3(1, 2, 3)), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)

	longest := FindLongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.GreaterOrEqual(t, longest[0].Length, longest[1].Length)
	assert.InDelta(t, math.Sqrt(13), longest[0].Length, 1e-12)

	shortest := FindShortestEdges(result, 1)
	require.Len(t, shortest, 1)
	assert.InDelta(t, 1.0, shortest[0].Length, 1e-12)

	assert.Len(t, FindLongestEdges(result, 1000), result.EdgeCount)
	assert.Empty(t, FindShortestEdges(result, -1))

	for _, e := range FindEdgesByLength(result, 1.5, 2.1) {
		assert.InDelta(t, 2.0, e.Length, 1e-12)
	}
}

func TestFindNearestVertex(t *testing.T) {
	idx, v, d := FindNearestVertex(box(geometry.NewVector3(1, 1, 1)), geometry.NewVector3(0.9, 0.1, 1.2))
	assert.Equal(t, 5, idx)
	assert.Equal(t, geometry.NewVector3(1, 0, 1), v)
	assert.InDelta(t, math.Sqrt(0.01+0.01+0.04), d, 1e-12)

	idx, _, _ = FindNearestVertex(mesh.New(), geometry.Vector3{})
	assert.Equal(t, -1, idx)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500000 mm", FormatMeasurement(1.5, "mm"))
	assert.Equal(t, "2.000000 units", FormatMeasurement(2, ""))
	assert.Equal(t, "(1.000000, 2.000000, 3.000000)", FormatVector(geometry.NewVector3(1, 2, 3)))
}
