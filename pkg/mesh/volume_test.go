package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestComputeVolumeUnitCube(t *testing.T) {
	volume, err := ComputeVolume(unitCube(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, volume, tolerance)
}

func TestComputeVolumeTetrahedron(t *testing.T) {
	volume, err := ComputeVolume(tetrahedron(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, volume, tolerance)
}

func TestComputeVolumeReversedWinding(t *testing.T) {
	cube := unitCube()
	moved := geometry.Translation(geometry.NewVector3(0.3, -2.5, 7))

	outward, err := ComputeVolume(cube, moved, 1.0)
	require.NoError(t, err)
	inward, err := ComputeVolume(cube.FlipWinding(), moved, 1.0)
	require.NoError(t, err)

	assert.Equal(t, -outward, inward)
	assert.Less(t, inward, 0.0)
}

func TestComputeVolumeScalesCubically(t *testing.T) {
	base, err := ComputeVolume(tetrahedron(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)

	for _, k := range []float64{0.5, 2, 3.7, 10} {
		scaled, err := ComputeVolume(tetrahedron(), geometry.UniformScaling(k), 1.0)
		require.NoError(t, err)
		assert.InDelta(t, base*k*k*k, scaled, tolerance*k*k*k, "k=%v", k)
	}
}

func TestComputeVolumeNonUniformScale(t *testing.T) {
	volume, err := ComputeVolume(unitCube(), geometry.Scaling(2, 3, 4), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, volume, tolerance)
}

func TestComputeVolumeTranslationInvariant(t *testing.T) {
	transforms := []geometry.Transform{
		geometry.Translation(geometry.NewVector3(100, 0, 0)),
		geometry.Translation(geometry.NewVector3(-3, 5, 11)),
		geometry.RotationZ(0.7).Then(geometry.Translation(geometry.NewVector3(1, 2, 3))),
	}
	for _, tr := range transforms {
		volume, err := ComputeVolume(unitCube(), tr, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, volume, 1e-9)
	}
}

func TestComputeVolumeMirrorFlipsSign(t *testing.T) {
	volume, err := ComputeVolume(unitCube(), geometry.Scaling(-1, 1, 1), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, volume, tolerance)
}

func TestComputeVolumeUnitScale(t *testing.T) {
	volume, err := ComputeVolume(unitCube(), geometry.IdentityTransform(), 0.9144)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(0.9144, 3), volume, tolerance)
	assert.InDelta(t, 0.7645, volume, 1e-4)
}

func TestComputeVolumeEmptyMesh(t *testing.T) {
	volume, err := ComputeVolume(New(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, volume)
}

func TestComputeVolumeQuadFace(t *testing.T) {
	m := unitCube()
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddFace(0, 1, 8, 3)

	volume, err := ComputeVolume(m, geometry.IdentityTransform(), 1.0)
	assert.ErrorIs(t, err, ErrUnsupportedTopology)
	assert.Zero(t, volume)
}

func TestComputeVolumeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		mesh  *Mesh
		tr    geometry.Transform
		scale float64
	}{
		{"nil mesh", nil, geometry.IdentityTransform(), 1},
		{"zero scale", unitCube(), geometry.IdentityTransform(), 0},
		{"negative scale", unitCube(), geometry.IdentityTransform(), -1},
		{"NaN scale", unitCube(), geometry.IdentityTransform(), math.NaN()},
		{"infinite scale", unitCube(), geometry.IdentityTransform(), math.Inf(1)},
		{"NaN transform", unitCube(), geometry.UniformScaling(math.NaN()), 1},
		{"index out of range", &Mesh{
			Vertices: []geometry.Vector3{{}, {X: 1}},
			Faces:    []Face{{0, 1, 2}},
		}, geometry.IdentityTransform(), 1},
		{"NaN vertex", &Mesh{
			Vertices: []geometry.Vector3{{}, {X: 1}, {Y: math.NaN()}},
			Faces:    []Face{{0, 1, 2}},
		}, geometry.IdentityTransform(), 1},
		{"infinite vertex", &Mesh{
			Vertices: []geometry.Vector3{{}, {X: math.Inf(-1)}, {Y: 1}},
			Faces:    []Face{{0, 1, 2}},
		}, geometry.IdentityTransform(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeVolume(tt.mesh, tt.tr, tt.scale)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComputeVolumeDoesNotMutate(t *testing.T) {
	m := unitCube()
	before := m.Clone()

	_, err := ComputeVolume(m, geometry.UniformScaling(5).Then(geometry.Translation(geometry.NewVector3(1, 1, 1))), 2.0)
	require.NoError(t, err)

	assert.Equal(t, before, m)
}

func TestComputeVolumeIdempotent(t *testing.T) {
	m := tetrahedron()
	tr := geometry.RotationX(0.3).Then(geometry.Translation(geometry.NewVector3(0.1, 0.2, 0.3)))

	first, err := ComputeVolume(m, tr, 0.0254)
	require.NoError(t, err)
	second, err := ComputeVolume(m, tr, 0.0254)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))
}

func TestSurfaceArea(t *testing.T) {
	area, err := SurfaceArea(unitCube(), geometry.IdentityTransform(), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, tolerance)

	area, err = SurfaceArea(unitCube(), geometry.UniformScaling(2), 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, tolerance)
}

func TestSurfaceAreaNonFiniteVertex(t *testing.T) {
	m := unitCube()
	m.Vertices[3] = geometry.NewVector3(math.NaN(), 0, 0)

	_, err := SurfaceArea(m, geometry.IdentityTransform(), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSurfaceAreaQuadFace(t *testing.T) {
	m := New()
	for i := 0; i < 4; i++ {
		m.AddVertex(geometry.NewVector3(float64(i), 0, 0))
	}
	m.AddFace(0, 1, 2, 3)

	_, err := SurfaceArea(m, geometry.IdentityTransform(), 1.0)
	assert.ErrorIs(t, err, ErrUnsupportedTopology)
}
