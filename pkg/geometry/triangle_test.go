package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rightTriangle has legs 3 and 4 in the XY plane, wound counter-clockwise
func rightTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

// unitCorner spans the three unit points; with the origin it bounds a tetrahedron of volume 1/6
func unitCorner() Triangle {
	return NewTriangle(
		NewVector3(1, 1, 1).Normalize(),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)
}

func TestTriangleMeasures(t *testing.T) {
	tri := rightTriangle()

	assert.InDelta(t, 6.0, tri.Area(), 1e-12)
	assert.InDelta(t, 12.0, tri.Perimeter(), 1e-12)
	assert.Equal(t, [3]float64{3, 5, 4}, tri.EdgeLengths())
	assert.Equal(t, NewVector3(1, 4.0/3.0, 0), tri.Center())
	assertVecInDelta(t, NewVector3(0, 0, 1), tri.CalculateNormal())
}

func TestTriangleSignedVolume(t *testing.T) {
	tri := unitCorner()

	assert.InDelta(t, 1.0, tri.TripleProduct(), 1e-12)
	assert.InDelta(t, 1.0/6.0, tri.SignedVolume(), 1e-12)

	// A triangle through the origin encloses nothing
	assert.Zero(t, rightTriangle().SignedVolume())
}

func TestTriangleFlipped(t *testing.T) {
	tri := unitCorner()
	flipped := tri.Flipped()

	assert.Equal(t, -tri.SignedVolume(), flipped.SignedVolume())
	assert.Equal(t, tri.Normal.Mul(-1), flipped.Normal)
	assert.InDelta(t, tri.Area(), flipped.Area(), 1e-12)
	assert.Equal(t, tri, flipped.Flipped())
}

func TestTriangleTransformed(t *testing.T) {
	tests := []struct {
		name       string
		tr         Transform
		areaFactor float64
		volume     float64
		normal     Vector3
	}{
		{"identity", IdentityTransform(), 1, 0, NewVector3(0, 0, 1)},
		{"lifted", Translation(NewVector3(0, 0, 2)), 1, 4, NewVector3(0, 0, 1)},
		{"scaled and lifted", UniformScaling(2).Then(Translation(NewVector3(0, 0, 1))), 4, 8, NewVector3(0, 0, 1)},
		{"mirrored", Scaling(-1, 1, 1).Then(Translation(NewVector3(0, 0, 1))), 1, -2, NewVector3(0, 0, -1)},
		{"rotated about x", RotationX(-math.Pi / 2), 1, 0, NewVector3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := rightTriangle().Transformed(tt.tr)
			assert.InDelta(t, 6.0*tt.areaFactor, out.Area(), 1e-9)
			assert.InDelta(t, tt.volume, out.SignedVolume(), 1e-9)
			assertVecInDelta(t, tt.normal, out.Normal)
		})
	}
}
