package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", a.Add(b), NewVector3(5, 7, 9)},
		{"sub", b.Sub(a), NewVector3(3, 3, 3)},
		{"mul", a.Mul(-2), NewVector3(-2, -4, -6)},
		{"cross x y", NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)), NewVector3(0, 0, 1)},
		{"cross y x", NewVector3(0, 1, 0).Cross(NewVector3(1, 0, 0)), NewVector3(0, 0, -1)},
		{"cross parallel", a.Cross(a.Mul(3)), Vector3{}},
		{"min", NewVector3(1, 7, -3).Min(NewVector3(2, 5, -4)), NewVector3(1, 5, -4)},
		{"max", NewVector3(1, 7, -3).Max(NewVector3(2, 5, -4)), NewVector3(2, 7, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestVector3Scalars(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"dot", NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)), 32},
		{"dot orthogonal", NewVector3(1, 0, 0).Dot(NewVector3(0, 0, 9)), 0},
		{"length", NewVector3(3, 4, 0).Length(), 5},
		{"length zero", Vector3{}.Length(), 0},
		{"distance", NewVector3(1, 1, 1).Distance(NewVector3(4, 5, 1)), 5},
		{"distance symmetric", NewVector3(4, 5, 1).Distance(NewVector3(1, 1, 1)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-12)
		})
	}
}

func TestVector3Normalize(t *testing.T) {
	n := NewVector3(3, 4, 0).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestVector3Vec3Conversion(t *testing.T) {
	tests := []Vector3{
		{},
		NewVector3(1, 2, 3),
		NewVector3(-0.5, 1e9, -1e-9),
	}

	for _, v := range tests {
		converted := v.Vec3()
		assert.Equal(t, vec3.T{v.X, v.Y, v.Z}, converted)
		assert.Equal(t, v, FromVec3(converted))
	}
}

func TestVector3IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want bool
	}{
		{"zero", Vector3{}, true},
		{"regular", NewVector3(1, -2, 3.5), true},
		{"largest", NewVector3(math.MaxFloat64, -math.MaxFloat64, 0), true},
		{"NaN", NewVector3(0, math.NaN(), 0), false},
		{"positive infinity", NewVector3(math.Inf(1), 0, 0), false},
		{"negative infinity", NewVector3(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.IsFinite())
		})
	}
}
