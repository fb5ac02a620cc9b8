package geometry

import (
	"math"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec4"
)

// Transform is an affine map (linear part plus translation) such as an
// object-to-world placement. The zero value is the identity.
type Transform struct {
	m mat4.T // column-major, m[col][row]
}

// matrix returns the backing matrix, mapping the zero value to the identity
func (t Transform) matrix() mat4.T {
	if t.m == (mat4.T{}) {
		return mat4.Ident
	}
	return t.m
}

// IdentityTransform returns the transform that leaves every point unchanged
func IdentityTransform() Transform {
	return Transform{m: mat4.Ident}
}

// NewTransform builds a transform from a row-major 3x3 linear part and a translation
func NewTransform(linear [3][3]float64, translation Vector3) Transform {
	var m mat4.T
	for col := 0; col < 3; col++ {
		m[col] = vec4.T{linear[0][col], linear[1][col], linear[2][col], 0}
	}
	m[3] = vec4.T{translation.X, translation.Y, translation.Z, 1}
	return Transform{m: m}
}

// Translation returns a pure translation by v
func Translation(v Vector3) Transform {
	m := mat4.Ident
	t := v.Vec3()
	m.SetTranslation(&t)
	return Transform{m: m}
}

// Scaling returns a per-axis scale about the origin
func Scaling(x, y, z float64) Transform {
	return NewTransform([3][3]float64{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}, Vector3{})
}

// UniformScaling returns a scale by k on all axes
func UniformScaling(k float64) Transform {
	return Scaling(k, k, k)
}

// RotationX returns a right-handed rotation about the X axis
func RotationX(radians float64) Transform {
	s, c := math.Sincos(radians)
	return NewTransform([3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}, Vector3{})
}

// RotationY returns a right-handed rotation about the Y axis
func RotationY(radians float64) Transform {
	s, c := math.Sincos(radians)
	return NewTransform([3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}, Vector3{})
}

// RotationZ returns a right-handed rotation about the Z axis
func RotationZ(radians float64) Transform {
	s, c := math.Sincos(radians)
	return NewTransform([3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}, Vector3{})
}

// Apply maps a point through the transform
func (t Transform) Apply(v Vector3) Vector3 {
	m := t.matrix()
	p := v.Vec3()
	return FromVec3(m.MulVec3(&p))
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	first, second := t.matrix(), next.matrix()
	var out mat4.T
	for col := range out {
		out[col] = second.MulVec4(&first[col])
	}
	return Transform{m: out}
}

// Linear returns the row-major 3x3 linear part
func (t Transform) Linear() [3][3]float64 {
	m := t.matrix()
	var l [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			l[row][col] = m[col][row]
		}
	}
	return l
}

// TranslationPart returns the translation applied after the linear part
func (t Transform) TranslationPart() Vector3 {
	m := t.matrix()
	return Vector3{X: m[3][0], Y: m[3][1], Z: m[3][2]}
}

// Determinant returns the determinant of the linear part. Volumes scale by
// this factor; a negative value means the transform mirrors.
func (t Transform) Determinant() float64 {
	l := t.Linear()
	return l[0][0]*(l[1][1]*l[2][2]-l[1][2]*l[2][1]) -
		l[0][1]*(l[1][0]*l[2][2]-l[1][2]*l[2][0]) +
		l[0][2]*(l[1][0]*l[2][1]-l[1][1]*l[2][0])
}

// IsIdentity reports whether the transform is exactly the identity
func (t Transform) IsIdentity() bool {
	return t.matrix() == mat4.Ident
}

// IsFinite reports whether every coefficient is a finite number
func (t Transform) IsFinite() bool {
	for _, col := range t.m {
		for _, c := range col {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
