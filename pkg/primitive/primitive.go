// Package primitive tessellates simple solids into closed triangle meshes
// using the sdfx signed-distance-field kernel.
package primitive

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
)

// DefaultCells is the marching cubes resolution along the longest axis
const DefaultCells = 100

// ErrInvalidShape is returned for non-positive dimensions or an unknown shape
var ErrInvalidShape = errors.New("invalid shape")

// Shape names a supported solid
type Shape string

const (
	Box      Shape = "box"
	Sphere   Shape = "sphere"
	Cylinder Shape = "cylinder"
)

// Spec describes a solid to tessellate. Box uses Size; Sphere uses Radius;
// Cylinder uses Radius and Height. All solids are centered on the origin.
type Spec struct {
	Shape  Shape
	Size   geometry.Vector3
	Radius float64
	Height float64
	Cells  int
}

// Triangles tessellates the solid into an outward-wound triangle soup
func Triangles(spec Spec) ([]geometry.Triangle, error) {
	s, err := solid(spec)
	if err != nil {
		return nil, err
	}

	cells := spec.Cells
	if cells <= 0 {
		cells = DefaultCells
	}

	rendered := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	triangles := make([]geometry.Triangle, 0, len(rendered))
	for _, tri := range rendered {
		t := geometry.Triangle{
			V1: fromVec(tri[0]),
			V2: fromVec(tri[1]),
			V3: fromVec(tri[2]),
		}
		if t.Area() == 0 {
			continue
		}
		t.Normal = t.CalculateNormal()
		triangles = append(triangles, t)
	}
	return triangles, nil
}

// Mesh tessellates the solid into an indexed mesh
func Mesh(spec Spec) (*mesh.Mesh, error) {
	triangles, err := Triangles(spec)
	if err != nil {
		return nil, err
	}
	return mesh.FromTriangles(triangles), nil
}

func solid(spec Spec) (sdf.SDF3, error) {
	var (
		s   sdf.SDF3
		err error
	)

	switch spec.Shape {
	case Box:
		if spec.Size.X <= 0 || spec.Size.Y <= 0 || spec.Size.Z <= 0 {
			return nil, fmt.Errorf("%w: box size must be positive, got %v", ErrInvalidShape, spec.Size)
		}
		s, err = sdf.Box3D(v3.Vec{X: spec.Size.X, Y: spec.Size.Y, Z: spec.Size.Z}, 0)
	case Sphere:
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere radius must be positive, got %v", ErrInvalidShape, spec.Radius)
		}
		s, err = sdf.Sphere3D(spec.Radius)
	case Cylinder:
		if spec.Radius <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("%w: cylinder radius and height must be positive", ErrInvalidShape)
		}
		s, err = sdf.Cylinder3D(spec.Height, spec.Radius, 0)
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidShape, spec.Shape)
	}

	if err != nil {
		return nil, fmt.Errorf("sdfx %s: %w", spec.Shape, err)
	}
	return s, nil
}

func fromVec(v v3.Vec) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}
