// Package measure computes distances and areas between selected scene
// elements: the 3D cursor, object origins, mesh vertices and faces.
package measure

import (
	"errors"
	"fmt"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
)

// ErrSelectionNotSupported is returned when the selection matches no measurement
var ErrSelectionNotSupported = errors.New("selection not supported")

// Object is a selectable scene object located at its origin
type Object struct {
	Name     string
	Location geometry.Vector3
}

// Scene is the selection state a distance is measured from
type Scene struct {
	Cursor   geometry.Vector3
	Selected []Object
	Active   *Object
}

// Kind identifies which pair of elements a distance was measured between
type Kind int

const (
	OriginToCursor Kind = iota
	CursorToObject
	ObjectToObject
	VertexToVertex
)

func (k Kind) String() string {
	switch k {
	case OriginToCursor:
		return "origin-cursor"
	case CursorToObject:
		return "cursor-object"
	case ObjectToObject:
		return "object-object"
	case VertexToVertex:
		return "vertex-vertex"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Result is a measured distance in scene units
type Result struct {
	Kind     Kind
	From     string
	To       string
	Distance float64
}

// Distance measures according to the selection:
//   - nothing selected: origin to cursor
//   - one selected object that is also active: cursor to object
//   - two selected objects: between their locations
//
// Any other selection returns ErrSelectionNotSupported.
func Distance(scene Scene) (Result, error) {
	switch len(scene.Selected) {
	case 0:
		return Result{
			Kind:     OriginToCursor,
			From:     "origin",
			To:       "cursor",
			Distance: scene.Cursor.Length(),
		}, nil

	case 1:
		obj := scene.Selected[0]
		if scene.Active == nil || scene.Active.Name != obj.Name {
			return Result{}, fmt.Errorf("%w: the selected object %q is not active", ErrSelectionNotSupported, obj.Name)
		}
		return Result{
			Kind:     CursorToObject,
			From:     "cursor",
			To:       obj.Name,
			Distance: obj.Location.Distance(scene.Cursor),
		}, nil

	case 2:
		a, b := scene.Selected[0], scene.Selected[1]
		return Result{
			Kind:     ObjectToObject,
			From:     a.Name,
			To:       b.Name,
			Distance: a.Location.Distance(b.Location),
		}, nil
	}

	return Result{}, fmt.Errorf("%w: %d objects selected", ErrSelectionNotSupported, len(scene.Selected))
}

// VertexDistance measures between two mesh vertices after mapping them through t
func VertexDistance(m *mesh.Mesh, i, j int, t geometry.Transform) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("%w: mesh is nil", mesh.ErrInvalidInput)
	}
	for _, idx := range []int{i, j} {
		if idx < 0 || idx >= len(m.Vertices) {
			return Result{}, fmt.Errorf("%w: vertex %d of %d", mesh.ErrInvalidInput, idx, len(m.Vertices))
		}
	}

	a, b := t.Apply(m.Vertices[i]), t.Apply(m.Vertices[j])
	return Result{
		Kind:     VertexToVertex,
		From:     fmt.Sprintf("v%d", i),
		To:       fmt.Sprintf("v%d", j),
		Distance: a.Distance(b),
	}, nil
}

// FaceArea sums the areas of the selected faces after mapping them through t
func FaceArea(m *mesh.Mesh, faces []int, t geometry.Transform) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	area := 0.0
	for _, fi := range faces {
		if fi < 0 || fi >= len(m.Faces) {
			return 0, fmt.Errorf("%w: face %d of %d", mesh.ErrInvalidInput, fi, len(m.Faces))
		}
		f := m.Faces[fi]
		tri := geometry.Triangle{
			V1: t.Apply(m.Vertices[f[0]]),
			V2: t.Apply(m.Vertices[f[1]]),
			V3: t.Apply(m.Vertices[f[2]]),
		}
		area += tri.Area()
	}
	return area, nil
}
