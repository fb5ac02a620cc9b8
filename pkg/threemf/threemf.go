// Package threemf reads 3MF packages into placed, indexed meshes.
package threemf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hpinc/go3mf"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/philipparndt/govol/pkg/units"
)

// ErrUnsupportedObject is returned for build items that do not reference a mesh object
var ErrUnsupportedObject = errors.New("unsupported 3MF object")

// Document is the measurable content of a 3MF package
type Document struct {
	Unit  units.Unit
	Parts []mesh.Part
}

// Load decodes a 3MF file. Each build item becomes one part whose transform
// is the item's placement; the referenced object's mesh is shared, not copied.
func Load(filename string) (*Document, error) {
	r, err := go3mf.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open 3MF file: %w", err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode 3MF file: %w", err)
	}

	return fromModel(&model)
}

func fromModel(model *go3mf.Model) (*Document, error) {
	unit, err := unitFromName(model.Units.String())
	if err != nil {
		return nil, err
	}
	doc := &Document{Unit: unit}

	meshes := make(map[uint32]*mesh.Mesh)
	names := make(map[uint32]string)
	for _, obj := range model.Resources.Objects {
		names[obj.ID] = objectName(obj)
		if obj.Mesh != nil {
			meshes[obj.ID] = convertMesh(obj.Mesh)
		}
	}

	if len(model.Build.Items) == 0 {
		for _, obj := range model.Resources.Objects {
			if m, ok := meshes[obj.ID]; ok {
				doc.Parts = append(doc.Parts, mesh.Part{Name: names[obj.ID], Mesh: m})
			}
		}
		return doc, nil
	}

	for i, item := range model.Build.Items {
		m, ok := meshes[item.ObjectID]
		if !ok {
			return nil, fmt.Errorf("%w: build item %d references object %d without a mesh", ErrUnsupportedObject, i, item.ObjectID)
		}
		doc.Parts = append(doc.Parts, mesh.Part{
			Name:      names[item.ObjectID],
			Mesh:      m,
			Transform: convertMatrix(item.Transform),
		})
	}

	return doc, nil
}

func objectName(obj *go3mf.Object) string {
	if obj.Name != "" {
		return obj.Name
	}
	return fmt.Sprintf("object-%d", obj.ID)
}

func convertMesh(src *go3mf.Mesh) *mesh.Mesh {
	m := &mesh.Mesh{
		Vertices: make([]geometry.Vector3, len(src.Vertices.Vertex)),
		Faces:    make([]mesh.Face, len(src.Triangles.Triangle)),
	}
	for i, v := range src.Vertices.Vertex {
		m.Vertices[i] = geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
	}
	for i, t := range src.Triangles.Triangle {
		m.Faces[i] = mesh.Face{int(t.V1), int(t.V2), int(t.V3)}
	}
	return m
}

// convertMatrix maps a 3MF item transform onto a geometry transform. 3MF
// stores the matrix for row vectors, so m[12..14] hold the translation and
// m[0], m[4], m[8] form the first row of the linear part for column vectors.
func convertMatrix(m go3mf.Matrix) geometry.Transform {
	if m == (go3mf.Matrix{}) {
		return geometry.IdentityTransform()
	}
	return geometry.NewTransform([3][3]float64{
		{float64(m[0]), float64(m[4]), float64(m[8])},
		{float64(m[1]), float64(m[5]), float64(m[9])},
		{float64(m[2]), float64(m[6]), float64(m[10])},
	}, geometry.NewVector3(float64(m[12]), float64(m[13]), float64(m[14])))
}

// unitFromName maps the 3MF unit attribute onto a length unit
func unitFromName(name string) (units.Unit, error) {
	switch strings.ToLower(name) {
	case "", "millimeter":
		return units.Millimeter, nil
	case "micron":
		return units.Micrometer, nil
	case "centimeter":
		return units.Centimeter, nil
	case "inch":
		return units.Inch, nil
	case "foot":
		return units.Foot, nil
	case "meter":
		return units.Meter, nil
	}
	return units.Unit{}, fmt.Errorf("%w: %q", units.ErrUnknownUnit, name)
}
