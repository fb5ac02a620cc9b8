package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/measure"
	"github.com/spf13/cobra"
)

var (
	distCursor   []float64
	distObjects  []string
	distActive   string
	distFile     string
	distVertices []int
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Measure between the cursor, objects or mesh vertices",
	Long: `Measure a distance from a selection:
  no --object:            origin to --cursor
  one --object, --active: --cursor to that object
  two --object:           between the two objects
With --file and --vertices i,j the distance between two vertices of the model is measured instead.`,
	Example: `  govol distance --cursor 1,2,0
  govol distance --object Cube=1,2,2 --object Empty=4,6,2
  govol distance --file part.stl --vertices 0,7`,
	Args: cobra.NoArgs,
	RunE: runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	flags := distanceCmd.Flags()
	vectorFlag(flags, &distCursor, "cursor", "Cursor location")
	flags.StringArrayVar(&distObjects, "object", nil, "Selected object as name=x,y,z (repeatable)")
	flags.StringVar(&distActive, "active", "", "Name of the active object")
	flags.StringVar(&distFile, "file", "", "Model file for vertex distances")
	flags.IntSliceVar(&distVertices, "vertices", nil, "Two vertex indices i,j")

	distanceCmd.MarkFlagsRequiredTogether("file", "vertices")
}

func runDistance(cmd *cobra.Command, args []string) error {
	var (
		result measure.Result
		r      *report.DistanceReport
		err    error
	)

	if distFile != "" {
		result, r, err = vertexDistance(cmd)
	} else {
		result, r, err = selectionDistance()
	}
	if err != nil {
		return err
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	r.Kind = result.Kind.String()
	r.From = result.From
	r.To = result.To
	return printer.Print(r)
}

func vertexDistance(cmd *cobra.Command) (measure.Result, *report.DistanceReport, error) {
	if len(distVertices) != 2 {
		return measure.Result{}, nil, fmt.Errorf("--vertices needs exactly two indices, got %d", len(distVertices))
	}

	src, m, err := loadModel(cmd.Context(), distFile)
	if err != nil {
		return measure.Result{}, nil, err
	}

	result, err := measure.VertexDistance(worldMesh(src), distVertices[0], distVertices[1], geometry.UniformScaling(m.UnitScale))
	if err != nil {
		return measure.Result{}, nil, err
	}
	return result, &report.DistanceReport{Unit: m.Symbol, Distance: result.Distance}, nil
}

func selectionDistance() (measure.Result, *report.DistanceReport, error) {
	cursor, err := toVector("cursor", distCursor, geometry.Vector3{})
	if err != nil {
		return measure.Result{}, nil, err
	}

	scene := measure.Scene{Cursor: cursor}
	for _, spec := range distObjects {
		obj, err := parseObject(spec)
		if err != nil {
			return measure.Result{}, nil, err
		}
		scene.Selected = append(scene.Selected, obj)
	}
	if distActive != "" {
		for i := range scene.Selected {
			if scene.Selected[i].Name == distActive {
				scene.Active = &scene.Selected[i]
			}
		}
		if scene.Active == nil {
			return measure.Result{}, nil, fmt.Errorf("active object %q is not selected", distActive)
		}
	}

	result, err := measure.Distance(scene)
	if err != nil {
		return measure.Result{}, nil, err
	}

	m, err := cfg.Resolve(nil)
	if err != nil {
		return measure.Result{}, nil, err
	}
	return result, &report.DistanceReport{Unit: m.Symbol, Distance: result.Distance * m.UnitScale}, nil
}

// parseObject reads name=x,y,z
func parseObject(spec string) (measure.Object, error) {
	name, coords, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return measure.Object{}, fmt.Errorf("invalid object %q, expected name=x,y,z", spec)
	}

	parts := strings.Split(coords, ",")
	if len(parts) != 3 {
		return measure.Object{}, fmt.Errorf("invalid object %q, expected name=x,y,z", spec)
	}

	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return measure.Object{}, fmt.Errorf("invalid coordinate in %q: %w", spec, err)
		}
		v[i] = f
	}
	return measure.Object{Name: name, Location: geometry.NewVector3(v[0], v[1], v[2])}, nil
}
