package main

import (
	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/analysis"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points given in scene units.
The nearest model vertices to both points and their distance are reported too.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)
	measureCmd.ValidArgsFunction = completeModelFile

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	src, m, err := loadModel(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	scale := geometry.UniformScaling(m.UnitScale)
	world := worldMesh(src).Transformed(scale)

	p1 := scale.Apply(geometry.NewVector3(point1X, point1Y, point1Z))
	p2 := scale.Apply(geometry.NewVector3(point2X, point2Y, point2Z))

	_, nearest1, dist1 := analysis.FindNearestVertex(world, p1)
	_, nearest2, dist2 := analysis.FindNearestVertex(world, p2)

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	return printer.Print(&report.MeasureReport{
		Unit:           m.Symbol,
		From:           report.Point{Position: report.VectorOf(p1), Nearest: report.VectorOf(nearest1), NearestDistance: dist1},
		To:             report.Point{Position: report.VectorOf(p2), Nearest: report.VectorOf(nearest2), NearestDistance: dist2},
		Distance:       p1.Distance(p2),
		VertexDistance: nearest1.Distance(nearest2),
	})
}
