package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/measure"
	"github.com/spf13/cobra"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
	triFaces    []int
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles in a model",
	Long: `Display information about triangles including area, perimeter, and vertex positions.
With --faces only the given triangles are listed and their summed area is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)
	trianglesCmd.ValidArgsFunction = completeModelFile

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
	trianglesCmd.Flags().IntSliceVar(&triFaces, "faces", nil, "Triangle indices to select")

	trianglesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	src, m, err := loadModel(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	world := worldMesh(src)
	scale := geometry.UniformScaling(m.UnitScale)

	placed, err := world.Transformed(scale).Triangles()
	if err != nil {
		return err
	}

	var selected []int
	title := ""
	if len(triFaces) > 0 {
		area, err := measure.FaceArea(world, triFaces, scale)
		if err != nil {
			return err
		}
		logger.Debug("selected faces", "count", len(triFaces), "area", area)
		selected = triFaces
		title = fmt.Sprintf("%d Selected Triangles", len(triFaces))
	} else {
		selected = make([]int, len(placed))
		for i := range selected {
			selected[i] = i
		}
	}

	r := &report.TrianglesReport{
		Unit:      m.Symbol,
		Total:     len(selected),
		MinArea:   math.MaxFloat64,
		Triangles: make([]report.Triangle, 0, len(selected)),
	}
	for _, i := range selected {
		tri := placed[i]
		area := tri.Area()

		r.Triangles = append(r.Triangles, report.Triangle{
			Index:     i,
			Area:      area,
			Perimeter: tri.Perimeter(),
			Vertices:  [3]report.Vector{report.VectorOf(tri.V1), report.VectorOf(tri.V2), report.VectorOf(tri.V3)},
		})

		r.TotalArea += area
		r.MinArea = math.Min(r.MinArea, area)
		r.MaxArea = math.Max(r.MaxArea, area)
	}
	if len(selected) == 0 {
		r.MinArea = 0
	} else {
		r.AvgArea = r.TotalArea / float64(len(selected))
	}

	switch {
	case triLargest:
		sort.SliceStable(r.Triangles, func(i, j int) bool { return r.Triangles[i].Area > r.Triangles[j].Area })
	case triSmallest:
		sort.SliceStable(r.Triangles, func(i, j int) bool { return r.Triangles[i].Area < r.Triangles[j].Area })
	}
	if len(r.Triangles) > triCount {
		r.Triangles = r.Triangles[:triCount]
	}

	if title == "" {
		switch {
		case triLargest:
			title = fmt.Sprintf("Top %d Largest Triangles", len(r.Triangles))
		case triSmallest:
			title = fmt.Sprintf("Top %d Smallest Triangles", len(r.Triangles))
		default:
			title = fmt.Sprintf("First %d Triangles", len(r.Triangles))
		}
	}
	r.Title = title

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return printer.Print(r)
}
