package main

import (
	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/analysis"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model",
	Long:  "Show comprehensive information including dimensions, volume, surface area, closedness and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.ValidArgsFunction = completeModelFile
}

func runInfo(cmd *cobra.Command, args []string) error {
	src, m, err := loadModel(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, err := analysis.AnalyzeModel(worldMesh(src), geometry.IdentityTransform(), m.UnitScale)
	if err != nil {
		return err
	}
	if !result.Closed {
		logger.Warn("model is not a closed surface, its volume is not physical",
			"boundary_edges", result.Topology.BoundaryEdges,
			"non_manifold_edges", result.Topology.NonManifold,
			"inconsistent_edges", result.Topology.Inconsistent)
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	return printer.Print(&report.InfoReport{
		File:           src.Path,
		Name:           src.Name,
		Unit:           m.Symbol,
		Vertices:       result.VertexCount,
		Triangles:      result.TriangleCount,
		Edges:          result.Topology.Edges,
		Closed:         result.Closed,
		BoundaryEdges:  result.Topology.BoundaryEdges,
		NonManifold:    result.Topology.NonManifold,
		SurfaceArea:    result.SurfaceArea,
		SignedVolume:   result.SignedVolume,
		Volume:         result.Volume,
		BoundingVolume: result.BoundingVolume,
		Min:            report.VectorOf(result.BoundingBox.Min),
		Max:            report.VectorOf(result.BoundingBox.Max),
		Center:         report.VectorOf(result.BoundingBox.Center()),
		Dimensions:     report.VectorOf(result.Dimensions),
		Diagonal:       result.BoundingBox.Diagonal(),
		MinEdgeLength:  result.MinEdgeLength,
		MaxEdgeLength:  result.MaxEdgeLength,
		AvgEdgeLength:  result.AvgEdgeLength,
	})
}
