package main

import (
	"fmt"

	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/analysis"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in a model",
	Long:  "Find and measure edges, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)
	edgesCmd.ValidArgsFunction = completeModelFile

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")

	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) error {
	src, m, err := loadModel(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, err := analysis.AnalyzeModel(worldMesh(src), geometry.IdentityTransform(), m.UnitScale)
	if err != nil {
		return err
	}

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %g and %g (found %d)", edgesMinLength, edgesMaxLength, len(edges))
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
	}
	if len(edges) > edgesCount {
		edges = edges[:edgesCount]
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	r := &report.EdgesReport{
		Title:     title,
		Unit:      m.Symbol,
		Total:     result.EdgeCount,
		MinLength: result.MinEdgeLength,
		MaxLength: result.MaxEdgeLength,
		AvgLength: result.AvgEdgeLength,
		Edges:     make([]report.Edge, len(edges)),
	}
	for i, e := range edges {
		r.Edges[i] = report.Edge{
			Start:  report.VectorOf(e.Start),
			End:    report.VectorOf(e.End),
			Length: e.Length,
			Face:   e.FaceID,
		}
	}
	return printer.Print(r)
}
