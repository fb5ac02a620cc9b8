package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// MeasurementResult contains the measurements of one mesh. Lengths, areas
// and volumes are already multiplied by the unit scale.
type MeasurementResult struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SignedVolume   float64
	Volume         float64
	BoundingVolume float64
	SurfaceArea    float64
	Topology       mesh.TopologyReport
	Closed         bool
	VertexCount    int
	TriangleCount  int
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	AllEdges       []EdgeInfo
}

// AnalyzeModel measures a mesh placed by t, with every length multiplied by unitScale
func AnalyzeModel(m *mesh.Mesh, t geometry.Transform, unitScale float64) (*MeasurementResult, error) {
	signed, err := mesh.ComputeVolume(m, t, unitScale)
	if err != nil {
		return nil, err
	}
	area, err := mesh.SurfaceArea(m, t, unitScale)
	if err != nil {
		return nil, err
	}
	topology, err := mesh.CheckTopology(m)
	if err != nil {
		return nil, err
	}

	placed := m.Transformed(t.Then(geometry.UniformScaling(unitScale)))

	result := &MeasurementResult{
		BoundingBox:   placed.BoundingBox(),
		SignedVolume:  signed,
		Volume:        math.Abs(signed),
		SurfaceArea:   area,
		Topology:      topology,
		Closed:        topology.Closed(),
		VertexCount:   len(m.Vertices),
		TriangleCount: m.FaceCount(),
		AllEdges:      make([]EdgeInfo, 0, m.FaceCount()*3),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.BoundingVolume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, f := range placed.Faces {
		for k := 0; k < 3; k++ {
			start, end := placed.Vertices[f[k]], placed.Vertices[f[(k+1)%3]]
			length := start.Distance(end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:  start,
				End:    end,
				Length: length,
				FaceID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result, nil
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FindNearestVertex finds the vertex of the mesh nearest to a given point
func FindNearestVertex(m *mesh.Mesh, point geometry.Vector3) (int, geometry.Vector3, float64) {
	nearest := -1
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for i, vertex := range m.Vertices {
		if distance := point.Distance(vertex); distance < minDistance {
			minDistance = distance
			nearestVertex = vertex
			nearest = i
		}
	}

	return nearest, nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
