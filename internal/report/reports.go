package report

// PartVolume is the measurement of one part
type PartVolume struct {
	Name   string  `json:"name" yaml:"name"`
	Volume float64 `json:"volume" yaml:"volume"`
	Area   float64 `json:"area" yaml:"area"`
	Closed bool    `json:"closed" yaml:"closed"`
}

// VolumeReport is the result of the volume command
type VolumeReport struct {
	File     string       `json:"file" yaml:"file"`
	Unit     string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	Parts    []PartVolume `json:"parts" yaml:"parts"`
	Total    float64      `json:"total" yaml:"total"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r *VolumeReport) writeText(t *textWriter) {
	t.line("File: %s", r.File)
	if len(r.Parts) > 1 {
		for _, part := range r.Parts {
			t.line("  %s: %s", part.Name, t.quantity(part.Volume, r.Unit, 3))
		}
	}
	t.line("Volume: %s", t.quantity(r.Total, r.Unit, 3))
	for _, w := range r.Warnings {
		t.line("Warning: %s", w)
	}
}

// InfoReport is the result of the info command
type InfoReport struct {
	File           string  `json:"file" yaml:"file"`
	Name           string  `json:"name,omitempty" yaml:"name,omitempty"`
	Unit           string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Vertices       int     `json:"vertices" yaml:"vertices"`
	Triangles      int     `json:"triangles" yaml:"triangles"`
	Edges          int     `json:"edges" yaml:"edges"`
	Closed         bool    `json:"closed" yaml:"closed"`
	BoundaryEdges  int     `json:"boundary_edges" yaml:"boundary_edges"`
	NonManifold    int     `json:"non_manifold_edges" yaml:"non_manifold_edges"`
	SurfaceArea    float64 `json:"surface_area" yaml:"surface_area"`
	SignedVolume   float64 `json:"signed_volume" yaml:"signed_volume"`
	Volume         float64 `json:"volume" yaml:"volume"`
	BoundingVolume float64 `json:"bounding_volume" yaml:"bounding_volume"`
	Min            Vector  `json:"min" yaml:"min"`
	Max            Vector  `json:"max" yaml:"max"`
	Center         Vector  `json:"center" yaml:"center"`
	Dimensions     Vector  `json:"dimensions" yaml:"dimensions"`
	Diagonal       float64 `json:"diagonal" yaml:"diagonal"`
	MinEdgeLength  float64 `json:"min_edge_length" yaml:"min_edge_length"`
	MaxEdgeLength  float64 `json:"max_edge_length" yaml:"max_edge_length"`
	AvgEdgeLength  float64 `json:"avg_edge_length" yaml:"avg_edge_length"`
}

func (r *InfoReport) writeText(t *textWriter) {
	t.title("Model Information")
	if r.Name != "" {
		t.line("Name: %s", r.Name)
	}
	t.line("File: %s", r.File)
	t.line("")

	t.line("Model Statistics:")
	t.line("  Vertices: %d", r.Vertices)
	t.line("  Triangles: %d", r.Triangles)
	t.line("  Edges: %d", r.Edges)
	t.line("  Closed: %t", r.Closed)
	if !r.Closed {
		t.line("  Boundary edges: %d", r.BoundaryEdges)
		t.line("  Non-manifold edges: %d", r.NonManifold)
	}
	t.line("  Surface Area: %s", t.quantity(r.SurfaceArea, r.Unit, 2))
	t.line("  Volume: %s", t.quantity(r.Volume, r.Unit, 3))
	t.line("  Signed Volume: %s", t.quantity(r.SignedVolume, r.Unit, 3))
	t.line("")

	t.line("Bounding Box:")
	t.line("  Min: %s", t.vector(r.Min))
	t.line("  Max: %s", t.vector(r.Max))
	t.line("  Center: %s", t.vector(r.Center))
	t.line("")

	t.line("Dimensions:")
	t.line("  Width (X): %s", t.quantity(r.Dimensions.X, r.Unit, 1))
	t.line("  Depth (Y): %s", t.quantity(r.Dimensions.Y, r.Unit, 1))
	t.line("  Height (Z): %s", t.quantity(r.Dimensions.Z, r.Unit, 1))
	t.line("  Diagonal: %s", t.quantity(r.Diagonal, r.Unit, 1))
	t.line("  Volume: %s", t.quantity(r.BoundingVolume, r.Unit, 3))
	t.line("")

	t.line("Edge Lengths:")
	t.line("  Minimum: %s", t.quantity(r.MinEdgeLength, r.Unit, 1))
	t.line("  Maximum: %s", t.quantity(r.MaxEdgeLength, r.Unit, 1))
	t.line("  Average: %s", t.quantity(r.AvgEdgeLength, r.Unit, 1))
}

// Edge is one listed edge
type Edge struct {
	Start  Vector  `json:"start" yaml:"start"`
	End    Vector  `json:"end" yaml:"end"`
	Length float64 `json:"length" yaml:"length"`
	Face   int     `json:"face" yaml:"face"`
}

// EdgesReport is the result of the edges command
type EdgesReport struct {
	Title     string  `json:"title" yaml:"title"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Total     int     `json:"total" yaml:"total"`
	MinLength float64 `json:"min_length" yaml:"min_length"`
	MaxLength float64 `json:"max_length" yaml:"max_length"`
	AvgLength float64 `json:"avg_length" yaml:"avg_length"`
	Edges     []Edge  `json:"edges" yaml:"edges"`
}

func (r *EdgesReport) writeText(t *textWriter) {
	t.title(r.Title)
	t.line("Total edges in model: %d", r.Total)
	t.line("Min edge length: %s", t.quantity(r.MinLength, r.Unit, 1))
	t.line("Max edge length: %s", t.quantity(r.MaxLength, r.Unit, 1))
	t.line("Avg edge length: %s", t.quantity(r.AvgLength, r.Unit, 1))
	t.line("")

	if len(r.Edges) == 0 {
		t.line("No edges found matching the criteria.")
		return
	}

	t.line("%-6s %-40s %-40s %s", "Index", "Start", "End", "Length")
	for i, e := range r.Edges {
		t.line("%-6d %-40s %-40s %s", i+1, t.vector(e.Start), t.vector(e.End), t.num(e.Length))
	}
}

// Triangle is one listed triangle
type Triangle struct {
	Index     int       `json:"index" yaml:"index"`
	Area      float64   `json:"area" yaml:"area"`
	Perimeter float64   `json:"perimeter" yaml:"perimeter"`
	Vertices  [3]Vector `json:"vertices" yaml:"vertices"`
}

// TrianglesReport is the result of the triangles command
type TrianglesReport struct {
	Title     string     `json:"title" yaml:"title"`
	Unit      string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Total     int        `json:"total" yaml:"total"`
	TotalArea float64    `json:"total_area" yaml:"total_area"`
	MinArea   float64    `json:"min_area" yaml:"min_area"`
	MaxArea   float64    `json:"max_area" yaml:"max_area"`
	AvgArea   float64    `json:"avg_area" yaml:"avg_area"`
	Triangles []Triangle `json:"triangles" yaml:"triangles"`
}

func (r *TrianglesReport) writeText(t *textWriter) {
	t.title(r.Title)
	t.line("Total triangles: %d", r.Total)
	t.line("Total surface area: %s", t.quantity(r.TotalArea, r.Unit, 2))
	t.line("Min triangle area: %s", t.quantity(r.MinArea, r.Unit, 2))
	t.line("Max triangle area: %s", t.quantity(r.MaxArea, r.Unit, 2))
	t.line("Avg triangle area: %s", t.quantity(r.AvgArea, r.Unit, 2))

	for _, tri := range r.Triangles {
		t.line("")
		t.line("Triangle #%d:", tri.Index)
		t.line("  Area: %s", t.quantity(tri.Area, r.Unit, 2))
		t.line("  Perimeter: %s", t.quantity(tri.Perimeter, r.Unit, 1))
		t.line("  Vertices: %s, %s, %s", t.vector(tri.Vertices[0]), t.vector(tri.Vertices[1]), t.vector(tri.Vertices[2]))
	}
}

// Point is a measured point and the model vertex closest to it
type Point struct {
	Position        Vector  `json:"position" yaml:"position"`
	Nearest         Vector  `json:"nearest_vertex" yaml:"nearest_vertex"`
	NearestDistance float64 `json:"nearest_distance" yaml:"nearest_distance"`
}

// MeasureReport is the result of the measure command
type MeasureReport struct {
	Unit           string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	From           Point   `json:"from" yaml:"from"`
	To             Point   `json:"to" yaml:"to"`
	Distance       float64 `json:"distance" yaml:"distance"`
	VertexDistance float64 `json:"vertex_distance" yaml:"vertex_distance"`
}

func (r *MeasureReport) writeText(t *textWriter) {
	t.title("Point-to-Point Measurement")

	for i, p := range []Point{r.From, r.To} {
		t.line("")
		t.line("Point %d: %s", i+1, t.vector(p.Position))
		if p.NearestDistance > 0 {
			t.line("  Nearest vertex: %s (distance: %s)", t.vector(p.Nearest), t.num(p.NearestDistance))
		}
	}

	t.line("")
	t.line("Direct distance: %s", t.quantity(r.Distance, r.Unit, 1))
	if r.From.NearestDistance > 0 || r.To.NearestDistance > 0 {
		t.line("Distance between nearest vertices: %s", t.quantity(r.VertexDistance, r.Unit, 1))
	}
}

// DistanceReport is the result of the distance command
type DistanceReport struct {
	Kind     string  `json:"kind" yaml:"kind"`
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Distance float64 `json:"distance" yaml:"distance"`
}

func (r *DistanceReport) writeText(t *textWriter) {
	t.line("Distance %s to %s: %s", r.From, r.To, t.quantity(r.Distance, r.Unit, 1))
}
