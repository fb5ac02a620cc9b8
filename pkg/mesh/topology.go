package mesh

// edge is a directed edge between two vertex indices
type edge struct{ from, to int }

// TopologyReport summarises how well a mesh encloses a volume
type TopologyReport struct {
	Edges          int // distinct undirected edges
	BoundaryEdges  int // edges used by exactly one face
	NonManifold    int // edges used by more than two faces
	Inconsistent   int // directed edges used twice, i.e. neighbours wound in opposite directions
	DegenerateFace int // faces that repeat a vertex index
}

// Closed reports whether the mesh is a closed, consistently wound surface
func (r TopologyReport) Closed() bool {
	return r.BoundaryEdges == 0 && r.NonManifold == 0 && r.Inconsistent == 0
}

// CheckTopology inspects edge usage of a triangle mesh. It returns the same
// errors as Validate for malformed faces.
func CheckTopology(m *Mesh) (TopologyReport, error) {
	var report TopologyReport
	if err := m.Validate(); err != nil {
		return report, err
	}

	directed := make(map[edge]int, len(m.Faces)*3)
	undirected := make(map[edge]int, len(m.Faces)*3)

	for _, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			report.DegenerateFace++
		}
		for k := 0; k < 3; k++ {
			from, to := f[k], f[(k+1)%3]
			directed[edge{from, to}]++

			if from > to {
				from, to = to, from
			}
			undirected[edge{from, to}]++
		}
	}

	report.Edges = len(undirected)
	for _, count := range undirected {
		switch {
		case count == 1:
			report.BoundaryEdges++
		case count > 2:
			report.NonManifold++
		}
	}
	for _, count := range directed {
		if count > 1 {
			report.Inconsistent++
		}
	}

	return report, nil
}

// IsClosed reports whether every edge is shared by exactly two faces wound
// in opposite directions. Malformed meshes are never closed.
func IsClosed(m *Mesh) bool {
	report, err := CheckTopology(m)
	return err == nil && report.Closed()
}
