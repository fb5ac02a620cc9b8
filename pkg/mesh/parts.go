package mesh

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philipparndt/govol/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// Part is a named mesh placed in the world by a transform
type Part struct {
	Name      string
	Mesh      *Mesh
	Transform geometry.Transform
}

// PartVolume is the result of measuring one part
type PartVolume struct {
	Name   string
	Volume float64
	Area   float64
}

// ComputeVolumes measures independent parts concurrently with at most
// workers goroutines (GOMAXPROCS when workers <= 0). Results keep the input
// order. The first failure cancels the remaining parts and is returned with
// the part name attached.
func ComputeVolumes(ctx context.Context, parts []Part, unitScale float64, workers int) ([]PartVolume, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]PartVolume, len(parts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, part := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			volume, err := ComputeVolume(part.Mesh, part.Transform, unitScale)
			if err != nil {
				return fmt.Errorf("part %q: %w", part.Name, err)
			}
			area, err := SurfaceArea(part.Mesh, part.Transform, unitScale)
			if err != nil {
				return fmt.Errorf("part %q: %w", part.Name, err)
			}

			results[i] = PartVolume{Name: part.Name, Volume: volume, Area: area}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TotalVolume sums the signed volumes of measured parts
func TotalVolume(volumes []PartVolume) float64 {
	total := 0.0
	for _, v := range volumes {
		total += v.Volume
	}
	return total
}

// Merge places every part in world space and joins them into one mesh.
// Vertices are not welded across parts.
func Merge(parts []Part) *Mesh {
	out := New()
	for _, part := range parts {
		if part.Mesh == nil {
			continue
		}
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, transformVertices(part.Mesh.Vertices, part.Transform)...)
		for _, f := range part.Mesh.Faces {
			shifted := make(Face, len(f))
			for k, idx := range f {
				shifted[k] = idx + offset
			}
			out.Faces = append(out.Faces, shifted)
		}
	}
	return out
}
