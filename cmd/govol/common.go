package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/govol/internal/config"
	"github.com/philipparndt/govol/internal/loader"
	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// loadModel reads a model file and resolves the unit scale for it
func loadModel(ctx context.Context, path string) (*loader.Source, config.Measure, error) {
	src, err := loader.New(logger).Load(ctx, path)
	if err != nil {
		return nil, config.Measure{}, err
	}

	m, err := cfg.Resolve(src.Unit)
	if err != nil {
		return nil, config.Measure{}, err
	}
	logger.Debug("unit scale", "scale", m.UnitScale, "unit", m.Symbol, "system", m.Scene.System)
	return src, m, nil
}

// worldMesh joins all parts of a source into one mesh in world space
func worldMesh(src *loader.Source) *mesh.Mesh {
	if len(src.Parts) == 1 && src.Parts[0].Transform.IsIdentity() {
		return src.Parts[0].Mesh
	}
	return mesh.Merge(src.Parts)
}

func newPrinter(cmd *cobra.Command) (*report.Printer, error) {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return report.NewPrinter(cmd.OutOrStdout(), format, cfg.Output.Precision, cfg.Language()), nil
}

// vectorFlag registers a flag taking x,y,z
func vectorFlag(fs *pflag.FlagSet, p *[]float64, name, usage string) {
	fs.Float64SliceVar(p, name, nil, usage+" (x,y,z)")
}

// toVector converts a vector flag value; unset flags yield def
func toVector(name string, values []float64, def geometry.Vector3) (geometry.Vector3, error) {
	switch len(values) {
	case 0:
		return def, nil
	case 3:
		return geometry.NewVector3(values[0], values[1], values[2]), nil
	}
	return geometry.Vector3{}, fmt.Errorf("--%s needs three comma-separated values, got %d", name, len(values))
}
