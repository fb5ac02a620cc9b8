package main

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/philipparndt/govol/internal/config"
	"github.com/philipparndt/govol/internal/loader"
	"github.com/philipparndt/govol/internal/report"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/philipparndt/govol/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	volScale     float64
	volTranslate []float64
	volRotateZ   float64
	volAbs       bool
	volWatch     bool
	volWorkers   int
)

var volumeCmd = &cobra.Command{
	Use:   "volume [file]",
	Short: "Compute the signed volume of a model",
	Long: `Compute the volume enclosed by a closed triangle mesh. Outward-facing
triangles give a positive volume, inward-facing ones a negative volume.
Multi-part 3MF files report every build item and their sum.`,
	Args: cobra.ExactArgs(1),
	RunE: runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	volumeCmd.ValidArgsFunction = completeModelFile

	flags := volumeCmd.Flags()
	flags.Float64Var(&volScale, "scale", 1.0, "Uniform scale applied to the model")
	vectorFlag(flags, &volTranslate, "translate", "Translation applied after scaling and rotation")
	flags.Float64Var(&volRotateZ, "rotate-z", 0.0, "Rotation about the Z axis in degrees")
	flags.BoolVar(&volAbs, "abs", false, "Report absolute volumes")
	flags.BoolVarP(&volWatch, "watch", "w", false, "Recompute whenever the file or its dependencies change")
	flags.IntVar(&volWorkers, "workers", 0, "Parts measured in parallel (default GOMAXPROCS)")
}

// placement returns the transform applied on top of each part's own placement
func placement() (geometry.Transform, error) {
	if volScale == 0 {
		return geometry.Transform{}, fmt.Errorf("--scale must not be zero")
	}
	translate, err := toVector("translate", volTranslate, geometry.Vector3{})
	if err != nil {
		return geometry.Transform{}, err
	}
	return geometry.UniformScaling(volScale).
		Then(geometry.RotationZ(volRotateZ * math.Pi / 180)).
		Then(geometry.Translation(translate)), nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	extra, err := placement()
	if err != nil {
		return err
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	src, err := measureAndPrint(ctx, args[0], extra, printer)
	if err != nil {
		return err
	}
	if !volWatch {
		return nil
	}
	return watchVolume(ctx, src, extra, printer)
}

func measureAndPrint(ctx context.Context, path string, extra geometry.Transform, printer *report.Printer) (*loader.Source, error) {
	src, m, err := loadModel(ctx, path)
	if err != nil {
		return nil, err
	}

	r, err := volumeReport(ctx, src, m, extra)
	if err != nil {
		return nil, err
	}
	for _, w := range r.Warnings {
		logger.Warn(w, "file", path)
	}
	return src, printer.Print(r)
}

func volumeReport(ctx context.Context, src *loader.Source, m config.Measure, extra geometry.Transform) (*report.VolumeReport, error) {
	parts := make([]mesh.Part, len(src.Parts))
	for i, p := range src.Parts {
		parts[i] = mesh.Part{Name: p.Name, Mesh: p.Mesh, Transform: p.Transform.Then(extra)}
	}

	volumes, err := mesh.ComputeVolumes(ctx, parts, m.UnitScale, volWorkers)
	if err != nil {
		return nil, err
	}

	r := &report.VolumeReport{
		File:  src.Path,
		Unit:  m.Symbol,
		Parts: make([]report.PartVolume, len(volumes)),
	}
	for i, v := range volumes {
		closed := mesh.IsClosed(parts[i].Mesh)
		if !closed {
			r.Warnings = append(r.Warnings, fmt.Sprintf("part %q is not a closed surface, its volume is not physical", v.Name))
		}
		if v.Volume < 0 && !volAbs {
			r.Warnings = append(r.Warnings, fmt.Sprintf("part %q has a negative volume, its faces may be wound inward", v.Name))
		}

		volume := v.Volume
		if volAbs {
			volume = math.Abs(volume)
		}
		r.Parts[i] = report.PartVolume{Name: v.Name, Volume: volume, Area: v.Area, Closed: closed}
		r.Total += volume
	}
	return r, nil
}

func watchVolume(ctx context.Context, src *loader.Source, extra geometry.Transform, printer *report.Printer) error {
	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	var onChange func(string)
	onChange = func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		logger.Info("file changed", "file", changed)
		updated, err := measureAndPrint(ctx, src.Path, extra, printer)
		if err != nil {
			logger.Error("failed to measure", "file", src.Path, "error", err)
			return
		}

		// an OpenSCAD edit can add or drop includes
		if err := fw.RemoveAll(); err != nil {
			logger.Warn("failed to reset watches", "error", err)
		}
		if err := fw.Watch(updated.WatchFiles, onChange); err != nil {
			logger.Error("failed to watch files", "error", err)
		}
	}

	if err := fw.Watch(src.WatchFiles, onChange); err != nil {
		return err
	}
	fw.Start(ctx)

	logger.Info("watching for changes", "files", len(src.WatchFiles))
	<-ctx.Done()
	return nil
}
