// Package loader turns model files into measurable parts.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/philipparndt/govol/pkg/openscad"
	"github.com/philipparndt/govol/pkg/stl"
	"github.com/philipparndt/govol/pkg/threemf"
	"github.com/philipparndt/govol/pkg/units"
)

// ErrUnsupportedFormat is returned for files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Source is a loaded model file
type Source struct {
	Path  string
	Name  string
	Parts []mesh.Part
	// Unit is the length unit the file declares, nil for unitless formats
	Unit *units.Unit
	// WatchFiles lists every file whose change invalidates the parts
	WatchFiles []string
}

// Loader reads STL, 3MF and OpenSCAD files
type Loader struct {
	logger   *slog.Logger
	openscad string
}

// New creates a loader that logs to logger
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, openscad: "openscad"}
}

// WithOpenSCAD overrides the openscad executable
func (l *Loader) WithOpenSCAD(binary string) *Loader {
	l.openscad = binary
	return l
}

// Load reads a model file, choosing the format from its extension
func (l *Loader) Load(ctx context.Context, path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(abs)); ext {
	case ".stl":
		return l.loadSTL(abs)
	case ".3mf":
		return l.load3MF(abs)
	case ".scad":
		return l.loadSCAD(ctx, abs)
	default:
		return nil, fmt.Errorf("%w: %q (expected .stl, .3mf or .scad)", ErrUnsupportedFormat, ext)
	}
}

func (l *Loader) loadSTL(path string) (*Source, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL file: %w", err)
	}
	l.logger.Debug("loaded STL", "file", path, "triangles", model.TriangleCount())

	return &Source{
		Path:       path,
		Name:       displayName(model.Name, path),
		Parts:      []mesh.Part{{Name: displayName(model.Name, path), Mesh: model.Mesh()}},
		WatchFiles: []string{path},
	}, nil
}

func (l *Loader) load3MF(path string) (*Source, error) {
	doc, err := threemf.Load(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("loaded 3MF", "file", path, "parts", len(doc.Parts), "unit", doc.Unit.Name)

	unit := doc.Unit
	return &Source{
		Path:       path,
		Name:       stem(path),
		Parts:      doc.Parts,
		Unit:       &unit,
		WatchFiles: []string{path},
	}, nil
}

func (l *Loader) loadSCAD(ctx context.Context, path string) (*Source, error) {
	renderer := openscad.NewRenderer(filepath.Dir(path)).WithBinary(l.openscad)

	deps, err := renderer.ResolveDependencies(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	tmp, err := os.CreateTemp("", "govol-*.stl")
	if err != nil {
		return nil, err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	l.logger.Info("rendering OpenSCAD file", "file", path)
	if err := renderer.RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, err
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}

	name := stem(path)
	return &Source{
		Path:       path,
		Name:       name,
		Parts:      []mesh.Part{{Name: name, Mesh: model.Mesh()}},
		WatchFiles: deps,
	}, nil
}

func displayName(name, path string) string {
	if name != "" {
		return name
	}
	return stem(path)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
