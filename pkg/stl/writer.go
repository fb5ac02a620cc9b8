package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/govol/pkg/geometry"
)

// Format selects the STL encoding
type Format int

const (
	Binary Format = iota
	ASCII
)

// ParseFormat resolves "binary" or "ascii"
func ParseFormat(s string) (Format, error) {
	switch s {
	case "binary", "bin":
		return Binary, nil
	case "ascii", "text":
		return ASCII, nil
	}
	return Binary, fmt.Errorf("unknown STL format %q (expected binary or ascii)", s)
}

// WriteFile writes the model to a file
func WriteFile(filename string, model *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write encodes the model in the given format
func Write(w io.Writer, model *Model, format Format) error {
	bw := bufio.NewWriter(w)

	var err error
	if format == ASCII {
		err = writeASCII(bw, model)
	} else {
		err = writeBinary(bw, model)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeASCII(w *bufio.Writer, model *Model) error {
	// a nameless solid keeps bare keywords so the name reads back empty
	name := ""
	if model.Name != "" {
		name = " " + model.Name
	}

	fmt.Fprintf(w, "solid%s\n", name)
	for _, tri := range model.Triangles {
		n := tri.Normal
		fmt.Fprintf(w, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(w, "    outer loop")
		for _, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			fmt.Fprintf(w, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(w, "    endloop")
		fmt.Fprintln(w, "  endfacet")
	}
	_, err := fmt.Fprintf(w, "endsolid%s\n", name)
	return err
}

func writeBinary(w *bufio.Writer, model *Model) error {
	var header [binaryHeaderSize]byte
	copy(header[:], model.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, tri := range model.Triangles {
		facet := binaryFacet{
			Normal: toFloat32(tri.Normal),
			V1:     toFloat32(tri.V1),
			V2:     toFloat32(tri.V2),
			V3:     toFloat32(tri.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	return nil
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
