package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func sampleVolume() *VolumeReport {
	return &VolumeReport{
		File: "part.3mf",
		Unit: "mm",
		Parts: []PartVolume{
			{Name: "base", Volume: 1000, Area: 600, Closed: true},
			{Name: "lid", Volume: 234.5, Area: 300, Closed: false},
		},
		Total:    1234.5,
		Warnings: []string{`part "lid" is not closed`},
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "JSON", "yaml"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNumber(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Text, 2, language.English)
	assert.Equal(t, "1,234.50", p.Number(1234.5))
	assert.Equal(t, "-0.25", p.Number(-0.25))

	p = NewPrinter(&bytes.Buffer{}, Text, 0, language.English)
	assert.Equal(t, "7", p.Number(7))
}

func TestVolumeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, Text, 2, language.English).Print(sampleVolume()))

	out := buf.String()
	assert.Contains(t, out, "File: part.3mf")
	assert.Contains(t, out, "base: 1,000.00 mm³")
	assert.Contains(t, out, "Volume: 1,234.50 mm³")
	assert.Contains(t, out, `Warning: part "lid" is not closed`)
}

func TestUnitlessText(t *testing.T) {
	var buf bytes.Buffer
	r := &VolumeReport{File: "a.stl", Parts: []PartVolume{{Name: "a", Volume: 1}}, Total: 1}
	require.NoError(t, NewPrinter(&buf, Text, 1, language.English).Print(r))

	assert.Contains(t, buf.String(), "Volume: 1.0 cubic units")
	assert.NotContains(t, buf.String(), "  a:")
}

func TestVolumeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, JSON, 2, language.English).Print(sampleVolume()))

	var decoded VolumeReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleVolume(), decoded)
	assert.Contains(t, buf.String(), `"total": 1234.5`)
}

func TestVolumeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, YAML, 2, language.English).Print(sampleVolume()))

	var decoded VolumeReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleVolume(), decoded)
	assert.Contains(t, buf.String(), "total: 1234.5")
}

func TestInfoText(t *testing.T) {
	var buf bytes.Buffer
	r := &InfoReport{
		File:          "cube.stl",
		Unit:          "m",
		Vertices:      8,
		Triangles:     12,
		Edges:         18,
		Closed:        false,
		BoundaryEdges: 3,
		Volume:        1,
		Max:           Vector{X: 1, Y: 1, Z: 1},
	}
	require.NoError(t, NewPrinter(&buf, Text, 3, language.English).Print(r))

	out := buf.String()
	assert.Contains(t, out, "Model Information\n=================\n")
	assert.Contains(t, out, "  Triangles: 12")
	assert.Contains(t, out, "  Boundary edges: 3")
	assert.Contains(t, out, "  Max: (1.000, 1.000, 1.000)")
	assert.Contains(t, out, "  Volume: 1.000 m³")
}

func TestEdgesText(t *testing.T) {
	var buf bytes.Buffer
	r := &EdgesReport{Title: "Top 0 Longest Edges"}
	require.NoError(t, NewPrinter(&buf, Text, 3, language.English).Print(r))
	assert.Contains(t, buf.String(), "No edges found matching the criteria.")
}

func TestMeasureText(t *testing.T) {
	var buf bytes.Buffer
	r := &MeasureReport{
		Unit:     "mm",
		From:     Point{Position: Vector{}, Nearest: Vector{}},
		To:       Point{Position: Vector{X: 3, Y: 4}, Nearest: Vector{X: 3, Y: 4, Z: 1}, NearestDistance: 1},
		Distance: 5,
	}
	require.NoError(t, NewPrinter(&buf, Text, 1, language.English).Print(r))

	out := buf.String()
	assert.Contains(t, out, "Direct distance: 5.0 mm")
	assert.Contains(t, out, "Nearest vertex: (3.0, 4.0, 1.0) (distance: 1.0)")
	assert.Contains(t, out, "Distance between nearest vertices")
}

func TestDistanceText(t *testing.T) {
	var buf bytes.Buffer
	r := &DistanceReport{Kind: "object-to-object", From: "Cube", To: "Empty", Unit: "m", Distance: 5}
	require.NoError(t, NewPrinter(&buf, Text, 2, language.English).Print(r))
	assert.Equal(t, "Distance Cube to Empty: 5.00 m\n", buf.String())
}

func TestUnknownFormat(t *testing.T) {
	err := NewPrinter(&bytes.Buffer{}, Format("xml"), 2, language.English).Print(sampleVolume())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
