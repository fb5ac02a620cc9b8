// Package units converts between length units and resolves the scale of a
// scene unit in meters.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit name cannot be parsed
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is a length unit
type Unit struct {
	Name   string
	Symbol string
	Meters float64 // length of one unit in meters
}

var (
	Micrometer = Unit{Name: "micrometer", Symbol: "µm", Meters: 1e-6}
	Millimeter = Unit{Name: "millimeter", Symbol: "mm", Meters: 1e-3}
	Centimeter = Unit{Name: "centimeter", Symbol: "cm", Meters: 1e-2}
	Meter      = Unit{Name: "meter", Symbol: "m", Meters: 1}
	Inch       = Unit{Name: "inch", Symbol: "in", Meters: 0.0254}
	Foot       = Unit{Name: "foot", Symbol: "ft", Meters: 0.3048}
	Yard       = Unit{Name: "yard", Symbol: "yd", Meters: 0.9144}
)

// All lists the known units from smallest to largest
var All = []Unit{Micrometer, Millimeter, Centimeter, Inch, Foot, Yard, Meter}

var aliases = map[string]Unit{
	"um":          Micrometer,
	"micron":      Micrometer,
	"microns":     Micrometer,
	"micrometre":  Micrometer,
	"millimetre":  Millimeter,
	"centimetre":  Centimeter,
	"metre":       Meter,
	"metres":      Meter,
	"millimetres": Millimeter,
	"centimetres": Centimeter,
	"inches":      Inch,
	"\"":          Inch,
	"feet":        Foot,
	"'":           Foot,
}

// Parse resolves a unit by name, plural or symbol, case-insensitively
func Parse(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if u, ok := aliases[key]; ok {
		return u, nil
	}
	for _, u := range All {
		if key == u.Name || key == u.Name+"s" || key == strings.ToLower(u.Symbol) {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// String returns the unit symbol
func (u Unit) String() string {
	return u.Symbol
}

// ScaleTo returns the factor converting a length in u into a length in target
func (u Unit) ScaleTo(target Unit) float64 {
	return u.Meters / target.Meters
}

// LengthIn converts a length between units
func LengthIn(value float64, from, to Unit) float64 {
	return value * from.ScaleTo(to)
}

// AreaIn converts an area between units
func AreaIn(value float64, from, to Unit) float64 {
	return value * Square(from.ScaleTo(to))
}

// VolumeIn converts a volume between units
func VolumeIn(value float64, from, to Unit) float64 {
	return value * Cube(from.ScaleTo(to))
}

// Square returns k²
func Square(k float64) float64 {
	return k * k
}

// Cube returns k³
func Cube(k float64) float64 {
	return k * k * k
}
