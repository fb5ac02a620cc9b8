package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidScale is returned for a scale length that is not a positive finite number
var ErrInvalidScale = errors.New("invalid scale length")

// System is a scene unit system
type System int

const (
	// SystemNone leaves scene units unconverted
	SystemNone System = iota
	// SystemMetric measures scene units in meters
	SystemMetric
	// SystemImperial measures scene units in yards
	SystemImperial
)

var systemNames = map[System]string{
	SystemNone:     "none",
	SystemMetric:   "metric",
	SystemImperial: "imperial",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem resolves a system by name
func ParseSystem(s string) (System, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for sys, name := range systemNames {
		if key == name {
			return sys, nil
		}
	}
	return SystemNone, fmt.Errorf("unknown unit system %q (expected none, metric or imperial)", s)
}

// Scene describes how scene units relate to real-world lengths
type Scene struct {
	System      System
	ScaleLength float64 // length of one scene unit in base units of the system
}

// DefaultScene returns a metric scene where one scene unit is one meter
func DefaultScene() Scene {
	return Scene{System: SystemMetric, ScaleLength: 1}
}

// BaseUnit returns the real-world unit the scale length is expressed in.
// SystemNone reports meters so that its factor of one stays meaningful.
func (s Scene) BaseUnit() Unit {
	if s.System == SystemImperial {
		return Yard
	}
	return Meter
}

// UnitScale returns the length of one scene unit in meters
func (s Scene) UnitScale() (float64, error) {
	if s.System == SystemNone {
		return 1, nil
	}
	if s.ScaleLength <= 0 || math.IsNaN(s.ScaleLength) || math.IsInf(s.ScaleLength, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScale, s.ScaleLength)
	}
	return s.ScaleLength * s.BaseUnit().Meters, nil
}

// UnitScaleIn returns the length of one scene unit in the given display unit
func (s Scene) UnitScaleIn(display Unit) (float64, error) {
	meters, err := s.UnitScale()
	if err != nil {
		return 0, err
	}
	return meters / display.Meters, nil
}
