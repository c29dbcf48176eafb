// Package units converts lengths between document units and PostScript points.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a length unit.
type Unit int

const (
	// Centimeter is the default document unit.
	Centimeter Unit = iota
	// Millimeter is a tenth of a centimeter.
	Millimeter
	// Inch is 72 points.
	Inch
	// Point is the native PostScript unit (1/72 inch).
	Point
)

// String returns the unit suffix.
func (u Unit) String() string {
	switch u {
	case Centimeter:
		return "cm"
	case Millimeter:
		return "mm"
	case Inch:
		return "in"
	case Point:
		return "pt"
	default:
		return "unknown"
	}
}

// perPoint returns the number of points in one unit.
func (u Unit) perPoint() float64 {
	switch u {
	case Millimeter:
		return 72 / 25.4
	case Inch:
		return 72
	case Point:
		return 1
	default:
		return 72 / 2.54
	}
}

// ToPoints converts v expressed in u to points.
func (u Unit) ToPoints(v float64) float64 {
	return v * u.perPoint()
}

// FromPoints converts a length in points to u.
func (u Unit) FromPoints(pt float64) float64 {
	return pt / u.perPoint()
}

// Lookup returns the unit for a suffix such as "cm" or "inch".
func Lookup(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "in", "inch", "inches":
		return Inch, nil
	case "pt", "point", "points":
		return Point, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", name)
	}
}

// Parse converts a length such as "2.5cm", "10 mm", "1in" or "12pt" to
// points. A bare number is read in def.
func Parse(s string, def Unit) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty length")
	}

	split := len(trimmed)
	for i, r := range trimmed {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			split = i
			break
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(trimmed[:split]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", s, err)
	}

	unit := def
	if suffix := strings.TrimSpace(trimmed[split:]); suffix != "" {
		unit, err = Lookup(suffix)
		if err != nil {
			return 0, fmt.Errorf("invalid length %q: %w", s, err)
		}
	}

	return unit.ToPoints(value), nil
}
