package units

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// TestToPoints tests conversion of each unit to points
func TestToPoints(t *testing.T) {
	tests := []struct {
		unit  Unit
		value float64
		want  float64
	}{
		{Centimeter, 2.54, 72},
		{Millimeter, 25.4, 72},
		{Inch, 1, 72},
		{Point, 12, 12},
		{Centimeter, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got := tt.unit.ToPoints(tt.value)
			if !approx(got, tt.want) {
				t.Errorf("%s.ToPoints(%v) = %v, want %v", tt.unit, tt.value, got, tt.want)
			}
			if back := tt.unit.FromPoints(got); !approx(back, tt.value) {
				t.Errorf("FromPoints round trip = %v, want %v", back, tt.value)
			}
		})
	}
}

// TestParse tests length parsing with and without suffixes
func TestParse(t *testing.T) {
	tests := []struct {
		input string
		def   Unit
		want  float64
	}{
		{"2.54cm", Point, 72},
		{"25.4 mm", Point, 72},
		{"1in", Centimeter, 72},
		{"1 inch", Centimeter, 72},
		{"12pt", Centimeter, 12},
		{"2.54", Centimeter, 72},
		{"72", Point, 72},
		{"-1in", Point, -72},
		{" 1 IN ", Point, 72},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, tt.def)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !approx(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseErrors tests rejected lengths
func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "cm", "1 furlong", "1.2.3cm"} {
		if _, err := Parse(input, Centimeter); err == nil {
			t.Errorf("Parse(%q) expected error", input)
		}
	}
}

func TestLookup(t *testing.T) {
	if u, err := Lookup("Millimeters"); err != nil || u != Millimeter {
		t.Errorf("Lookup(Millimeters) = %v, %v", u, err)
	}
	if _, err := Lookup("parsec"); err == nil {
		t.Error("expected error for unknown unit")
	}
}
