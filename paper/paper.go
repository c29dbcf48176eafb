// Package paper describes the physical page: size, orientation, margins and
// duplex printing.
package paper

import (
	"fmt"

	"github.com/madamkiwi/rghost/ps"
	"github.com/madamkiwi/rghost/units"
)

// DefaultMargin is the margin applied to every side, in centimeters.
const DefaultMargin = 1.0

// Margins holds the four page margins in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns margins of v points on every side.
func Uniform(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// Paper is the page setup of a document.
type Paper struct {
	Size      Size
	Landscape bool
	Margins   Margins
	Duplex    bool
	Tumble    bool
}

// New returns an A4 portrait paper with default margins.
func New() Paper {
	return Paper{
		Size:    A4,
		Margins: Uniform(units.Centimeter.ToPoints(DefaultMargin)),
	}
}

// Width returns the page width in points, honoring Landscape.
func (p Paper) Width() float64 {
	if p.Landscape {
		return p.Size.Height
	}
	return p.Size.Width
}

// Height returns the page height in points, honoring Landscape.
func (p Paper) Height() float64 {
	if p.Landscape {
		return p.Size.Width
	}
	return p.Size.Height
}

// Validate checks that the page has a printable area inside the margins.
func (p Paper) Validate() error {
	if p.Size.Width <= 0 || p.Size.Height <= 0 {
		return fmt.Errorf("paper %s: dimensions must be positive", p.Size.Name)
	}
	m := p.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("paper %s: margins must not be negative", p.Size.Name)
	}
	if m.Left+m.Right >= p.Width() {
		return fmt.Errorf("paper %s: horizontal margins exceed page width", p.Size.Name)
	}
	if m.Top+m.Bottom >= p.Height() {
		return fmt.Errorf("paper %s: vertical margins exceed page height", p.Size.Name)
	}
	return nil
}

// PS returns the page variables and the setpagedevice request.
func (p Paper) PS() string {
	var b ps.Buffer
	b.Set(ps.Variable{Name: "page_width", Value: ps.Real(p.Width())})
	b.Set(ps.Variable{Name: "page_height", Value: ps.Real(p.Height())})
	b.Set(ps.Variable{Name: "margin_top", Value: ps.Real(p.Margins.Top)})
	b.Set(ps.Variable{Name: "margin_right", Value: ps.Real(p.Margins.Right)})
	b.Set(ps.Variable{Name: "margin_bottom", Value: ps.Real(p.Margins.Bottom)})
	b.Set(ps.Variable{Name: "margin_left", Value: ps.Real(p.Margins.Left)})
	b.Set(ps.Dict{
		"PageSize": ps.Array{ps.Real(p.Width()), ps.Real(p.Height())},
		"Duplex":   ps.Bool(p.Duplex),
		"Tumble":   ps.Bool(p.Tumble),
	})
	b.Raw("setpagedevice")
	return b.String()
}

// String implements ps.Object.
func (p Paper) String() string {
	return p.PS()
}

// Params returns the interpreter switches that fix the device page size.
func (p Paper) Params() []string {
	return []string{
		"-dDEVICEWIDTHPOINTS=" + ps.FormatReal(p.Width()),
		"-dDEVICEHEIGHTPOINTS=" + ps.FormatReal(p.Height()),
	}
}
