package paper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/madamkiwi/rghost/units"
)

// Size is a named paper size in points (1" = 72pt), portrait orientation.
type Size struct {
	Name   string
	Width  float64
	Height float64
}

func mm(name string, w, h float64) Size {
	return Size{Name: name, Width: units.Millimeter.ToPoints(w), Height: units.Millimeter.ToPoints(h)}
}

var (
	A0 = mm("A0", 841, 1189)
	A1 = mm("A1", 594, 841)
	A2 = mm("A2", 420, 594)
	A3 = mm("A3", 297, 420)
	A4 = mm("A4", 210, 297)
	A5 = mm("A5", 148, 210)
	A6 = mm("A6", 105, 148)

	B0 = mm("B0", 1000, 1414)
	B1 = mm("B1", 707, 1000)
	B2 = mm("B2", 500, 707)
	B3 = mm("B3", 353, 500)
	B4 = mm("B4", 250, 353)
	B5 = mm("B5", 176, 250)

	Letter    = Size{Name: "Letter", Width: 612, Height: 792}
	Legal     = Size{Name: "Legal", Width: 612, Height: 1008}
	Ledger    = Size{Name: "Ledger", Width: 1224, Height: 792}
	Tabloid   = Size{Name: "Tabloid", Width: 792, Height: 1224}
	Executive = Size{Name: "Executive", Width: 522, Height: 756}
)

var named = map[string]Size{}

func init() {
	for _, s := range []Size{A0, A1, A2, A3, A4, A5, A6, B0, B1, B2, B3, B4, B5, Letter, Legal, Ledger, Tabloid, Executive} {
		named[strings.ToLower(s.Name)] = s
	}
}

// Lookup returns the named size. Names are case-insensitive.
func Lookup(name string) (Size, error) {
	if s, ok := named[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return Size{}, fmt.Errorf("unknown paper %q", name)
}

// Names returns the known paper names, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for _, s := range named {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Custom returns a size of w by h expressed in u.
func Custom(w, h float64, u units.Unit) Size {
	return Size{Name: "Custom", Width: u.ToPoints(w), Height: u.ToPoints(h)}
}
