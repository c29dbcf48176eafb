package rghost

import (
	"fmt"

	"github.com/madamkiwi/rghost/ps"
)

// VirtualPage is one column of a physical page. Lengths are in the document
// unit.
type VirtualPage struct {
	Width float64
	// MarginLeft is the gap after the previous column. It is ignored for the
	// first column, which starts at the page margin.
	MarginLeft float64
}

// VirtualPageSet collects the columns of a page layout.
type VirtualPageSet struct {
	pages []VirtualPage
}

// NewPage adds a column.
func (s *VirtualPageSet) NewPage(width, marginLeft float64) {
	s.pages = append(s.pages, VirtualPage{Width: width, MarginLeft: marginLeft})
}

// Pages returns the columns in order.
func (s *VirtualPageSet) Pages() []VirtualPage {
	return append([]VirtualPage(nil), s.pages...)
}

// VirtualPages splits every physical page into the columns declared by fn.
// Rows flow down a column then into the next; after the last column the
// page breaks.
func (d *Document) VirtualPages(fn func(s *VirtualPageSet)) {
	if !d.mutable() {
		return
	}
	var set VirtualPageSet
	fn(&set)
	if len(set.pages) == 0 {
		d.fail(fmt.Errorf("virtual pages: at least one page is required"))
		return
	}

	limits := make(ps.Array, 0, len(set.pages))
	left := d.paper.Margins.Left
	maxRight := d.paper.Width() - d.paper.Margins.Right
	for i, vp := range set.pages {
		if vp.Width <= 0 {
			d.fail(fmt.Errorf("virtual page %d: width must be positive", i+1))
			return
		}
		if vp.MarginLeft < 0 {
			d.fail(fmt.Errorf("virtual page %d: margin must not be negative", i+1))
			return
		}
		if i > 0 {
			left += d.unit.ToPoints(vp.MarginLeft)
		}
		right := left + d.unit.ToPoints(vp.Width)
		if right > maxRight+0.0001 {
			d.warn("virtual pages", fmt.Sprintf("page %d ends past the right margin", i+1))
		}
		limits = append(limits, ps.Array{ps.Real(left), ps.Real(right)})
		left = right
	}

	d.content.Set(ps.Variable{Name: "_vp_limits", Value: limits})
	d.content.Set(ps.Variable{Name: "_vp_index", Value: ps.Int(0)})
	d.content.Set(ps.Variable{Name: "has_vp?", Value: ps.Bool(true)})
	d.content.Raw("_apply_vp " + cursorHome)
}

// EnableVirtualPages resumes the virtual page layout.
func (d *Document) EnableVirtualPages() {
	if !d.mutable() {
		return
	}
	d.content.Set(ps.Variable{Name: "has_vp?", Value: ps.Bool(true)})
	d.content.Raw("_apply_vp")
}

// DisableVirtualPages returns to full-width rows.
func (d *Document) DisableVirtualPages() {
	if !d.mutable() {
		return
	}
	d.content.Set(ps.Variable{Name: "has_vp?", Value: ps.Bool(false)})
	d.content.Set(ps.Variable{Name: "limit_left", Value: ps.Raw("source_limit_left")})
	d.content.Set(ps.Variable{Name: "limit_right", Value: ps.Raw("source_limit_right")})
}
