// Package callback holds the procedures the PostScript runtime invokes at
// document, page and virtual page boundaries.
//
// Each registration pairs an [Event] with a [Filter] and a body. All
// registrations for one event are joined, in registration order, into a
// single procedure named after the event, for example _before_page_create.
// Every body runs between gsave and grestore, so fonts, colors and the
// cursor it changes do not carry into the page. The environment library defines an empty procedure for every event, so
// events without registrations are still safe to invoke.
package callback

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/madamkiwi/rghost/ps"
)

// Event names a point in the document lifecycle.
type Event string

const (
	BeforePageCreate        Event = "before_page_create"
	AfterPageCreate         Event = "after_page_create"
	BeforeDocumentCreate    Event = "before_document_create"
	AfterDocumentCreate     Event = "after_document_create"
	BeforeVirtualPageCreate Event = "before_virtual_page_create"
	AfterVirtualPageCreate  Event = "after_virtual_page_create"
)

// Events returns every event in serialization order.
func Events() []Event {
	return []Event{
		BeforeDocumentCreate,
		BeforePageCreate,
		AfterPageCreate,
		BeforeVirtualPageCreate,
		AfterVirtualPageCreate,
		AfterDocumentCreate,
	}
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	for _, known := range Events() {
		if e == known {
			return true
		}
	}
	return false
}

// PerPage reports whether the event fires once per page, which is when a
// page filter makes sense.
func (e Event) PerPage() bool {
	return e != BeforeDocumentCreate && e != AfterDocumentCreate
}

// Filter restricts a callback to some pages. Condition returns a PostScript
// expression leaving a boolean on the stack, or "" to always run.
type Filter interface {
	Condition() string
	Validate() error
}

type always struct{}

func (always) Condition() string { return "" }
func (always) Validate() error   { return nil }

// Always runs the callback on every page.
var Always Filter = always{}

type pageList struct {
	pages  []int
	negate bool
}

// Only runs the callback on the listed pages (1-indexed).
func Only(pages ...int) Filter {
	return pageList{pages: pages}
}

// Except runs the callback on every page but the listed ones (1-indexed).
func Except(pages ...int) Filter {
	return pageList{pages: pages, negate: true}
}

func (f pageList) Validate() error {
	if len(f.pages) == 0 {
		return fmt.Errorf("page filter needs at least one page")
	}
	for _, p := range f.pages {
		if p < 1 {
			return fmt.Errorf("page filter: invalid page %d", p)
		}
	}
	return nil
}

func (f pageList) Condition() string {
	parts := make([]string, 0, len(f.pages)*4)
	for i, p := range f.pages {
		parts = append(parts, "current_page", strconv.Itoa(p), "eq")
		if i > 0 {
			parts = append(parts, "or")
		}
	}
	if f.negate {
		parts = append(parts, "not")
	}
	return strings.Join(parts, " ")
}

type parity int

// Odd runs the callback on odd pages.
func Odd() Filter { return parity(1) }

// Even runs the callback on even pages.
func Even() Filter { return parity(0) }

func (p parity) Validate() error { return nil }

func (p parity) Condition() string {
	return "current_page 2 mod " + strconv.Itoa(int(p)) + " eq"
}

// Callback is one registration.
type Callback struct {
	Event  Event
	Filter Filter
	Body   ps.Object
}

// Set collects registrations.
type Set struct {
	callbacks []Callback
}

// Add validates and appends a registration. A nil filter means Always.
func (s *Set) Add(cb Callback) error {
	if !cb.Event.Valid() {
		return fmt.Errorf("unknown callback event %q", cb.Event)
	}
	if cb.Filter == nil {
		cb.Filter = Always
	}
	if err := cb.Filter.Validate(); err != nil {
		return fmt.Errorf("callback %s: %w", cb.Event, err)
	}
	if !cb.Event.PerPage() && cb.Filter.Condition() != "" {
		return fmt.Errorf("callback %s does not accept a page filter", cb.Event)
	}
	s.callbacks = append(s.callbacks, cb)
	return nil
}

// Len returns the number of registrations.
func (s *Set) Len() int {
	return len(s.callbacks)
}

// PS returns one procedure per event that has registrations.
func (s *Set) PS() string {
	var b ps.Buffer
	for _, event := range Events() {
		var bodies []string
		for _, cb := range s.callbacks {
			if cb.Event != event {
				continue
			}
			body := "gsave\n" + bodyText(cb.Body) + "\ngrestore"
			if cond := cb.Filter.Condition(); cond != "" {
				body = cond + " {\n" + body + "\n} if"
			}
			bodies = append(bodies, body)
		}
		if len(bodies) == 0 {
			continue
		}
		b.Set(ps.Function{Name: string(event), Body: ps.Raw(strings.Join(bodies, "\n"))})
	}
	return b.String()
}

func bodyText(obj ps.Object) string {
	if obj == nil {
		return ""
	}
	return obj.String()
}
