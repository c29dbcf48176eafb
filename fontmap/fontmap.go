package fontmap

import (
	"fmt"
	"strings"

	"github.com/madamkiwi/rghost/color"
	"github.com/madamkiwi/rghost/markup"
	"github.com/madamkiwi/rghost/ps"
)

// DefaultTag is the tag used when no other tag is selected.
const DefaultTag = "default_font"

// Tag describes one font mapping.
type Tag struct {
	// Name is the tag name used in drawing operations and tagged text.
	Name string
	// Font is the PostScript font name. Empty inherits the default font.
	Font string
	// Size is the font size in points. Zero inherits the default size.
	Size float64
	// Color is any value accepted by color.Parse. Nil keeps the current color.
	Color any
	// Encoding re-encodes the font with the document font encoding.
	Encoding bool
	// From is a font file (Type1 or TrueType) loaded before use with
	// .loadfont. The document lets the interpreter read the file, but
	// Ghostscript 9.50 and later only define .loadfont with -dNOSAFER.
	From string
}

type entry struct {
	tag   Tag
	color *color.Color
}

// Map is an ordered set of tags.
type Map struct {
	entries []entry
	index   map[string]int
}

// New returns a map holding the default tags.
func New() *Map {
	m := &Map{index: make(map[string]int)}
	for _, t := range defaults() {
		if err := m.Set(t); err != nil {
			panic(err)
		}
	}
	return m
}

func defaults() []Tag {
	return []Tag{
		{Name: DefaultTag, Font: "Helvetica", Size: 8, Encoding: true},
		{Name: "i", Font: "Helvetica-Oblique", Size: 8, Encoding: true},
		{Name: "b", Font: "Helvetica-Bold", Size: 8, Encoding: true},
		{Name: "bi", Font: "Helvetica-BoldOblique", Size: 8, Encoding: true},
		{Name: "pre", Font: "Courier", Size: 10, Encoding: true},
		{Name: "big", Font: "Helvetica", Size: 18, Encoding: true},
		{Name: "small", Font: "Helvetica", Size: 6, Encoding: true},
	}
}

// Set adds or replaces a tag. A replaced tag keeps its original position.
func (m *Map) Set(t Tag) error {
	name := strings.ToLower(strings.TrimSpace(t.Name))
	if !ps.ValidName(name) {
		return fmt.Errorf("invalid tag name %q", t.Name)
	}
	if markup.Reserved(name) {
		return fmt.Errorf("tag %s: name is reserved by tagged text", name)
	}
	t.Name = name

	if t.Size < 0 {
		return fmt.Errorf("tag %s: size must not be negative", name)
	}
	if t.Font != "" && !ps.ValidName(t.Font) {
		return fmt.Errorf("tag %s: invalid font name %q", name, t.Font)
	}

	if name == DefaultTag {
		if i, ok := m.index[name]; ok {
			prev := m.entries[i].tag
			if t.Font == "" {
				t.Font = prev.Font
			}
			if t.Size == 0 {
				t.Size = prev.Size
			}
		}
		if t.Font == "" || t.Size == 0 {
			return fmt.Errorf("tag %s: font and size are required", name)
		}
	}

	e := entry{tag: t}
	if t.Color != nil {
		c, err := color.Parse(t.Color)
		if err != nil {
			return fmt.Errorf("tag %s: %w", name, err)
		}
		e.color = &c
	}

	if i, ok := m.index[name]; ok {
		m.entries[i] = e
		return nil
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, e)
	return nil
}

// Has reports whether the tag is defined.
func (m *Map) Has(name string) bool {
	_, ok := m.index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Get returns the tag with inherited font and size resolved.
func (m *Map) Get(name string) (Tag, bool) {
	i, ok := m.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Tag{}, false
	}
	return m.resolve(m.entries[i].tag), true
}

// Names returns the tag names in declaration order.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.tag.Name)
	}
	return names
}

// Files returns the font files referenced by From, in declaration order.
func (m *Map) Files() []string {
	var files []string
	seen := make(map[string]bool)
	for _, e := range m.entries {
		if e.tag.From == "" || seen[e.tag.From] {
			continue
		}
		seen[e.tag.From] = true
		files = append(files, e.tag.From)
	}
	return files
}

// ProcName returns the program name of the procedure that selects the tag.
func ProcName(name string) string {
	return ps.ProcName("tag_" + strings.ToLower(strings.TrimSpace(name)))
}

func (m *Map) resolve(t Tag) Tag {
	if t.Name == DefaultTag {
		return t
	}
	base := m.entries[m.index[DefaultTag]].tag
	if t.Font == "" {
		t.Font = base.Font
	}
	if t.Size == 0 {
		t.Size = base.Size
	}
	return t
}

// PS returns the font loading, re-encoding and tag procedures. encoding is
// the document font encoding name; re-encoded fonts are registered as
// /Font-encoding using the default_encoding_vector from the encoding library.
func (m *Map) PS(encoding string) string {
	var b ps.Buffer

	for _, file := range m.Files() {
		b.Raw(ps.Literal(file).String() + " (r) file .loadfont")
	}

	reencoded := make(map[string]bool)
	for _, e := range m.entries {
		t := m.resolve(e.tag)
		font := t.Font
		if t.Encoding {
			font = t.Font + "-" + encoding
			if !reencoded[font] {
				reencoded[font] = true
				b.Raw(ps.Name(font).String() + " " + ps.Name(t.Font).String() + " default_encoding_vector reencode_font")
			}
		}

		body := ps.Name(font).String() + " findfont " + ps.FormatReal(t.Size) + " scalefont setfont"
		if e.color != nil {
			body += " " + e.color.String()
		}
		b.Set(ps.Function{Name: "tag_" + t.Name, Body: ps.Raw(body)})
	}

	return b.String()
}
