package rghost

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/madamkiwi/rghost/color"
	"github.com/madamkiwi/rghost/fontmap"
	"github.com/madamkiwi/rghost/markup"
	"github.com/madamkiwi/rghost/ps"
)

// Align positions shown text relative to the cursor or the page limits.
type Align int

const (
	// AlignLeft starts the text at the cursor.
	AlignLeft Align = iota
	// AlignRight ends the text at the cursor.
	AlignRight
	// AlignCenter centers the text on the cursor.
	AlignCenter
	// PageLeft starts the text at the left limit of the row.
	PageLeft
	// PageCenter centers the text between the row limits.
	PageCenter
	// PageRight ends the text at the right limit of the row.
	PageRight
)

// LinePosition places a horizontal line inside the current row.
type LinePosition int

const (
	// LineBottom draws on the row baseline.
	LineBottom LinePosition = iota
	// LineMiddle draws half a row above the baseline.
	LineMiddle
	// LineTop draws one row above the baseline.
	LineTop
)

// ShowOptions controls Show and ShowNext.
type ShowOptions struct {
	// Tag selects a font tag. Empty keeps the current font.
	Tag string
	// Align positions the text.
	Align Align
	// Color is any value accepted by color.Parse. Nil keeps the current color.
	Color any
}

// TextInOptions controls TextIn. X and Y are in the document unit.
type TextInOptions struct {
	X     float64
	Y     float64
	Text  string
	Tag   string
	Align Align
	Color any
	// Angle rotates the text counterclockwise, in degrees.
	Angle float64
}

// ImageOptions places an image or template. X and Y are in the document
// unit; when both are zero the image is drawn at the cursor.
type ImageOptions struct {
	X float64
	Y float64
	// Zoom scales the image. Zero means 1.
	Zoom float64
}

// FrameOptions draws a rectangle. Lengths are in the document unit, except
// LineWidth which is in points.
type FrameOptions struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	LineWidth float64
	// Color of the border. Nil keeps the current color.
	Color any
	// Fill color of the interior. Nil leaves it empty.
	Fill any
}

// Canvas appends drawing operations to one part of a document: its body, a
// procedure defined with Define, or a callback.
type Canvas struct {
	doc  *Document
	buf  *ps.Buffer
	body bool
}

func newCanvas(doc *Document, buf *ps.Buffer, body bool) *Canvas {
	return &Canvas{doc: doc, buf: buf, body: body}
}

// open reports whether the canvas accepts operations, recording
// ErrDocumentDone on a finished document body.
func (c *Canvas) open() bool {
	if c.doc.err != nil {
		return false
	}
	if c.body && c.doc.done {
		c.doc.fail(ErrDocumentDone)
		return false
	}
	return true
}

func (c *Canvas) emit(obj ps.Object) {
	if !c.open() {
		return
	}
	c.buf.Set(obj)
}

func (c *Canvas) raw(text string) {
	c.emit(ps.Raw(text))
}

// Raw appends PostScript text verbatim.
func (c *Canvas) Raw(text string) {
	c.raw(text)
}

// Set appends a PostScript object.
func (c *Canvas) Set(obj ps.Object) {
	c.emit(obj)
}

// Call invokes a procedure defined with Define or DefineTemplate.
func (c *Canvas) Call(name string) {
	if !ps.ValidName(name) {
		c.doc.fail(fmt.Errorf("call: invalid procedure name %q", name))
		return
	}
	c.raw(ps.ProcName(name))
}

// MoveTo moves the cursor to x, y in the document unit.
func (c *Canvas) MoveTo(x, y float64) {
	c.raw(c.doc.point(x, y) + " moveto")
}

// RMoveTo moves the cursor by dx, dy in the document unit.
func (c *Canvas) RMoveTo(dx, dy float64) {
	c.raw(c.doc.point(dx, dy) + " rmoveto")
}

// NextRow moves the cursor to the start of the next row, breaking the page
// or virtual page after the last row.
func (c *Canvas) NextRow() {
	c.raw("next_row")
}

// BackRow moves the cursor to the start of the previous row.
func (c *Canvas) BackRow() {
	c.raw("back_row")
}

// JumpRows moves the cursor n rows down.
func (c *Canvas) JumpRows(n int) {
	if n <= 0 {
		return
	}
	c.raw(fmt.Sprintf("%d { next_row } repeat", n))
}

// GotoRow moves the cursor to the start of row n of the current page.
func (c *Canvas) GotoRow(n int) {
	if n < 1 {
		c.doc.fail(fmt.Errorf("goto row: invalid row %d", n))
		return
	}
	c.raw(fmt.Sprintf("/current_row %d def limit_left row_top moveto", n))
}

// NextPage ends the page running the page callbacks and starts the next.
func (c *Canvas) NextPage() {
	c.raw("next_page")
}

// ShowPage emits a bare showpage, without callbacks or cursor reset.
func (c *Canvas) ShowPage() {
	c.raw("showpage")
}

// UseTag selects a font tag for the operations that follow.
func (c *Canvas) UseTag(name string) {
	if proc, ok := c.tag("use tag", name); ok {
		c.raw(proc)
	}
}

// tag returns the procedure selecting name, recording a warning when the
// tag is unknown.
func (c *Canvas) tag(op, name string) (string, bool) {
	if !c.doc.fonts.Has(name) {
		c.doc.warn(op, fmt.Sprintf("unknown tag %q", name))
		return "", false
	}
	return fontmap.ProcName(name), true
}

// Show draws text at the cursor. The cursor does not move.
func (c *Canvas) Show(text string, opts ShowOptions) {
	if !c.open() {
		return
	}
	style, ok := c.style("show", opts.Tag, opts.Color)
	if !ok {
		return
	}
	parts := append([]string{"gsave"}, style...)
	parts = append(parts, c.doc.textExpr(text), alignShow(opts.Align), "grestore")
	c.raw(strings.Join(parts, " "))
}

// ShowNext draws text at the cursor and moves to the next row.
func (c *Canvas) ShowNext(text string, opts ShowOptions) {
	c.Show(text, opts)
	c.NextRow()
}

// TextIn draws text at a fixed position. The cursor does not move.
func (c *Canvas) TextIn(opts TextInOptions) {
	if !c.open() {
		return
	}
	parts := []string{"gsave", c.doc.point(opts.X, opts.Y), "translate"}
	if opts.Angle != 0 {
		parts = append(parts, ps.FormatReal(opts.Angle), "rotate")
	}
	parts = append(parts, "0 0 moveto")
	style, ok := c.style("text in", opts.Tag, opts.Color)
	if !ok {
		return
	}
	parts = append(parts, style...)
	// page alignments are meaningless at a fixed position
	align := opts.Align
	switch align {
	case PageLeft:
		align = AlignLeft
	case PageCenter:
		align = AlignCenter
	case PageRight:
		align = AlignRight
	}
	parts = append(parts, c.doc.textExpr(opts.Text), alignShow(align), "grestore")
	c.raw(strings.Join(parts, " "))
}

// style returns the tag and color operators for a show. An unknown tag is
// a warning and the text keeps the current font.
func (c *Canvas) style(op, tag string, col any) ([]string, bool) {
	var parts []string
	if tag != "" {
		if proc, ok := c.tag(op, tag); ok {
			parts = append(parts, proc)
		}
	}
	if col != nil {
		parsed, err := color.Parse(col)
		if err != nil {
			c.doc.fail(fmt.Errorf("%s: %w", op, err))
			return nil, false
		}
		parts = append(parts, parsed.String())
	}
	return parts, true
}

// alignShow returns the operators that show the string on the stack.
func alignShow(a Align) string {
	switch a {
	case AlignRight:
		return "dup stringwidth pop neg 0 rmoveto show"
	case AlignCenter:
		return "dup stringwidth pop 2 div neg 0 rmoveto show"
	case PageLeft:
		return "limit_left currentpoint exch pop moveto show"
	case PageCenter:
		return "limit_left limit_right add 2 div currentpoint exch pop moveto dup stringwidth pop 2 div neg 0 rmoveto show"
	case PageRight:
		return "limit_right currentpoint exch pop moveto dup stringwidth pop neg 0 rmoveto show"
	default:
		return "show"
	}
}

// Text writes tagged text from the cursor, wrapping words at the right
// limit. Tags switch fonts until their closing tag and <br/> breaks the
// row. Runs of whitespace are written as one space. The cursor ends at the
// start of the next row.
func (c *Canvas) Text(text string) {
	c.text("text", text, false)
}

// text writes tagged text. With preserve every space is kept, for
// preformatted input.
func (c *Canvas) text(op, text string, preserve bool) {
	if !c.open() {
		return
	}
	segments, err := markup.Parse(text)
	if err != nil {
		c.doc.fail(fmt.Errorf("%s: %w", op, err))
		return
	}

	// the font in use when the text starts is restored by closing tags
	parts := []string{"/_text_font currentfont def"}
	var stack []string
	afterSpace := !preserve
	for _, seg := range segments {
		switch seg.Kind {
		case markup.Text:
			var words []string
			words, afterSpace = chunks(seg.Value, preserve, afterSpace)
			for _, word := range words {
				parts = append(parts, c.doc.encoder.Literal(word).String()+" _wshow")
			}
		case markup.Open:
			proc, ok := c.tag(op, seg.Value)
			if !ok {
				continue
			}
			stack = append(stack, seg.Value)
			parts = append(parts, proc)
		case markup.Close:
			if !c.doc.fonts.Has(seg.Value) {
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1] != seg.Value {
				c.doc.warn(op, fmt.Sprintf("closing tag %q does not match the open tag", seg.Value))
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parts = append(parts, fontmap.ProcName(stack[len(stack)-1]))
			} else {
				parts = append(parts, "_text_font setfont")
			}
		case markup.Break:
			parts = append(parts, "next_row")
			afterSpace = !preserve
		}
	}
	if len(stack) > 0 {
		parts = append(parts, "_text_font setfont")
	}
	parts = append(parts, "next_row")
	c.raw(strings.Join(parts, "\n"))
}

// chunks splits s into words, each carrying the whitespace that follows it.
// Whitespace before the first word is a chunk of its own. Unless preserve
// is set, a run of whitespace becomes one space, and leading whitespace is
// dropped when afterSpace says the previous text ended with a space. The
// second result reports whether s ends with whitespace.
func chunks(s string, preserve, afterSpace bool) ([]string, bool) {
	var out []string
	var cur strings.Builder
	inSpace := afterSpace && !preserve
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !preserve {
				if inSpace {
					continue
				}
				r = ' '
			}
			inSpace = true
			cur.WriteRune(r)
			continue
		}
		if inSpace && cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
		inSpace = false
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out, inSpace
}

// HorizontalLine draws a line across the row between the row limits.
func (c *Canvas) HorizontalLine(pos LinePosition) {
	y := "row_top"
	switch pos {
	case LineMiddle:
		y = "row_top row_height 2 div add"
	case LineTop:
		y = "row_top row_height add"
	}
	c.raw("gsave newpath limit_left " + y + " moveto limit_right " + y + " lineto stroke grestore")
}

// Image draws an EPS, PostScript, JPEG or GIF file.
func (c *Canvas) Image(path string, opts ImageOptions) {
	if !c.open() {
		return
	}
	obj, err := c.doc.image(path, opts)
	if err != nil {
		c.doc.fail(err)
		return
	}
	c.raw(obj)
}

// SetColor sets the current color. v is any value accepted by color.Parse.
func (c *Canvas) SetColor(v any) {
	parsed, err := color.Parse(v)
	if err != nil {
		c.doc.fail(fmt.Errorf("set color: %w", err))
		return
	}
	c.raw(parsed.String())
}

// LineWidth sets the stroke width in points.
func (c *Canvas) LineWidth(width float64) {
	if width < 0 {
		c.doc.fail(fmt.Errorf("line width: must not be negative"))
		return
	}
	c.raw(ps.FormatReal(width) + " setlinewidth")
}

// Frame draws a rectangle, optionally filled.
func (c *Canvas) Frame(opts FrameOptions) {
	if !c.open() {
		return
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		c.doc.fail(fmt.Errorf("frame: width and height must be positive"))
		return
	}
	rect := c.doc.point(opts.X, opts.Y) + " " + c.doc.point(opts.Width, opts.Height)
	parts := []string{"gsave"}
	if opts.Fill != nil {
		fill, err := color.Parse(opts.Fill)
		if err != nil {
			c.doc.fail(fmt.Errorf("frame: fill: %w", err))
			return
		}
		parts = append(parts, "gsave", fill.String(), rect, "rectfill", "grestore")
	}
	if opts.Color != nil {
		border, err := color.Parse(opts.Color)
		if err != nil {
			c.doc.fail(fmt.Errorf("frame: %w", err))
			return
		}
		parts = append(parts, border.String())
	}
	if opts.LineWidth > 0 {
		parts = append(parts, ps.FormatReal(opts.LineWidth), "setlinewidth")
	}
	parts = append(parts, rect, "rectstroke", "grestore")
	c.raw(strings.Join(parts, " "))
}
