package rghost

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/madamkiwi/rghost/callback"
	"github.com/madamkiwi/rghost/config"
	"github.com/madamkiwi/rghost/fontmap"
	"github.com/madamkiwi/rghost/format"
	"github.com/madamkiwi/rghost/ghostscript"
	"github.com/madamkiwi/rghost/library"
	"github.com/madamkiwi/rghost/logging"
	"github.com/madamkiwi/rghost/markup"
	"github.com/madamkiwi/rghost/paper"
	"github.com/madamkiwi/rghost/ps"
	"github.com/madamkiwi/rghost/security"
	"github.com/madamkiwi/rghost/units"
)

// Document accumulates a PostScript program. Drawing operations on the
// embedded Canvas go to the document body; procedures, templates and
// callbacks are kept in their own sections and serialized in a fixed order
// by PS.
//
// Errors are recorded, not returned: after the first error every operation
// is a no-op and Err, Render and RenderStream report it.
type Document struct {
	*Canvas

	cfg         config.Config
	unit        units.Unit
	paper       paper.Paper
	encoder     *ps.Encoder
	loader      *library.Loader
	logger      logging.Logger
	interpreter ghostscript.Interpreter

	head      ps.Buffer
	variables ps.Buffer
	defines   []ps.Object
	content   ps.Buffer
	fonts     *fontmap.Map
	callbacks callback.Set

	// libraries loaded after begin_document, in first-seen order
	preload   []string
	// files read by the program, in first-seen order
	files     []string
	libs      map[string]string
	params    []string
	info      DocInfo
	benchmark bool

	done     bool
	err      error
	warnings []Warning
}

// New creates a document. Options override the defaults of the
// configuration given with WithConfig, or of config.Default.
func New(opts ...Option) *Document {
	o := resolveOptions(opts)
	d := &Document{
		cfg:   *o.config,
		unit:  o.unit,
		fonts: fontmap.New(),
		libs:  make(map[string]string),
		info:  DocInfo{Producer: Producer},
	}
	d.Canvas = newCanvas(d, &d.content, true)

	d.logger = o.logger
	if d.logger == nil {
		provider, err := d.cfg.Logging.Provider()
		if err != nil {
			d.logger = logging.NoOp()
			d.fail(fmt.Errorf("logging: %w", err))
		} else {
			d.logger = logging.Named(provider, "rghost")
		}
	}

	d.loader = library.New()
	if o.libraries != nil {
		d.loader = library.WithOverlay(o.libraries)
	} else if dir := d.cfg.Document.LibraryDir; dir != "" {
		d.loader = library.WithOverlay(os.DirFS(dir))
	}

	d.interpreter = o.interpreter
	if d.interpreter == nil {
		d.interpreter = ghostscript.NewExec(d.cfg.Ghostscript.Path,
			logging.WithFields(d.logger, map[string]any{"component": "ghostscript"}))
	}

	if err := d.cfg.Validate(); err != nil {
		d.fail(fmt.Errorf("config: %w", err))
		return d
	}
	if err := validateOptions(o); err != nil {
		d.fail(err)
		return d
	}
	d.setup(o)
	if d.err != nil {
		return d
	}
	d.logger.Debug("document.created",
		"paper", d.paper.Size.Name,
		"unit", d.unit.String(),
		"encoding", d.encoder.Name(),
		"rows_per_page", o.rowsPerPage,
	)
	return d
}

func validateOptions(o options) error {
	err := validation.Errors{
		"rows_per_page": validation.Validate(o.rowsPerPage, validation.Required, validation.Min(1)),
		"count_pages":   validation.Validate(o.countPages, validation.Min(0)),
		"row_height":    validation.Validate(o.rowHeight, validation.Required, validation.Min(0.0)),
		"row_padding":   validation.Validate(o.rowPadding, validation.Min(0.0)),
		"font_size":     validation.Validate(o.fontSize, validation.Min(0.0)),
		"margins": validation.Validate(o.margins[:], validation.Each(
			validation.Min(0.0).Error("must not be negative"),
		)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	return nil
}

// setup builds the head and the default variables.
func (d *Document) setup(o options) {
	enc, err := ps.NewEncoder(o.fontEncoding)
	if err != nil {
		d.fail(err)
		return
	}
	d.encoder = enc

	p := paper.New()
	if o.width > 0 && o.height > 0 {
		p.Size = paper.Custom(o.width, o.height, o.unit)
	} else {
		size, err := paper.Lookup(o.paper)
		if err != nil {
			d.fail(err)
			return
		}
		p.Size = size
	}
	p.Landscape = o.landscape
	p.Margins = paper.Margins{
		Top:    o.unit.ToPoints(o.margins[0]),
		Right:  o.unit.ToPoints(o.margins[1]),
		Bottom: o.unit.ToPoints(o.margins[2]),
		Left:   o.unit.ToPoints(o.margins[3]),
	}
	p.Duplex = o.duplex
	p.Tumble = o.tumble
	if err := p.Validate(); err != nil {
		d.fail(err)
		return
	}
	d.paper = p

	if o.fontSize > 0 {
		if err := d.fonts.Set(fontmap.Tag{Name: fontmap.DefaultTag, Size: o.fontSize, Encoding: true}); err != nil {
			d.fail(err)
			return
		}
	}

	d.head.Raw("%!PS-Adobe-3.0")
	d.head.Raw("%%Creator: " + Producer)
	for _, name := range []string{"type", "unit"} {
		src, err := d.loader.Library(name)
		if err != nil {
			d.fail(err)
			return
		}
		d.head.Raw(src)
	}
	src, err := d.loader.Encoding(enc.Name())
	if err != nil {
		d.fail(err)
		return
	}
	d.head.Raw(src)
	d.head.Set(ps.Variable{Name: "default_encoding", Value: ps.Name(enc.Name())})
	d.head.Set(d.paper)

	d.variables.Set(ps.Variable{Name: "rows_per_page", Value: ps.Int(o.rowsPerPage)})
	d.variables.Set(ps.Variable{Name: "count_pages", Value: ps.Int(o.countPages)})
	d.variables.Set(ps.Variable{Name: "row_height", Value: ps.Real(o.unit.ToPoints(o.rowHeight))})
	d.variables.Set(ps.Variable{Name: "row_padding", Value: ps.Real(o.unit.ToPoints(o.rowPadding))})

	for _, name := range o.preload {
		d.require(name)
	}
}

// fail records the first error.
func (d *Document) fail(err error) {
	if err == nil || d.err != nil {
		return
	}
	d.err = err
	d.logger.Error("document.error", "error", err)
}

func (d *Document) warn(op, msg string) {
	w := Warning{Operation: op, Message: msg}
	d.warnings = append(d.warnings, w)
	d.logger.Warn("document.warning", "operation", op, "message", msg)
}

// mutable reports whether the document accepts changes.
func (d *Document) mutable() bool {
	if d.err != nil {
		return false
	}
	if d.done {
		d.fail(ErrDocumentDone)
		return false
	}
	return true
}

// require adds a library to the preload section once.
func (d *Document) require(name string) {
	if _, ok := d.libs[name]; ok {
		return
	}
	src, err := d.loader.Library(name)
	if err != nil {
		d.fail(fmt.Errorf("preload: %w", err))
		return
	}
	d.libs[name] = src
	d.preload = append(d.preload, name)
}

// point formats x, y in the document unit as points.
func (d *Document) point(x, y float64) string {
	return ps.FormatReal(d.unit.ToPoints(x)) + " " + ps.FormatReal(d.unit.ToPoints(y))
}

var variablePattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// textExpr returns an expression leaving text on the stack as a string.
// Each %name% is replaced at run time by the value of the variable name.
func (d *Document) textExpr(text string) string {
	matches := variablePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return d.encoder.Literal(text).String()
	}

	var parts []string
	n := 0
	push := func(expr string) {
		parts = append(parts, expr)
		n++
		if n > 1 {
			parts = append(parts, "_concat")
		}
	}
	last := 0
	for _, m := range matches {
		if m[0] > last {
			push(d.encoder.Literal(text[last:m[0]]).String())
		}
		push(text[m[2]:m[3]] + " _str")
		last = m[1]
	}
	if last < len(text) {
		push(d.encoder.Literal(text[last:]).String())
	}
	return strings.Join(parts, " ")
}

// image returns the drawing of an image file.
func (d *Document) image(path string, opts ImageOptions) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image: path is required")
	}
	zoom := opts.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if zoom < 0 {
		return "", fmt.Errorf("image %s: zoom must be positive", path)
	}

	origin := "currentpoint translate"
	if opts.X != 0 || opts.Y != 0 {
		origin = d.point(opts.X, opts.Y) + " translate"
	}
	scale := ps.FormatReal(zoom) + " " + ps.FormatReal(zoom) + " scale"
	file := ps.Literal(path).String()

	var obj string
	switch kind := format.Detect(path); kind {
	case format.EPS, format.PS:
		obj = "save /showpage {} def " + origin + " " + scale + " " + file + " run restore"
	case format.JPEG:
		d.require("jpeg")
		obj = "gsave " + origin + " " + scale + " " + file + " viewJPEG grestore"
	case format.GIF:
		d.require("gif")
		obj = "gsave " + origin + " " + scale + " " + file + " viewGIF grestore"
	default:
		return "", fmt.Errorf("image %s: unsupported format %s", path, kind)
	}
	d.readsFile(path)
	return obj, nil
}

// readsFile records a file the program opens, so the interpreter can be
// allowed to read it.
func (d *Document) readsFile(path string) {
	if !slices.Contains(d.files, path) {
		d.files = append(d.files, path)
	}
}

// object converts a Go value to a PostScript object.
func (d *Document) object(v any) (ps.Object, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case ps.Object:
		return t, nil
	case string:
		return d.encoder.Literal(t), nil
	case bool:
		return ps.Bool(t), nil
	case int:
		return ps.Int(t), nil
	case int32:
		return ps.Int(t), nil
	case int64:
		return ps.Int(t), nil
	case float32:
		return ps.Real(t), nil
	case float64:
		return ps.Real(t), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// Fonts returns the document font map.
func (d *Document) Fonts() *fontmap.Map {
	return d.fonts
}

// Paper returns the page setup.
func (d *Document) Paper() paper.Paper {
	return d.paper
}

// DefineTags declares or replaces font tags. An error returned by fn is
// recorded as the document error.
func (d *Document) DefineTags(fn func(tags *fontmap.Map) error) {
	if !d.mutable() {
		return
	}
	if err := fn(d.fonts); err != nil {
		d.fail(fmt.Errorf("define tags: %w", err))
	}
}

// Define declares a procedure named name drawn by fn. It runs wherever Call
// invokes it.
func (d *Document) Define(name string, fn func(c *Canvas)) {
	if !d.mutable() {
		return
	}
	if !ps.ValidName(name) {
		d.fail(fmt.Errorf("define: invalid procedure name %q", name))
		return
	}
	var buf ps.Buffer
	fn(newCanvas(d, &buf, false))
	d.defines = append(d.defines, ps.Function{Name: name, Body: ps.Raw(buf.String())})
}

// DefineAndCall declares a procedure and calls it at the current position
// of the body.
func (d *Document) DefineAndCall(name string, fn func(c *Canvas)) {
	d.Define(name, fn)
	d.Call(name)
}

// DefineVariable appends "/name value def" to the body. value is a
// ps.Object, a string, a bool, an integer, a float or nil.
func (d *Document) DefineVariable(name string, value any) {
	if !d.mutable() {
		return
	}
	if !ps.ValidName(name) {
		d.fail(fmt.Errorf("define variable: invalid name %q", name))
		return
	}
	obj, err := d.object(value)
	if err != nil {
		d.fail(fmt.Errorf("define variable %s: %w", name, err))
		return
	}
	d.content.Set(ps.Variable{Name: name, Value: obj})
}

// DefineTemplate declares a procedure drawing an image, typically an EPS
// page background.
func (d *Document) DefineTemplate(name, path string, opts ImageOptions) {
	if !d.mutable() {
		return
	}
	obj, err := d.image(path, opts)
	if err != nil {
		d.fail(fmt.Errorf("define template %s: %w", name, err))
		return
	}
	d.Define(name, func(c *Canvas) { c.Raw(obj) })
}

// UseTemplate draws a template declared with DefineTemplate.
func (d *Document) UseTemplate(name string) {
	d.Call(name)
}

// PrintFile writes the contents of r with the pre tag, one input line per
// row, wrapping long lines. Spaces are kept and tabs are expanded.
func (d *Document) PrintFile(r io.Reader) {
	if !d.mutable() {
		return
	}
	data, err := io.ReadAll(r)
	if err != nil {
		d.fail(fmt.Errorf("print file: %w", err))
		return
	}
	d.UseTag("pre")
	d.text("print file", markup.Escape(expandTabs(string(data), tabWidth), true), true)
}

// tabWidth is the distance between tab stops in PrintFile, in characters.
const tabWidth = 8

// expandTabs replaces tabs with spaces up to the next tab stop of each line.
func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// On registers fn for event. filter restricts page events to some pages;
// nil means every page. fn draws inside gsave and grestore: a tag or color
// it selects ends with the callback and does not style the page body.
func (d *Document) On(event callback.Event, filter callback.Filter, fn func(c *Canvas)) {
	if !d.mutable() {
		return
	}
	var buf ps.Buffer
	fn(newCanvas(d, &buf, false))
	err := d.callbacks.Add(callback.Callback{
		Event:  event,
		Filter: filter,
		Body:   ps.Raw(buf.String()),
	})
	if err != nil {
		d.fail(err)
	}
}

// BeforeDocumentCreate runs fn once, before the first page.
func (d *Document) BeforeDocumentCreate(fn func(c *Canvas)) {
	d.On(callback.BeforeDocumentCreate, nil, fn)
}

// AfterDocumentCreate runs fn once, after the last page.
func (d *Document) AfterDocumentCreate(fn func(c *Canvas)) {
	d.On(callback.AfterDocumentCreate, nil, fn)
}

// BeforePageCreate runs fn at the start of the pages selected by filter.
func (d *Document) BeforePageCreate(filter callback.Filter, fn func(c *Canvas)) {
	d.On(callback.BeforePageCreate, filter, fn)
}

// AfterPageCreate runs fn at the end of the pages selected by filter.
func (d *Document) AfterPageCreate(filter callback.Filter, fn func(c *Canvas)) {
	d.On(callback.AfterPageCreate, filter, fn)
}

// BeforeVirtualPageCreate runs fn at the start of each virtual page.
func (d *Document) BeforeVirtualPageCreate(filter callback.Filter, fn func(c *Canvas)) {
	d.On(callback.BeforeVirtualPageCreate, filter, fn)
}

// AfterVirtualPageCreate runs fn at the end of each virtual page.
func (d *Document) AfterVirtualPageCreate(filter callback.Filter, fn func(c *Canvas)) {
	d.On(callback.AfterVirtualPageCreate, filter, fn)
}

// FirstPage runs fn at the start of page 1.
func (d *Document) FirstPage(fn func(c *Canvas)) {
	d.BeforePageCreate(callback.Only(1), fn)
}

// OddPages runs fn at the start of odd pages.
func (d *Document) OddPages(fn func(c *Canvas)) {
	d.BeforePageCreate(callback.Odd(), fn)
}

// EvenPages runs fn at the start of even pages.
func (d *Document) EvenPages(fn func(c *Canvas)) {
	d.BeforePageCreate(callback.Even(), fn)
}

// Security encrypts PDF output with the settings filled in by fn.
func (d *Document) Security(fn func(s *security.Settings)) {
	if !d.mutable() {
		return
	}
	var s security.Settings
	fn(&s)
	params, err := s.Params()
	if err != nil {
		d.fail(fmt.Errorf("security: %w", err))
		return
	}
	d.params = append(d.params, params...)
}

// BenchmarkState starts or stops the benchmark.
type BenchmarkState int

const (
	// BenchmarkStart records the interpreter time.
	BenchmarkStart BenchmarkState = iota
	// BenchmarkStop writes the elapsed seconds at the bottom of the page.
	BenchmarkStop
)

// Benchmark measures interpreter time between a start and a stop.
func (d *Document) Benchmark(state BenchmarkState) {
	if !d.mutable() {
		return
	}
	switch state {
	case BenchmarkStart:
		d.benchmark = true
		d.content.Set(ps.Variable{Name: "benchmark", Value: ps.Raw("realtime")})
	case BenchmarkStop:
		if !d.benchmark {
			d.warn("benchmark", "stop without start")
			return
		}
		d.content.Raw("20 20 moveto")
		d.content.Raw(fontmap.ProcName(fontmap.DefaultTag) + " (RGhost benchmark: ) show")
		d.content.Raw("realtime benchmark sub 1000 div 20 string cvs show ( seconds) show")
	}
}

// Info sets document properties. Empty fields keep their current value.
func (d *Document) Info(info DocInfo) {
	if !d.mutable() {
		return
	}
	for k := range info.Custom {
		if !ps.ValidName(k) {
			d.fail(fmt.Errorf("info: invalid key %q", k))
			return
		}
	}
	d.info.merge(info)
}

// Done closes the document: it runs the closing callbacks and ends the last
// page. Done is idempotent; PS calls it when needed.
func (d *Document) Done() {
	if d.done {
		return
	}
	d.content.Raw("\n")
	d.content.Call(string(callback.AfterPageCreate))
	d.content.Call(string(callback.AfterDocumentCreate))
	d.content.Raw("showpage")
	d.content.Raw("\n%%EOF")
	d.done = true
}

// Err returns the first error recorded while building the document.
func (d *Document) Err() error {
	return d.err
}

// Warnings returns the non-fatal issues found so far.
func (d *Document) Warnings() []Warning {
	return append([]Warning(nil), d.warnings...)
}
