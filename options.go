package rghost

import (
	"io/fs"

	"github.com/madamkiwi/rghost/config"
	"github.com/madamkiwi/rghost/ghostscript"
	"github.com/madamkiwi/rghost/logging"
	"github.com/madamkiwi/rghost/units"
)

// Option configures a Document.
type Option func(*options)

// options holds document configuration. Lengths are in unit.
type options struct {
	config *config.Config

	// Rows and pages
	rowsPerPage int
	countPages  int
	rowHeight   float64
	rowPadding  float64

	// Fonts
	fontEncoding string
	fontSize     float64

	// Paper
	unit      units.Unit
	paper     string
	width     float64 // custom size when width and height are set
	height    float64
	landscape bool
	margins   [4]float64 // top, right, bottom, left
	duplex    bool
	tumble    bool

	// Collaborators
	logger      logging.Logger
	interpreter ghostscript.Interpreter
	libraries   fs.FS
	preload     []string
}

// defaultOptions returns the options described by cfg.
func defaultOptions(cfg config.Config) options {
	doc := cfg.Document
	unit, err := units.Lookup(doc.Unit)
	if err != nil {
		unit = units.Centimeter
	}
	m := doc.Margin
	return options{
		config:       &cfg,
		rowsPerPage:  doc.RowsPerPage,
		countPages:   doc.CountPages,
		rowHeight:    doc.RowHeight,
		rowPadding:   doc.RowPadding,
		fontEncoding: doc.FontEncoding,
		unit:         unit,
		paper:        doc.Paper,
		landscape:    doc.Landscape,
		margins:      [4]float64{m, m, m, m},
		preload:      append([]string(nil), doc.Preload...),
	}
}

// clone creates a deep copy of options.
func (o options) clone() options {
	n := o
	if o.config != nil {
		cfg := *o.config
		n.config = &cfg
	}
	n.preload = append([]string(nil), o.preload...)
	return n
}

// resolveOptions applies opts over the defaults of the configuration they
// select, or config.Default when none does.
func resolveOptions(opts []Option) options {
	var probe options
	for _, opt := range opts {
		opt(&probe)
	}
	cfg := config.Default()
	if probe.config != nil {
		cfg = *probe.config
	}

	o := defaultOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	return o.clone()
}

// WithConfig uses cfg for every default not set by another option.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.config = &cfg }
}

// WithRowsPerPage sets the number of rows per page. Default 80.
func WithRowsPerPage(n int) Option {
	return func(o *options) { o.rowsPerPage = n }
}

// WithCountPages sets the count_pages variable, shown by "%count_pages%".
// Default 10.
func WithCountPages(n int) Option {
	return func(o *options) { o.countPages = n }
}

// WithRowHeight sets the row height in the document unit. Default 0.4.
func WithRowHeight(v float64) Option {
	return func(o *options) { o.rowHeight = v }
}

// WithRowPadding sets the row padding in the document unit. Default 0.1.
func WithRowPadding(v float64) Option {
	return func(o *options) { o.rowPadding = v }
}

// WithFontEncoding sets the font encoding, such as "IsoLatin" or
// "CodePage1252".
func WithFontEncoding(name string) Option {
	return func(o *options) { o.fontEncoding = name }
}

// WithFontSize sets the size of the default_font tag in points.
func WithFontSize(size float64) Option {
	return func(o *options) { o.fontSize = size }
}

// WithUnit sets the unit of every length option and drawing operation.
func WithUnit(u units.Unit) Option {
	return func(o *options) { o.unit = u }
}

// WithPaper selects a named paper size such as "A4" or "Letter".
func WithPaper(name string) Option {
	return func(o *options) {
		o.paper = name
		o.width, o.height = 0, 0
	}
}

// WithPaperSize sets a custom paper size in the document unit.
func WithPaperSize(width, height float64) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithLandscape swaps the paper width and height.
func WithLandscape() Option {
	return func(o *options) { o.landscape = true }
}

// WithMargin sets every margin in the document unit. Default 1.
func WithMargin(v float64) Option {
	return func(o *options) { o.margins = [4]float64{v, v, v, v} }
}

// WithMargins sets each margin in the document unit.
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *options) { o.margins = [4]float64{top, right, bottom, left} }
}

// WithDuplex requests double-sided output.
func WithDuplex() Option {
	return func(o *options) { o.duplex = true }
}

// WithTumble flips every other page on the short edge in duplex output.
func WithTumble() Option {
	return func(o *options) { o.tumble = true }
}

// WithLogger sets the document logger. Without it the logger comes from the
// configuration, or logging is disabled.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithInterpreter sets the interpreter used by Render and RenderStream.
// Default is ghostscript.Exec with the configured binary.
func WithInterpreter(interpreter ghostscript.Interpreter) Option {
	return func(o *options) { o.interpreter = interpreter }
}

// WithLibraries overlays library and encoding sources on the embedded ones.
func WithLibraries(fsys fs.FS) Option {
	return func(o *options) { o.libraries = fsys }
}

// WithPreload adds libraries loaded after begin_document.
func WithPreload(names ...string) Option {
	return func(o *options) { o.preload = append(o.preload, names...) }
}
