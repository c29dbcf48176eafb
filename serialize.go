package rghost

import (
	"fmt"
	"io"
	"strings"

	"github.com/madamkiwi/rghost/fontmap"
	"github.com/madamkiwi/rghost/ps"
)

// cursorHome moves to the first row of the current page or virtual page.
const cursorHome = "limit_left row_top moveto"

// PS closes the document if needed and returns the complete program. The
// sections are written in a fixed order: head, document info, default
// variables, environment, procedures, cursor, font map, callbacks, default
// font, begin_document, preloaded libraries, cursor and body. Calling PS
// again returns the same text.
func (d *Document) PS() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.Done()

	env, err := d.loader.Library("environment")
	if err != nil {
		return "", fmt.Errorf("environment: %w", err)
	}
	begin, err := d.loader.Library("begin_document")
	if err != nil {
		return "", fmt.Errorf("begin_document: %w", err)
	}

	var out ps.Buffer
	out.Raw(d.head.String())
	out.Raw(d.info.pdfmark(d.encoder))
	out.Raw(d.variables.String())
	out.Raw(env)
	for _, def := range d.defines {
		out.Set(def)
	}
	out.Raw(cursorHome)
	out.Raw(d.fonts.PS(d.encoder.Name()))
	if d.callbacks.Len() > 0 {
		out.Raw(d.callbacks.PS())
	}
	out.Raw(fontmap.ProcName(fontmap.DefaultTag))
	out.Raw(begin)
	for _, name := range d.preload {
		out.Raw(d.libs[name])
	}
	out.Raw(cursorHome)
	out.Raw(d.content.String())

	return out.String() + "\n\n ", nil
}

// String returns the program, or "" when the document has an error.
func (d *Document) String() string {
	program, err := d.PS()
	if err != nil {
		return ""
	}
	return program
}

// WriteTo writes the program to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	program, err := d.PS()
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(w, strings.NewReader(program))
	return n, err
}
