// Package rghost builds PostScript documents and converts them to PDF,
// images or PostScript with Ghostscript.
//
// A Document accumulates drawing operations, procedures, font tags,
// callbacks and settings. PS serializes them into one program, and Render
// hands that program to the interpreter.
//
// Basic usage:
//
//	doc := rghost.New(rghost.WithPaper("A4"), rghost.WithMargin(1.5))
//	doc.Show("Hello, world", rghost.ShowOptions{Tag: "big"})
//	doc.NextRow()
//	doc.Text("Plain, <b>bold</b> and <i>italic</i> words.")
//	result, err := doc.Render(ctx, "pdf", rghost.RenderOptions{Filename: "hello.pdf"})
//	if err != nil {
//	    // the document is invalid or the interpreter could not run
//	}
//	if result.Failed() {
//	    log.Println(result.Errors())
//	}
//
// Page callbacks draw headers, footers and templates:
//
//	doc.FirstPage(func(c *rghost.Canvas) {
//	    c.Image("/my/dir/first.eps", rghost.ImageOptions{})
//	})
//	doc.BeforePageCreate(callback.Except(1), func(c *rghost.Canvas) {
//	    c.TextIn(rghost.TextInOptions{X: 18, Y: 27, Text: "Page %current_page% of %count_pages%"})
//	})
//
// Lengths passed to options and drawing operations are in the document unit,
// centimeters unless WithUnit says otherwise.
package rghost

// Version is the library version.
const Version = "0.1.0"

// Producer is the default Producer document property.
const Producer = "RGhost for Go v" + Version

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	program := rghost.Must(doc.PS())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
