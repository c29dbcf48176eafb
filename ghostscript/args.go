package ghostscript

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// StdoutFile is the output name that makes the interpreter write to stdout.
const StdoutFile = "%stdout%"

// baseArgs are passed on every run.
var baseArgs = []string{"-dNOPAUSE", "-dBATCH", "-dQUIET", "-dNOPAGEPROMPT"}

// Job is one interpreter run.
type Job struct {
	Device  Device
	Options RenderOptions
	// Params are extra switches from the document, such as paper size and
	// security settings. They are placed before the user switches.
	Params []string
	// Program is the PostScript text written to the interpreter's stdin.
	Program io.Reader
	// Stream writes the output to stdout instead of a file.
	Stream bool
}

// OutputFile returns the -sOutputFile value for the job.
func (j Job) OutputFile() string {
	if j.Stream {
		return StdoutFile
	}
	return MultipageName(j.Options.Filename, j.Options.Multipage)
}

// MultipageName returns filename, or when multipage is set the page
// numbered pattern the interpreter expands: "out.png" becomes
// "out_%04d.png".
func MultipageName(filename string, multipage bool) string {
	if !multipage || filename == "" {
		return filename
	}
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_%04d" + ext
}

// Args returns the command-line switches for job. The program is always read
// from stdin, so the last argument is "-".
func Args(job Job) ([]string, error) {
	if job.Device == "" {
		return nil, fmt.Errorf("ghostscript: device is required")
	}
	if err := job.Options.Validate(); err != nil {
		return nil, err
	}
	if !job.Stream && job.Options.Filename == "" {
		return nil, fmt.Errorf("ghostscript: output filename is required")
	}

	opts := job.Options
	args := append([]string(nil), baseArgs...)
	args = append(args, "-sDEVICE="+string(job.Device))
	if job.Stream {
		// keeps PostScript print output away from the rendered bytes
		args = append(args, "-q", "-sstdout=%stderr")
	}
	args = append(args, "-sOutputFile="+job.OutputFile())

	if opts.Resolution > 0 {
		args = append(args, "-r"+strconv.Itoa(opts.Resolution))
	}
	if opts.Quality != "" {
		args = append(args, "-dPDFSETTINGS=/"+string(opts.Quality))
	}
	if opts.Size != "" {
		args = append(args, "-g"+opts.Size)
	}
	if opts.FirstPage > 0 {
		args = append(args, "-dFirstPage="+strconv.Itoa(opts.FirstPage))
	}
	if opts.LastPage > 0 {
		args = append(args, "-dLastPage="+strconv.Itoa(opts.LastPage))
	}

	args = append(args, job.Params...)
	args = append(args, opts.switches()...)
	return append(args, "-"), nil
}
