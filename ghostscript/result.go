package ghostscript

import (
	"strings"

	"github.com/madamkiwi/rghost/format"
)

// Result is the outcome of one interpreter run.
type Result struct {
	// Files are the output files written, in page order for multipage runs.
	Files []string
	// Output holds the rendered bytes of a streamed run.
	Output []byte
	// Log is the interpreter's diagnostic output.
	Log string
	// ExitCode is the interpreter exit status.
	ExitCode int
	// Args are the switches the interpreter was started with.
	Args []string
}

// Failed reports whether the interpreter exited with an error.
func (r *Result) Failed() bool {
	return r != nil && r.ExitCode != 0
}

// Errors returns the non-empty log lines of a failed run.
func (r *Result) Errors() []string {
	if !r.Failed() {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(r.Log, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Format detects the format of streamed output from its leading bytes.
func (r *Result) Format() format.Format {
	if r == nil {
		return format.Unknown
	}
	return format.DetectFromMagic(r.Output)
}
