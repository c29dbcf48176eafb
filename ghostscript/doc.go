// Package ghostscript runs PostScript programs through the Ghostscript
// interpreter.
//
// The interpreter is an external collaborator: it receives the program text
// on stdin together with command-line switches and returns output files,
// an exit code and its log. [Interpreter] models that contract and [Exec]
// implements it with os/exec.
//
// Switches are built by [Args] from a [Job]:
//
//	job := ghostscript.Job{
//		Device:  ghostscript.PDFWrite,
//		Options: ghostscript.RenderOptions{Filename: "out.pdf", Quality: ghostscript.Ebook},
//		Program: strings.NewReader(program),
//	}
//	result, err := ghostscript.NewExec("gs", nil).Run(ctx, job)
//
// A non-zero exit status is not an error: it is reported by
// [Result.Failed] along with the interpreter log, so callers can show the
// PostScript error that stopped the run.
package ghostscript
