package rghost

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/madamkiwi/rghost/ghostscript"
)

// RenderOptions controls one interpreter run. See ghostscript.RenderOptions.
type RenderOptions = ghostscript.RenderOptions

// Render converts the document with the interpreter. device is a short
// output name such as "pdf", "png" or "tiff", or any Ghostscript device
// name. A run that the interpreter rejects returns a Result with Failed()
// true and its log; err is reserved for runs that could not happen.
func (d *Document) Render(ctx context.Context, device string, opts RenderOptions) (*ghostscript.Result, error) {
	return d.run(ctx, device, opts, false)
}

// RenderStream converts the document and returns the output bytes instead
// of writing a file. A failed run is returned as an error carrying the
// interpreter log.
func (d *Document) RenderStream(ctx context.Context, device string, opts RenderOptions) ([]byte, error) {
	opts.Filename = ""
	opts.Multipage = false
	result, err := d.run(ctx, device, opts, true)
	if err != nil {
		return nil, err
	}
	if result.Failed() {
		return nil, wrapRenderError(fmt.Errorf("interpreter exited with code %d: %s",
			result.ExitCode, strings.Join(result.Errors(), "; ")))
	}
	return result.Output, nil
}

func (d *Document) run(ctx context.Context, device string, opts RenderOptions, stream bool) (*ghostscript.Result, error) {
	program, err := d.PS()
	if err != nil {
		return nil, wrapDocumentError(err)
	}

	job := ghostscript.Job{
		Device:  ghostscript.LookupDevice(device),
		Options: opts,
		Params:  d.renderParams(),
		Program: strings.NewReader(program),
		Stream:  stream,
	}
	d.logger.Debug("document.render", "device", string(job.Device), "stream", stream, "bytes", len(program))

	result, err := d.interpreter.Run(ctx, job)
	if err != nil {
		return nil, wrapRenderError(err)
	}
	if result.Failed() {
		d.logger.Warn("document.render_failed", "device", string(job.Device), "exit_code", result.ExitCode)
	}
	return result, nil
}

// renderParams returns the paper switches, read permissions for the files
// the program opens, the configured switches and the switches added by the
// document, such as security settings.
func (d *Document) renderParams() []string {
	params := append([]string(nil), d.paper.Params()...)
	for _, file := range d.readFiles() {
		params = append(params, "--permit-file-read="+file)
	}
	params = append(params, d.cfg.Ghostscript.Params...)
	return append(params, d.params...)
}

// readFiles returns the images, templates and font files the program opens.
// Ghostscript runs in SAFER mode and refuses to read any other file.
func (d *Document) readFiles() []string {
	files := append([]string(nil), d.files...)
	for _, file := range d.fonts.Files() {
		if !slices.Contains(files, file) {
			files = append(files, file)
		}
	}
	return files
}
