package rghost

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	goerrors "github.com/goliatone/go-errors"

	"github.com/madamkiwi/rghost/config"
	"github.com/madamkiwi/rghost/ghostscript"
)

func TestRender(t *testing.T) {
	fake := &fakeInterpreter{}
	cfg := config.Default()
	cfg.Ghostscript.Params = []string{"-dSAFER"}
	d := New(WithConfig(cfg), WithInterpreter(fake))
	d.Show("Hello", ShowOptions{})

	result, err := d.Render(context.Background(), "pdf", RenderOptions{Filename: "out.pdf"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if diff := cmp.Diff([]string{"out.pdf"}, result.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}

	if len(fake.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(fake.jobs))
	}
	job := fake.jobs[0]
	if job.Device != ghostscript.PDFWrite {
		t.Errorf("Device = %s, want pdfwrite", job.Device)
	}
	if job.Stream {
		t.Error("Render must not stream")
	}
	want := []string{"-dDEVICEWIDTHPOINTS=595.2756", "-dDEVICEHEIGHTPOINTS=841.8898", "-dSAFER"}
	if diff := cmp.Diff(want, job.Params); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}
	if fake.programs[0] != program(t, d) {
		t.Error("interpreter received a different program")
	}
}

func TestRenderFailedRun(t *testing.T) {
	fake := &fakeInterpreter{result: &ghostscript.Result{ExitCode: 1, Log: "Error: /undefined in foo\n"}}
	d := New(WithInterpreter(fake))

	result, err := d.Render(context.Background(), "png", RenderOptions{Filename: "out.png"})
	if err != nil {
		t.Fatalf("a failed run is reported by the result, got error %v", err)
	}
	if !result.Failed() {
		t.Fatal("expected a failed result")
	}
	if diff := cmp.Diff([]string{"Error: /undefined in foo"}, result.Errors()); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}
	if fake.jobs[0].Device != ghostscript.PNG16m {
		t.Errorf("Device = %s, want png16m", fake.jobs[0].Device)
	}
}

func TestRenderStream(t *testing.T) {
	fake := &fakeInterpreter{result: &ghostscript.Result{Output: []byte("%PDF-1.4")}}
	d := New(WithInterpreter(fake))

	out, err := d.RenderStream(context.Background(), "pdf", RenderOptions{Filename: "ignored.pdf", Multipage: true})
	if err != nil {
		t.Fatalf("RenderStream failed: %v", err)
	}
	if string(out) != "%PDF-1.4" {
		t.Errorf("output = %q", out)
	}
	job := fake.jobs[0]
	if !job.Stream || job.Options.Filename != "" || job.Options.Multipage {
		t.Errorf("stream job not cleared: %+v", job.Options)
	}
}

func TestRenderStreamFailure(t *testing.T) {
	fake := &fakeInterpreter{result: &ghostscript.Result{ExitCode: 1, Log: "Error: /undefined in foo\nOperand stack:\n"}}
	d := New(WithInterpreter(fake))

	_, err := d.RenderStream(context.Background(), "pdf", RenderOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Errorf("expected command category, got %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("invalid document", func(t *testing.T) {
		fake := &fakeInterpreter{}
		d := New(WithInterpreter(fake), WithRowsPerPage(-1))
		_, err := d.Render(context.Background(), "pdf", RenderOptions{Filename: "out.pdf"})
		if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Errorf("expected validation category, got %v", err)
		}
		if len(fake.jobs) != 0 {
			t.Error("interpreter must not run for an invalid document")
		}
	})

	t.Run("interpreter error", func(t *testing.T) {
		fake := &fakeInterpreter{err: errors.New("exec: gs: not found")}
		d := New(WithInterpreter(fake))
		_, err := d.Render(context.Background(), "pdf", RenderOptions{Filename: "out.pdf"})
		if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
			t.Errorf("expected command category, got %v", err)
		}
	})

	t.Run("wrapped error kept", func(t *testing.T) {
		inner := goerrors.Wrap(errors.New("bad switch"), goerrors.CategoryValidation, "render options are invalid")
		fake := &fakeInterpreter{err: inner}
		d := New(WithInterpreter(fake))
		_, err := d.Render(context.Background(), "pdf", RenderOptions{Filename: "out.pdf"})
		if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Errorf("expected the interpreter category, got %v", err)
		}
	})
}
