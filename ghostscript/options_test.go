package ghostscript

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    RenderOptions
		wantErr string
	}{
		{"zero", RenderOptions{}, ""},
		{"full", RenderOptions{Resolution: 300, Quality: Prepress, Size: "200x180", FirstPage: 2, LastPage: 4}, ""},
		{"resolution", RenderOptions{Resolution: -1}, "Resolution"},
		{"quality", RenderOptions{Quality: "poster"}, "Quality"},
		{"size", RenderOptions{Size: "200 by 180"}, "WIDTHxHEIGHT"},
		{"page range", RenderOptions{FirstPage: 5, LastPage: 2}, "must not be before the first page"},
		{"param name", RenderOptions{D: map[string]string{"bad key": "1"}}, "invalid parameter name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRenderOptionsSwitches(t *testing.T) {
	opts := RenderOptions{
		S:   map[string]string{"PAPERSIZE": "a4", "ColorConversionStrategy": "Gray"},
		D:   map[string]string{"TextAlphaBits": "4", "SAFER": ""},
		Raw: " -dNOCACHE  -c quit ",
	}
	want := []string{
		"-sColorConversionStrategy=Gray",
		"-sPAPERSIZE=a4",
		"-dSAFER",
		"-dTextAlphaBits=4",
		"-dNOCACHE", "-c", "quit",
	}
	if diff := cmp.Diff(want, opts.switches()); diff != "" {
		t.Errorf("switches mismatch (-want +got):\n%s", diff)
	}
	if got := (RenderOptions{}).switches(); len(got) != 0 {
		t.Errorf("empty options switches = %v", got)
	}
}
