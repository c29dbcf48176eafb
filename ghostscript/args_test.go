package ghostscript

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want []string
	}{
		{
			name: "pdf file",
			job: Job{
				Device:  PDFWrite,
				Options: RenderOptions{Filename: "out.pdf", Quality: Ebook},
				Params:  []string{"-dDEVICEWIDTHPOINTS=595.2756", "-dDEVICEHEIGHTPOINTS=841.8898"},
			},
			want: []string{
				"-dNOPAUSE", "-dBATCH", "-dQUIET", "-dNOPAGEPROMPT",
				"-sDEVICE=pdfwrite",
				"-sOutputFile=out.pdf",
				"-dPDFSETTINGS=/ebook",
				"-dDEVICEWIDTHPOINTS=595.2756", "-dDEVICEHEIGHTPOINTS=841.8898",
				"-",
			},
		},
		{
			name: "multipage png",
			job: Job{
				Device: PNG16m,
				Options: RenderOptions{
					Filename:   "/tmp/page.png",
					Multipage:  true,
					Resolution: 300,
					Size:       "200x180",
					FirstPage:  2,
					LastPage:   3,
				},
			},
			want: []string{
				"-dNOPAUSE", "-dBATCH", "-dQUIET", "-dNOPAGEPROMPT",
				"-sDEVICE=png16m",
				"-sOutputFile=/tmp/page_%04d.png",
				"-r300",
				"-g200x180",
				"-dFirstPage=2",
				"-dLastPage=3",
				"-",
			},
		},
		{
			name: "stream with user switches",
			job: Job{
				Device: PS2Write,
				Stream: true,
				Options: RenderOptions{
					S:   map[string]string{"GenericResourceDir": "/dir", "DEFAULTPAPERSIZE": "a3"},
					D:   map[string]string{"TextAlphaBits": "2", "NOSAFER": ""},
					Raw: "-sFONTMAP=/var/fontmap  -dEPSCrop",
				},
			},
			want: []string{
				"-dNOPAUSE", "-dBATCH", "-dQUIET", "-dNOPAGEPROMPT",
				"-sDEVICE=ps2write",
				"-q", "-sstdout=%stderr",
				"-sOutputFile=%stdout%",
				"-sDEFAULTPAPERSIZE=a3", "-sGenericResourceDir=/dir",
				"-dNOSAFER", "-dTextAlphaBits=2",
				"-sFONTMAP=/var/fontmap", "-dEPSCrop",
				"-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args(tt.job)
			if err != nil {
				t.Fatalf("Args failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want string
	}{
		{"no device", Job{Options: RenderOptions{Filename: "a.pdf"}}, "device is required"},
		{"no filename", Job{Device: PDFWrite}, "filename is required"},
		{"bad size", Job{Device: PNG16m, Options: RenderOptions{Filename: "a.png", Size: "big"}}, "WIDTHxHEIGHT"},
		{"bad quality", Job{Device: PDFWrite, Options: RenderOptions{Filename: "a.pdf", Quality: "best"}}, "quality"},
		{"bad range", Job{Device: PDFWrite, Options: RenderOptions{Filename: "a.pdf", FirstPage: 5, LastPage: 2}}, "first page"},
		{"negative resolution", Job{Device: PNG16m, Options: RenderOptions{Filename: "a.png", Resolution: -1}}, "resolution"},
		{"bad param name", Job{Device: PDFWrite, Options: RenderOptions{Filename: "a.pdf", D: map[string]string{"a b": "1"}}}, "invalid parameter name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Args(tt.job)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.want)) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMultipageName(t *testing.T) {
	tests := []struct {
		filename  string
		multipage bool
		want      string
	}{
		{"out.png", false, "out.png"},
		{"out.png", true, "out_%04d.png"},
		{"dir/out", true, "dir/out_%04d"},
		{"", true, ""},
	}
	for _, tt := range tests {
		if got := MultipageName(tt.filename, tt.multipage); got != tt.want {
			t.Errorf("MultipageName(%q, %v) = %q, want %q", tt.filename, tt.multipage, got, tt.want)
		}
	}
}
