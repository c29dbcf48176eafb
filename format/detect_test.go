package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{PS, "PS"},
		{EPS, "EPS"},
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{GIF, "GIF"},
		{TIFF, "TIFF"},
		{BMP, "BMP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{PS, ".ps"},
		{EPS, ".eps"},
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{GIF, ".gif"},
		{TIFF, ".tif"},
		{BMP, ".bmp"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"out.ps", PS},
		{"/my/dir/first.eps", EPS},
		{"logo.epsf", EPS},
		{"page.png", PNG},
		{"photo.jpeg", JPEG},
		{"photo.JPG", JPEG},
		{"anim.gif", GIF},
		{"scan.tiff", TIFF},
		{"scan.tif", TIFF},
		{"icon.bmp", BMP},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"ps", []byte("%!PS-Adobe-3.0\n%%Creator: x"), PS},
		{"eps", []byte("%!PS-Adobe-3.0 EPSF-3.0\n"), EPS},
		{"eps not on first line", []byte("%!PS-Adobe-3.0\n% EPSF mention"), PS},
		{"dos eps", []byte{0xC5, 0xD0, 0xD3, 0xC6, 0x00}, EPS},
		{"png", []byte("\x89PNG\r\n\x1a\n...."), PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, JPEG},
		{"gif", []byte("GIF89a...."), GIF},
		{"tiff little endian", []byte("II*\x00...."), TIFF},
		{"tiff big endian", []byte("MM\x00*...."), TIFF},
		{"bmp", []byte("BM...."), BMP},
		{"short", []byte("%P"), Unknown},
		{"empty", nil, Unknown},
		{"text", []byte("hello"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceable(t *testing.T) {
	for _, f := range []Format{EPS, PS, JPEG, GIF} {
		if !f.Placeable() {
			t.Errorf("%v should be placeable", f)
		}
	}
	for _, f := range []Format{PDF, PNG, TIFF, BMP, Unknown} {
		if f.Placeable() {
			t.Errorf("%v should not be placeable", f)
		}
	}
}
