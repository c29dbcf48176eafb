// Package format provides output and image format detection for rghost.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a file format produced by the interpreter or placed on
// a page.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// PS indicates a PostScript program.
	PS
	// EPS indicates Encapsulated PostScript.
	EPS
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a Windows bitmap.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PS:
		return "PS"
	case EPS:
		return "EPS"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PS:
		return ".ps"
	case EPS:
		return ".eps"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	default:
		return ""
	}
}

// Placeable reports whether the format can be drawn on a page as an image
// or template.
func (f Format) Placeable() bool {
	return f == EPS || f == PS || f == JPEG || f == GIF
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".ps":
		return PS
	case ".eps", ".epsf", ".epsi":
		return EPS
	case ".png":
		return PNG
	case ".jpg", ".jpeg", ".jpe":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes to determine format.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("%!PS")):
		// EPS files declare the EPSF version on the first line
		line := data
		if i := bytes.IndexAny(line, "\r\n"); i >= 0 {
			line = line[:i]
		}
		if bytes.Contains(line, []byte("EPSF")) {
			return EPS
		}
		return PS
	case bytes.HasPrefix(data, []byte{0xC5, 0xD0, 0xD3, 0xC6}):
		// DOS EPS binary header
		return EPS
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	default:
		return Unknown
	}
}
