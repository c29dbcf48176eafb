package ghostscript

import (
	"sort"
	"strings"

	"github.com/madamkiwi/rghost/format"
)

// Device is a Ghostscript output device name.
type Device string

// Common output devices.
const (
	PDFWrite  Device = "pdfwrite"
	PS2Write  Device = "ps2write"
	EPS2Write Device = "eps2write"
	PNG16m    Device = "png16m"
	PNGAlpha  Device = "pngalpha"
	PNGGray   Device = "pnggray"
	JPEG      Device = "jpeg"
	JPEGGray  Device = "jpeggray"
	TIFF24nc  Device = "tiff24nc"
	TIFFG4    Device = "tiffg4"
	BMP16m    Device = "bmp16m"
	TXTWrite  Device = "txtwrite"
)

// aliases maps short output names to devices.
var aliases = map[string]Device{
	"pdf":  PDFWrite,
	"ps":   PS2Write,
	"eps":  EPS2Write,
	"png":  PNG16m,
	"jpeg": JPEG,
	"jpg":  JPEG,
	"tiff": TIFF24nc,
	"tif":  TIFF24nc,
	"bmp":  BMP16m,
	"txt":  TXTWrite,
}

var formats = map[Device]format.Format{
	PDFWrite:  format.PDF,
	PS2Write:  format.PS,
	EPS2Write: format.EPS,
	PNG16m:    format.PNG,
	PNGAlpha:  format.PNG,
	PNGGray:   format.PNG,
	JPEG:      format.JPEG,
	JPEGGray:  format.JPEG,
	TIFF24nc:  format.TIFF,
	TIFFG4:    format.TIFF,
	BMP16m:    format.BMP,
}

// LookupDevice resolves an output name. Short names such as "pdf" or "png"
// map to the usual device; anything else is taken as a device name, which
// lets callers reach printer drivers such as "laserjet" directly.
func LookupDevice(name string) Device {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := aliases[key]; ok {
		return d
	}
	return Device(key)
}

// DeviceFor returns the device that writes files of format f.
func DeviceFor(f format.Format) (Device, bool) {
	switch f {
	case format.PDF:
		return PDFWrite, true
	case format.PS:
		return PS2Write, true
	case format.EPS:
		return EPS2Write, true
	case format.PNG:
		return PNG16m, true
	case format.JPEG:
		return JPEG, true
	case format.TIFF:
		return TIFF24nc, true
	case format.BMP:
		return BMP16m, true
	default:
		return "", false
	}
}

// Format returns the file format the device writes, or format.Unknown.
func (d Device) Format() format.Format {
	return formats[d]
}

// Extension returns the output file extension for the device. Devices of
// unknown format use ".out", and txtwrite uses ".txt".
func (d Device) Extension() string {
	if d == TXTWrite {
		return ".txt"
	}
	if ext := d.Format().Extension(); ext != "" {
		return ext
	}
	return ".out"
}

// Aliases returns the short output names, sorted.
func Aliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
