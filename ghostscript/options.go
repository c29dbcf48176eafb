package ghostscript

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Quality selects a distiller parameter preset for PDF output.
type Quality string

const (
	// Screen selects low-resolution output.
	Screen Quality = "screen"
	// Ebook selects medium-resolution output.
	Ebook Quality = "ebook"
	// Printer selects print-optimized output.
	Printer Quality = "printer"
	// Prepress selects prepress-optimized output.
	Prepress Quality = "prepress"
	// DefaultQuality selects output useful across a wide variety of uses.
	DefaultQuality Quality = "default"
)

var (
	sizePattern  = regexp.MustCompile(`^\d+x\d+$`)
	paramPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// RenderOptions controls one interpreter run.
type RenderOptions struct {
	// Filename is the output path. Empty writes to a temporary file, or to
	// memory when streaming.
	Filename string
	// Logfile receives the interpreter log when set.
	Logfile string
	// Multipage writes one file per page, suffixed _0001, _0002 and so on
	// before the extension.
	Multipage bool
	// Resolution in dots per inch. Zero keeps the device default.
	Resolution int
	// Quality is the PDF distiller preset.
	Quality Quality
	// Size crops the page to "WIDTHxHEIGHT" device pixels.
	Size string
	// FirstPage and LastPage restrict the pages written. Zero means
	// unbounded.
	FirstPage int
	LastPage  int
	// S holds string parameters, passed as -sKEY=VALUE.
	S map[string]string
	// D holds defines, passed as -dKEY=VALUE, or -dKEY when VALUE is empty.
	D map[string]string
	// Raw holds extra switches separated by whitespace.
	Raw string
}

// Validate checks the options.
func (o RenderOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Resolution, validation.Min(0), validation.Max(10000)),
		validation.Field(&o.Quality, validation.In(Screen, Ebook, Printer, Prepress, DefaultQuality)),
		validation.Field(&o.Size, validation.Match(sizePattern).Error("must be WIDTHxHEIGHT, for example 200x180")),
		validation.Field(&o.FirstPage, validation.Min(0)),
		validation.Field(&o.LastPage,
			validation.Min(0),
			validation.By(func(any) error {
				if o.FirstPage > 0 && o.LastPage > 0 && o.LastPage < o.FirstPage {
					return validation.NewError("render.page_range", "must not be before the first page")
				}
				return nil
			}),
		),
		validation.Field(&o.S, validation.By(validParamKeys)),
		validation.Field(&o.D, validation.By(validParamKeys)),
	)
}

func validParamKeys(value any) error {
	params, _ := value.(map[string]string)
	for key := range params {
		if !paramPattern.MatchString(key) {
			return validation.NewError("render.param_name", fmt.Sprintf("invalid parameter name %q", key))
		}
	}
	return nil
}

// switches returns the -s and -d parameters sorted by key.
func (o RenderOptions) switches() []string {
	var out []string
	for _, key := range sortedKeys(o.S) {
		out = append(out, "-s"+key+"="+o.S[key])
	}
	for _, key := range sortedKeys(o.D) {
		if o.D[key] == "" {
			out = append(out, "-d"+key)
			continue
		}
		out = append(out, "-d"+key+"="+o.D[key])
	}
	return append(out, strings.Fields(o.Raw)...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
