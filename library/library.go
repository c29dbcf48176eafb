// Package library provides the PostScript runtime that generated documents
// depend on.
//
// Libraries are small PostScript programs embedded in the binary:
//
//   - type - string conversion and font re-encoding helpers
//   - unit - the cm, mm, inch and pt operators
//   - environment - cursor, row, page and virtual page procedures, plus an
//     empty procedure for every callback event
//   - begin_document - opens the document and its first page
//   - jpeg, gif - load the interpreter's JPEG and GIF viewers
//
// Encodings are loaded the same way and define default_encoding_vector for
// one of the font encodings supported by the ps package.
//
// A [Loader] can be given an overlay filesystem. Files found in the overlay
// take precedence over the embedded ones, so a single library can be
// replaced without copying the rest.
package library

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed ps/*.ps enc/*.enc
var embedded embed.FS

const (
	libraryDir  = "ps"
	libraryExt  = ".ps"
	encodingDir = "enc"
	encodingExt = ".enc"
)

// Loader resolves library and encoding sources.
type Loader struct {
	overlay fs.FS
}

// New returns a loader over the embedded libraries.
func New() *Loader {
	return &Loader{}
}

// WithOverlay returns a loader that looks in overlay before the embedded
// files. The overlay uses the same layout: ps/<name>.ps and enc/<name>.enc.
func WithOverlay(overlay fs.FS) *Loader {
	return &Loader{overlay: overlay}
}

// Library returns the source of the named library.
func (l *Loader) Library(name string) (string, error) {
	return l.read(libraryDir, name, libraryExt)
}

// Encoding returns the source of the named encoding.
func (l *Loader) Encoding(name string) (string, error) {
	return l.read(encodingDir, name, encodingExt)
}

func (l *Loader) read(dir, name, ext string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid library name %q", name)
	}
	file := path.Join(dir, name+ext)

	if l != nil && l.overlay != nil {
		data, err := fs.ReadFile(l.overlay, file)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
	}

	data, err := embedded.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("library %s%s not found: %w", name, ext, err)
	}
	return string(data), nil
}

// Libraries returns the names of the embedded libraries, sorted.
func Libraries() []string {
	return list(libraryDir, libraryExt)
}

// Encodings returns the names of the embedded encodings, sorted.
func Encodings() []string {
	return list(encodingDir, encodingExt)
}

func list(dir, ext string) []string {
	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names
}
