package ps

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultEncoding is the font encoding used when none is configured.
const DefaultEncoding = "IsoLatin"

// charmaps maps encoding names to their byte tables. Standard has no table:
// only 7-bit ASCII survives.
var charmaps = map[string]*charmap.Charmap{
	"IsoLatin":     charmap.ISO8859_1,
	"IsoLatin9":    charmap.ISO8859_15,
	"CodePage1252": charmap.Windows1252,
	"Standard":     nil,
}

// Encodings returns the supported font encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(charmaps))
	for name := range charmaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encoder transcodes UTF-8 text into a single-byte font encoding.
type Encoder struct {
	name string
	cm   *charmap.Charmap
}

// NewEncoder returns the encoder for the named encoding. Names are matched
// case-insensitively.
func NewEncoder(name string) (*Encoder, error) {
	if name == "" {
		name = DefaultEncoding
	}
	for known, cm := range charmaps {
		if strings.EqualFold(known, name) {
			return &Encoder{name: known, cm: cm}, nil
		}
	}
	return nil, fmt.Errorf("unsupported font encoding %q (supported: %s)", name, strings.Join(Encodings(), ", "))
}

// Name returns the canonical encoding name.
func (e *Encoder) Name() string {
	return e.name
}

// Encode returns s as bytes in the target encoding. Runes the encoding
// cannot represent, and invalid UTF-8, become '?'.
func (e *Encoder) Encode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			sb.WriteByte('?')
			continue
		}
		if r < utf8.RuneSelf {
			sb.WriteByte(byte(r))
			continue
		}
		if e.cm == nil {
			sb.WriteByte('?')
			continue
		}
		if b, ok := e.cm.EncodeRune(r); ok {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('?')
	}
	return sb.String()
}

// Literal returns s transcoded and wrapped as a string literal.
func (e *Encoder) Literal(s string) Literal {
	return Literal(e.Encode(s))
}
