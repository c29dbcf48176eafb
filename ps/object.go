package ps

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Object is any value that can be written into a PostScript program.
type Object interface {
	String() string
}

// Bool represents a PostScript boolean
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int represents a PostScript integer
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real represents a PostScript real number. Values are written with at most
// four decimals.
type Real float64

func (r Real) String() string { return FormatReal(float64(r)) }

// FormatReal formats v with at most four decimals and no trailing zeros.
func FormatReal(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		// avoids "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Name represents a literal PostScript name
type Name string

func (n Name) String() string { return "/" + string(n) }

// Raw is program text copied into the output unchanged.
type Raw string

func (r Raw) String() string { return string(r) }

// Literal represents a PostScript string. The value holds bytes already in
// the target encoding; String escapes them so the program stays ASCII.
type Literal string

func (l Literal) String() string {
	var sb strings.Builder
	sb.Grow(len(l) + 2)
	sb.WriteByte('(')
	for i := 0; i < len(l); i++ {
		c := l[i]
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c > 0x7e {
				sb.WriteByte('\\')
				sb.WriteString(octal(c))
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func octal(c byte) string {
	s := strconv.FormatInt(int64(c), 8)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Array represents a PostScript array
type Array []Object

func (a Array) String() string {
	return "[" + join(a) + "]"
}

// Procedure represents an executable array
type Procedure []Object

func (p Procedure) String() string {
	if len(p) == 0 {
		return "{}"
	}
	return "{ " + join(p) + " }"
}

// Dict represents a PostScript dictionary. Keys are written in sorted order.
type Dict map[string]Object

func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, "/"+k+" "+d[k].String())
	}
	return "<< " + strings.Join(parts, " ") + " >>"
}

// Variable is a "/name value def" definition.
type Variable struct {
	Name  string
	Value Object
}

func (v Variable) String() string {
	value := "null"
	if v.Value != nil {
		value = v.Value.String()
	}
	return "/" + v.Name + " " + value + " def"
}

// Function is a named procedure. The procedure is registered as ProcName(Name)
// so it can be invoked with Call.
type Function struct {
	Name string
	Body Object
}

func (f Function) String() string {
	body := ""
	if f.Body != nil {
		body = f.Body.String()
	}
	return "/" + ProcName(f.Name) + " {\n" + body + "\n} def"
}

// ProcName returns the program name used for user procedures, callbacks and
// tags.
func ProcName(name string) string {
	return "_" + name
}

// ValidName reports whether name can be used as a PostScript name without
// quoting: non-empty, no whitespace and no delimiter characters.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r > '~' {
			return false
		}
		switch r {
		case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
			return false
		}
	}
	return true
}

func join(objs []Object) string {
	parts := make([]string, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		parts = append(parts, obj.String())
	}
	return strings.Join(parts, " ")
}
