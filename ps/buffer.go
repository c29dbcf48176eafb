package ps

import (
	"io"
	"strings"
)

// Buffer is an ordered list of objects, written one per line.
// The zero value is ready to use.
type Buffer struct {
	objs []Object
}

// Set appends obj to the buffer. Nil objects are ignored.
func (b *Buffer) Set(obj Object) {
	if obj == nil {
		return
	}
	b.objs = append(b.objs, obj)
}

// Raw appends program text verbatim.
func (b *Buffer) Raw(text string) {
	b.objs = append(b.objs, Raw(text))
}

// Call appends an invocation of the procedure registered by a Function with
// the same name.
func (b *Buffer) Call(name string) {
	b.objs = append(b.objs, Raw(ProcName(name)))
}

// Len returns the number of objects in the buffer.
func (b *Buffer) Len() int {
	return len(b.objs)
}

// Objects returns a copy of the buffered objects.
func (b *Buffer) Objects() []Object {
	return append([]Object(nil), b.objs...)
}

// String returns the buffered objects joined by newlines.
func (b *Buffer) String() string {
	if b == nil || len(b.objs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(b.objs))
	for _, obj := range b.objs {
		parts = append(parts, obj.String())
	}
	return strings.Join(parts, "\n")
}

// WriteTo writes the buffer contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
