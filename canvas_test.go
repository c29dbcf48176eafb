package rghost

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestShowAlign tests each alignment of Show
func TestShowAlign(t *testing.T) {
	tests := []struct {
		name string
		opts ShowOptions
		want string
	}{
		{"left", ShowOptions{}, "gsave (Total) show grestore"},
		{"right", ShowOptions{Align: AlignRight}, "gsave (Total) dup stringwidth pop neg 0 rmoveto show grestore"},
		{"center", ShowOptions{Align: AlignCenter}, "gsave (Total) dup stringwidth pop 2 div neg 0 rmoveto show grestore"},
		{"page left", ShowOptions{Align: PageLeft}, "gsave (Total) limit_left currentpoint exch pop moveto show grestore"},
		{"page center", ShowOptions{Align: PageCenter}, "gsave (Total) limit_left limit_right add 2 div currentpoint exch pop moveto dup stringwidth pop 2 div neg 0 rmoveto show grestore"},
		{"page right", ShowOptions{Align: PageRight}, "gsave (Total) limit_right currentpoint exch pop moveto dup stringwidth pop neg 0 rmoveto show grestore"},
		{"tag and color", ShowOptions{Tag: "b", Color: "#0000FF"}, "gsave _tag_b 0 0 1 setrgbcolor (Total) show grestore"},
		{"gray", ShowOptions{Color: 0.5}, "gsave 0.5 setgray (Total) show grestore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.Show("Total", tt.opts)
			if got := body(t, d); !strings.HasPrefix(got, tt.want+"\n") {
				t.Errorf("body = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestShowNextAndRows(t *testing.T) {
	d := New()
	d.ShowNext("one", ShowOptions{})
	d.BackRow()
	d.JumpRows(3)
	d.JumpRows(0)
	d.GotoRow(5)
	d.NextPage()
	d.ShowPage()
	d.MoveTo(1, 2)
	d.RMoveTo(0.5, -1)

	want := "gsave (one) show grestore\nnext_row\nback_row\n3 { next_row } repeat\n" +
		"/current_row 5 def limit_left row_top moveto\nnext_page\nshowpage\n" +
		"28.3465 56.6929 moveto\n14.1732 -28.3465 rmoveto\n"
	if got := body(t, d); !strings.HasPrefix(got, want) {
		t.Errorf("body = %q, want prefix %q", got, want)
	}

	bad := New()
	bad.GotoRow(0)
	if bad.Err() == nil {
		t.Error("expected error for row 0")
	}
}

func TestShowVariables(t *testing.T) {
	d := New()
	d.Show("%current_page%", ShowOptions{})
	d.Show("Page %current_page% of %count_pages%", ShowOptions{})
	d.Show("100% done", ShowOptions{})

	want := "gsave current_page _str show grestore\n" +
		"gsave (Page ) current_page _str _concat ( of ) _concat count_pages _str _concat show grestore\n" +
		"gsave (100% done) show grestore\n"
	if got := body(t, d); !strings.HasPrefix(got, want) {
		t.Errorf("body = %q, want prefix %q", got, want)
	}
}

func TestTextIn(t *testing.T) {
	d := New()
	d.TextIn(TextInOptions{X: 2, Y: 3, Text: "Olá", Tag: "big", Angle: 90, Align: PageCenter, Color: "red"})

	want := "gsave 56.6929 85.0394 translate 90 rotate 0 0 moveto _tag_big 1 0 0 setrgbcolor (Ol\\341) dup stringwidth pop 2 div neg 0 rmoveto show grestore"
	if got := body(t, d); !strings.HasPrefix(got, want) {
		t.Errorf("body = %q, want prefix %q", got, want)
	}
}

func TestUnknownTag(t *testing.T) {
	d := New()
	d.UseTag("nope")
	d.Show("x", ShowOptions{Tag: "nope"})
	d.TextIn(TextInOptions{Text: "x", Tag: "nope"})

	if d.Err() != nil {
		t.Fatalf("unknown tags must not fail the document: %v", d.Err())
	}
	if got := len(d.Warnings()); got != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", got, d.Warnings())
	}
	if w := d.Warnings()[0]; w.Operation != "use tag" || !strings.Contains(w.Message, "nope") {
		t.Errorf("unexpected warning %v", w)
	}
	got := body(t, d)
	if strings.Contains(got, "nope") {
		t.Errorf("unknown tag output leaked into body:\n%s", got)
	}
	if n := strings.Count(got, "(x)"); n != 2 {
		t.Errorf("text with an unknown tag should still be drawn, found %d shows:\n%s", n, got)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		warnings int
	}{
		{
			name:  "plain",
			input: "Hello  world",
			want:  "/_text_font currentfont def\n(Hello ) _wshow\n(world) _wshow\nnext_row",
		},
		{
			name:  "tag",
			input: "a <b>bold</b> c",
			want:  "/_text_font currentfont def\n(a ) _wshow\n_tag_b\n(bold) _wshow\n_text_font setfont\n( ) _wshow\n(c) _wshow\nnext_row",
		},
		{
			name:  "punctuation after tag",
			input: "<b>Total</b>: 42",
			want:  "/_text_font currentfont def\n_tag_b\n(Total) _wshow\n_text_font setfont\n(: ) _wshow\n(42) _wshow\nnext_row",
		},
		{
			name:  "tag inside word",
			input: "<i>wor</i>d",
			want:  "/_text_font currentfont def\n_tag_i\n(wor) _wshow\n_text_font setfont\n(d) _wshow\nnext_row",
		},
		{
			name:  "nested",
			input: "<big>x <i>y</i> z</big>",
			want:  "/_text_font currentfont def\n_tag_big\n(x ) _wshow\n_tag_i\n(y) _wshow\n_tag_big\n( ) _wshow\n(z) _wshow\n_text_font setfont\nnext_row",
		},
		{
			name:  "unclosed",
			input: "<b>open",
			want:  "/_text_font currentfont def\n_tag_b\n(open) _wshow\n_text_font setfont\nnext_row",
		},
		{
			name:     "mismatched close",
			input:    "<b>x<i>y</b>z</i>",
			want:     "/_text_font currentfont def\n_tag_b\n(x) _wshow\n_tag_i\n(y) _wshow\n(z) _wshow\n_tag_b\n_text_font setfont\nnext_row",
			warnings: 1,
		},
		{
			name:  "break and entity",
			input: "1 &lt; 2<br/>  end",
			want:  "/_text_font currentfont def\n(1 ) _wshow\n(< ) _wshow\n(2) _wshow\nnext_row\n(end) _wshow\nnext_row",
		},
		{
			name:     "unknown tag",
			input:    "<blink>x</blink>",
			want:     "/_text_font currentfont def\n(x) _wshow\nnext_row",
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.Text(tt.input)
			if got := body(t, d); !strings.HasPrefix(got, tt.want+"\n") {
				t.Errorf("body = %q, want prefix %q", got, tt.want)
			}
			if got := len(d.Warnings()); got != tt.warnings {
				t.Errorf("warnings = %d, want %d: %v", got, tt.warnings, d.Warnings())
			}
		})
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		preserve   bool
		afterSpace bool
		want       []string
		endsSpace  bool
	}{
		{"words", "a b  c", false, true, []string{"a ", "b ", "c"}, false},
		{"trailing space", "a ", false, false, []string{"a "}, true},
		{"leading space", " a", false, false, []string{" ", "a"}, false},
		{"leading space after space", "  a", false, true, []string{"a"}, false},
		{"newline collapses", "a\n\tb", false, true, []string{"a ", "b"}, false},
		{"preserved indent", "    x  y", true, false, []string{"    ", "x  ", "y"}, false},
		{"only space", "   ", false, true, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, endsSpace := chunks(tt.input, tt.preserve, tt.afterSpace)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("chunks mismatch (-want +got):\n%s", diff)
			}
			if endsSpace != tt.endsSpace {
				t.Errorf("ends with space = %v, want %v", endsSpace, tt.endsSpace)
			}
		})
	}
}

func TestHorizontalLine(t *testing.T) {
	d := New()
	d.HorizontalLine(LineBottom)
	d.HorizontalLine(LineTop)

	want := "gsave newpath limit_left row_top moveto limit_right row_top lineto stroke grestore\n" +
		"gsave newpath limit_left row_top row_height add moveto limit_right row_top row_height add lineto stroke grestore\n"
	if got := body(t, d); !strings.HasPrefix(got, want) {
		t.Errorf("body = %q, want prefix %q", got, want)
	}
}

func TestImage(t *testing.T) {
	d := New()
	d.Image("logo.eps", ImageOptions{})
	d.Image("photo.jpg", ImageOptions{X: 1, Y: 1, Zoom: 0.5})
	d.Image("other.JPEG", ImageOptions{})
	d.Image("anim.gif", ImageOptions{})

	out := program(t, d)
	if n := strings.Count(out, "(viewjpeg.ps) runlibfile"); n != 1 {
		t.Errorf("jpeg library loaded %d times, want 1", n)
	}
	assertOrder(t, out,
		"% begin_document.ps",
		"(viewjpeg.ps) runlibfile",
		"(viewgif.ps) runlibfile",
		"\nlimit_left row_top moveto\n",
		"save /showpage {} def currentpoint translate 1 1 scale (logo.eps) run restore",
		"gsave 28.3465 28.3465 translate 0.5 0.5 scale (photo.jpg) viewJPEG grestore",
		"gsave currentpoint translate 1 1 scale (other.JPEG) viewJPEG grestore",
		"gsave currentpoint translate 1 1 scale (anim.gif) viewGIF grestore",
	)

	tests := []struct {
		name string
		path string
		opts ImageOptions
	}{
		{"empty path", "", ImageOptions{}},
		{"png", "chart.png", ImageOptions{}},
		{"negative zoom", "logo.eps", ImageOptions{Zoom: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := New()
			bad.Image(tt.path, tt.opts)
			if bad.Err() == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFrameAndStyle(t *testing.T) {
	d := New()
	d.SetColor("#00FF00")
	d.LineWidth(0.5)
	d.Frame(FrameOptions{X: 1, Y: 1, Width: 2, Height: 1})
	d.Frame(FrameOptions{X: 1, Y: 1, Width: 2, Height: 1, LineWidth: 2, Color: 0, Fill: []float64{0, 0, 0, 0.1}})

	want := "0 1 0 setrgbcolor\n0.5 setlinewidth\n" +
		"gsave 28.3465 28.3465 56.6929 28.3465 rectstroke grestore\n" +
		"gsave gsave 0 0 0 0.1 setcmykcolor 28.3465 28.3465 56.6929 28.3465 rectfill grestore 0 setgray 2 setlinewidth 28.3465 28.3465 56.6929 28.3465 rectstroke grestore\n"
	if got := body(t, d); !strings.HasPrefix(got, want) {
		t.Errorf("body = %q, want prefix %q", got, want)
	}

	tests := []struct {
		name string
		fn   func(d *Document)
	}{
		{"bad color", func(d *Document) { d.SetColor("not-a-color") }},
		{"negative width", func(d *Document) { d.LineWidth(-1) }},
		{"empty frame", func(d *Document) { d.Frame(FrameOptions{Width: 1}) }},
		{"bad fill", func(d *Document) { d.Frame(FrameOptions{Width: 1, Height: 1, Fill: "nope"}) }},
		{"bad show color", func(d *Document) { d.Show("x", ShowOptions{Color: struct{}{}}) }},
		{"bad call", func(d *Document) { d.Call("a b") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := New()
			tt.fn(bad)
			if bad.Err() == nil {
				t.Error("expected error")
			}
		})
	}
}
