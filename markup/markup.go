// Package markup tokenizes tagged text such as
// "<b>Total:</b> 42<br/>next line".
//
// Tag names select font map tags; <br> and <br/> break the line. Entities
// (&lt; &gt; &amp; ...) are decoded. Tag names are case-insensitive and
// reported in lower case.
package markup

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Kind is the kind of a Segment.
type Kind int

const (
	// Text is a run of text.
	Text Kind = iota
	// Open starts a tagged run.
	Open
	// Close ends a tagged run.
	Close
	// Break is a line break.
	Break
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Break:
		return "Break"
	default:
		return "Unknown"
	}
}

// Segment is one token of tagged text. Value is the text for Text segments
// and the tag name for Open and Close.
type Segment struct {
	Kind  Kind
	Value string
}

// Parse splits s into segments. Adjacent text is merged; empty text is
// dropped.
func Parse(s string) ([]Segment, error) {
	z := html.NewTokenizer(strings.NewReader(s))
	var out []Segment

	appendText := func(text string) {
		if text == "" {
			return
		}
		if n := len(out); n > 0 && out[n-1].Kind == Text {
			out[n-1].Value += text
			return
		}
		out = append(out, Segment{Kind: Text, Value: text})
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return out, nil
		case html.TextToken:
			appendText(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "br" {
				out = append(out, Segment{Kind: Break})
				continue
			}
			if tt == html.SelfClosingTagToken {
				continue
			}
			out = append(out, Segment{Kind: Open, Value: tag})
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "br" {
				out = append(out, Segment{Kind: Break})
				continue
			}
			out = append(out, Segment{Kind: Close, Value: tag})
		case html.CommentToken, html.DoctypeToken:
			// ignored
		}
	}
}

// reserved are the names tagged text cannot use as font tags: br breaks the
// line, and the tokenizer reads the content of the others as raw text.
var reserved = map[string]bool{
	"br":        true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

// Reserved reports whether name cannot be used as a tag in tagged text.
func Reserved(name string) bool {
	return reserved[strings.ToLower(strings.TrimSpace(name))]
}

// Escape makes plain text safe to embed in tagged text. Newlines become
// <br/> when breaks is set.
func Escape(s string, breaks bool) string {
	escaped := html.EscapeString(s)
	if breaks {
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
	}
	return escaped
}
