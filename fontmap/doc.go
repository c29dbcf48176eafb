// Package fontmap maps tag names to fonts.
//
// A tag bundles a PostScript font name, a size, an optional color and
// whether the font is re-encoded with the document's font encoding. Each tag
// becomes a procedure in the output program that selects the font:
//
//	m := fontmap.New()
//	m.Set(fontmap.Tag{Name: "arial_bold", Font: "NimbusSanL-BoldItal", Size: 12, Color: "#ADAD66"})
//	m.Set(fontmap.Tag{Name: "monaco", Font: "Monaco", From: "/path/to/monaco.ttf", Size: 12})
//
// Tags are used by name from the drawing operations (Show, Text, TextIn) and
// inside tagged text such as "<arial_bold>Title</arial_bold>".
//
// # Default Tags
//
// Every map starts with default_font, i, b, bi, pre, big and small. Setting
// a tag with one of these names replaces the default in place, so
// "default_font" can be customised.
//
// Tag names are case-insensitive and stored in lower case, matching how tagged
// text is tokenized.
package fontmap
