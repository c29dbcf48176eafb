// Package ps provides the PostScript object model used to assemble documents.
//
// PostScript programs produced by this module are plain text. Every value that
// ends up in the program implements the [Object] interface, whose String method
// returns the exact source text for that value.
//
// # Object Types
//
//   - [Bool], [Int], [Real] - scalar values
//   - [Name] - literal names such as /Helvetica
//   - [Literal] - string literals in parentheses, escaped for ASCII output
//   - [Array], [Dict], [Procedure] - composite values
//   - [Raw] - program text copied verbatim
//   - [Variable] - a "/name value def" definition
//   - [Function] - a "/_name { ... } def" procedure definition
//
// # Buffers
//
// A [Buffer] is an ordered list of objects. Documents keep one buffer per
// section and concatenate them when the program is serialized:
//
//	var b ps.Buffer
//	b.Set(ps.Variable{Name: "rows_per_page", Value: ps.Int(80)})
//	b.Raw("showpage")
//	fmt.Println(b.String())
//
// # Encodings
//
// Text is transcoded into the document's font encoding before it becomes a
// string literal. The [Encoder] type maps Unicode text onto the byte values of
// the encodings shipped in the library package (IsoLatin, IsoLatin9,
// CodePage1252 and Standard). Characters outside the encoding become '?'.
package ps
