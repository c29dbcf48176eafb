package rghost

import (
	"sort"
	"strings"

	"github.com/madamkiwi/rghost/ps"
)

// DocInfo holds the PDF document properties.
type DocInfo struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// Custom holds additional keys such as "Company". Keys must be valid
	// PostScript names.
	Custom map[string]string
}

// merge copies the non-empty fields of other into i.
func (i *DocInfo) merge(other DocInfo) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&i.Title, other.Title)
	set(&i.Author, other.Author)
	set(&i.Subject, other.Subject)
	set(&i.Keywords, other.Keywords)
	set(&i.Creator, other.Creator)
	set(&i.Producer, other.Producer)
	for k, v := range other.Custom {
		if v == "" {
			continue
		}
		if i.Custom == nil {
			i.Custom = make(map[string]string)
		}
		i.Custom[k] = v
	}
}

// pdfmark returns the DOCINFO pdfmark. Standard keys come first in a fixed
// order, then custom keys sorted.
func (i DocInfo) pdfmark(enc *ps.Encoder) string {
	parts := []string{"["}
	add := func(key, value string) {
		if value == "" {
			return
		}
		parts = append(parts, ps.Name(key).String(), enc.Literal(value).String())
	}
	add("Producer", i.Producer)
	add("Title", i.Title)
	add("Author", i.Author)
	add("Subject", i.Subject)
	add("Keywords", i.Keywords)
	add("Creator", i.Creator)

	keys := make([]string, 0, len(i.Custom))
	for k := range i.Custom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		add(k, i.Custom[k])
	}

	parts = append(parts, "/DOCINFO", "pdfmark ")
	return strings.Join(parts, " ")
}
