package rghost

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue found while building a document, such as
// an unknown tag in tagged text. The document still renders.
type Warning struct {
	// Operation is the document or canvas operation that raised it.
	Operation string
	// Message describes the issue.
	Message string
}

// String returns the warning as "operation: message".
func (w Warning) String() string {
	if w.Operation == "" {
		return w.Message
	}
	return w.Operation + ": " + w.Message
}

// FormatWarnings returns the warnings one per line, numbered.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, w)
	}
	return sb.String()
}
