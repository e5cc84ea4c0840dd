// Package xmlutil provides the low-level XML emission primitives used by the
// pom serializer: entity escaping for text content and an indentation-aware
// element sink.
package xmlutil

import "strings"

// Escape replaces the five XML-reserved characters in s with their entity
// references. The ampersand case is handled by the same single pass as the
// others, so entities introduced by one substitution are never re-escaped.
// Element names are never passed through Escape; they come from a closed
// vocabulary.
func Escape(s string) string {
	// Fast path: most model values contain no reserved characters.
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
