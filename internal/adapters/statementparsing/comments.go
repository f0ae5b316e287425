package statementparsing

import "strings"

// stripComments removes /* */ spans from line while leaving quoted text
// alone. A comment span ends at the nearest following */. Quoted spans
// may contain backslash-escaped quotes of their own kind and are copied
// through untouched, embedded comment markers included. An unterminated
// /* is ordinary text.
func stripComments(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '/' && strings.HasPrefix(line[i:], "/*"):
			rel := strings.Index(line[i+2:], "*/")
			if rel < 0 {
				// No closing marker anywhere ahead, so nothing past
				// this point can be a comment either.
				b.WriteString(line[i:])
				return b.String()
			}
			i += 2 + rel + 2
		case c == '"' || c == '\'':
			if end := quotedSpanEnd(line, i); end > 0 {
				b.WriteString(line[i:end])
				i = end
				continue
			}
			// Unterminated quote: treat the quote character as plain
			// text and keep scanning.
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// quotedSpanEnd returns the offset just past the span's closing quote,
// or -1 when the span never closes. A backslash escapes the following
// character; a trailing lone backslash leaves the span unterminated.
func quotedSpanEnd(line string, start int) int {
	q := line[start]
	i := start + 1
	for i < len(line) {
		switch line[i] {
		case '\\':
			if i+1 >= len(line) {
				return -1
			}
			i += 2
		case q:
			return i + 1
		default:
			i++
		}
	}
	return -1
}
