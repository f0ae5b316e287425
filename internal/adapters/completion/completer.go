/*
Package completion suggests command names for partially typed input
lines.
*/
package completion

import (
	"sort"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// NamesFunc supplies the completable names: registered commands plus
// alias names. It is called on every completion so registrations and
// alias edits made after construction still show up.
type NamesFunc func() []string

// Completer implements the LineCompleter port. It only completes the
// command word; argument completion is the host application's business.
type Completer struct {
	parser ports.StatementParser
	names  NamesFunc
}

// NewCompleter creates a Completer. It panics if either dependency is
// nil.
func NewCompleter(parser ports.StatementParser, names NamesFunc) ports.LineCompleter {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if names == nil {
		panic("names cannot be nil")
	}
	return &Completer{parser: parser, names: names}
}

// Complete returns the sorted command names that could continue the
// line at pos. It relies on ParseCommandOnly, so unbalanced quotes never
// make it fail.
func (c *Completer) Complete(line string, pos int) []string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	text := line[:pos]

	st := c.parser.ParseCommandOnly(text)
	if st.Args != "" {
		return nil
	}
	// Text that does not even start a command word, such as a lone
	// quote, has no completions.
	if st.Command == "" && strings.TrimSpace(text) != "" {
		return nil
	}
	// A separator after the word means the next thing typed is an
	// argument, which we do not complete.
	if text != "" && unicode.IsSpace(rune(text[len(text)-1])) && st.Command != "" {
		return nil
	}

	var candidates []string
	for _, name := range c.names() {
		if strings.HasPrefix(name, st.Command) {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)
	return candidates
}
