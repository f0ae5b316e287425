package statementparsing

import "strings"

// expand rewrites the start of line with alias and then shortcut
// expansion.
//
// The alias pass repeats as long as the leading word names an alias that
// has not fired yet this call, so chained aliases resolve fully while a
// cyclic table (a -> b, b -> a) expands each name once and stops. The
// rebuilt line keeps whatever separated the word from the rest, but any
// whitespace before the word is dropped.
//
// Shortcuts run after aliases settle. They are literal prefixes, tried
// in configuration order; the first match is replaced by its expansion,
// with a space inserted when the text after the prefix does not already
// begin with one.
func (p *Parser) expand(line string) string {
	applied := make(map[string]bool, len(p.cfg.Aliases))
	for {
		m := p.scanner.scan(line)
		if m.word == "" || applied[m.word] {
			break
		}
		expansion, ok := p.cfg.Aliases[m.word]
		if !ok {
			break
		}
		applied[m.word] = true
		line = expansion + line[m.wordEnd:]
	}

	for _, sc := range p.cfg.Shortcuts {
		if sc.Prefix == "" || !strings.HasPrefix(line, sc.Prefix) {
			continue
		}
		expansion := sc.Expansion
		if len(line) == len(sc.Prefix) || line[len(sc.Prefix)] != ' ' {
			expansion += " "
		}
		line = expansion + line[len(sc.Prefix):]
		break
	}
	return line
}
