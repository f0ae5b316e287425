package statementparsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
)

/*
wordScanner locates the leading command word of a line. The word starts
at the first non-space character and runs to the first position where a
separator class matches. Classes are checked per position in a fixed
order: quote character, redirection character, configured terminator
(in configuration order), whitespace, end of input.

The scanner is rebuilt whenever the parser is reconfigured, so a scan
itself never consults configuration.
*/
type wordScanner struct {
	terminators []string
}

func newWordScanner(terminators []string) *wordScanner {
	return &wordScanner{terminators: append([]string(nil), terminators...)}
}

// wordMatch describes where the leading word and its separator ended.
// word is empty when the line opens with a separator or holds nothing
// but whitespace. sepEnd equals wordEnd when end of input was the
// separator.
type wordMatch struct {
	word    string
	wordEnd int
	sepEnd  int
}

// scan always succeeds: every line has a (possibly empty) leading word.
func (s *wordScanner) scan(line string) wordMatch {
	start := 0
	for start < len(line) {
		r, size := utf8.DecodeRuneInString(line[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}

	i := start
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if sepLen := s.separatorAt(line, i, r); sepLen >= 0 {
			return wordMatch{word: line[start:i], wordEnd: i, sepEnd: i + sepLen}
		}
		i += size
	}
	return wordMatch{word: line[start:], wordEnd: len(line), sepEnd: len(line)}
}

// separatorAt returns the byte length of the separator found at offset i,
// or -1 when position i is still part of the word.
func (s *wordScanner) separatorAt(line string, i int, r rune) int {
	if strings.ContainsRune(statement.Quotes, r) {
		return utf8.RuneLen(r)
	}
	if strings.ContainsRune(statement.RedirectionRunes, r) {
		return utf8.RuneLen(r)
	}
	for _, t := range s.terminators {
		if t != "" && strings.HasPrefix(line[i:], t) {
			return len(t)
		}
	}
	if unicode.IsSpace(r) {
		return utf8.RuneLen(r)
	}
	return -1
}
