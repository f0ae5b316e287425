package statementparsing

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
)

// ErrUnclosedQuote reports input that opens a quote and never closes it.
// Tokenize wraps it with the offending token; use errors.Is to test for
// it.
var ErrUnclosedQuote = errors.New("no closing quotation")

// lineCommentChar starts a comment that runs to the end of the current
// line. It has no effect inside a quoted run.
const lineCommentChar = '#'

// splitWhitespace breaks line into whitespace-separated tokens. A quote
// character at the start of a token opens a quoted run: the run keeps
// both quote characters and the token ends immediately after the closing
// quote. A quote character anywhere else is ordinary text. Backslash is
// not special.
func splitWhitespace(line string) ([]string, error) {
	const (
		between = iota // skipping separators before the next token
		inWord
		inQuote
	)

	var tokens []string
	var tok strings.Builder
	state := between
	var quote rune

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch state {
		case between:
			switch {
			case unicode.IsSpace(r):
			case r == lineCommentChar:
				i = lineEnd(runes, i)
			case r == '"' || r == '\'':
				tok.WriteRune(r)
				quote = r
				state = inQuote
			default:
				tok.WriteRune(r)
				state = inWord
			}
		case inWord:
			switch {
			case unicode.IsSpace(r):
				tokens = append(tokens, tok.String())
				tok.Reset()
				state = between
			case r == lineCommentChar:
				i = lineEnd(runes, i)
			default:
				tok.WriteRune(r)
			}
		case inQuote:
			tok.WriteRune(r)
			if r == quote {
				tokens = append(tokens, tok.String())
				tok.Reset()
				state = between
			}
		}
	}

	switch state {
	case inQuote:
		return nil, fmt.Errorf("unbalanced token %q: %w", tok.String(), ErrUnclosedQuote)
	case inWord:
		tokens = append(tokens, tok.String())
	}
	return tokens, nil
}

// lineEnd returns the index of the newline that ends the current line,
// or the final index when none remains. The caller's loop increment
// steps past it, discarding the commented text but nothing beyond it.
func lineEnd(runes []rune, i int) int {
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

// splitOnPunctuation re-splits tokens at punctuation boundaries. A run of
// the same punctuation character stays together, so ">>" survives while
// ";>" breaks apart. Tokens a single rune long, or opening with a quote
// character, pass through unsplit.
func splitOnPunctuation(tokens []string, punct map[rune]bool) []string {
	punctuated := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		runes := []rune(tok)
		if len(runes) <= 1 || runes[0] == '"' || runes[0] == '\'' {
			punctuated = append(punctuated, tok)
			continue
		}

		for i := 0; i < len(runes); {
			j := i + 1
			if punct[runes[i]] {
				for j < len(runes) && runes[j] == runes[i] {
					j++
				}
			} else {
				for j < len(runes) && !punct[runes[j]] {
					j++
				}
			}
			punctuated = append(punctuated, string(runes[i:j]))
			i = j
		}
	}
	return punctuated
}

// punctuationSet collects the characters that force token breaks:
// single-character terminators, plus the redirection characters when
// redirection is enabled. Longer terminators only match as standalone
// whitespace-separated tokens and never participate here.
func punctuationSet(terminators []string, allowRedirection bool) map[rune]bool {
	punct := make(map[rune]bool, len(terminators)+2)
	for _, t := range terminators {
		runes := []rune(t)
		if len(runes) == 1 {
			punct[runes[0]] = true
		}
	}
	if allowRedirection {
		for _, r := range statement.RedirectionRunes {
			punct[r] = true
		}
	}
	return punct
}
