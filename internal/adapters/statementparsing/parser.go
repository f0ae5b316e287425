/*
Package statementparsing turns raw shell input lines into statement
values.

The grammar it understands is deliberately small: quoting with " and ',
C-style block comments, # line comments, configurable statement
terminators, output redirection with > and >>, pipes, full-word aliases,
and leading-text shortcuts. Parsing is a pure transform over the input
text and a configuration snapshot; the parser never touches the
filesystem or starts processes, it only identifies the pieces.
*/
package statementparsing

import (
	"os"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// Parser implements the StatementParser port. A Parser is safe for
// concurrent reads; Reconfigure must only run between parses, by the
// single owner that mutates configuration.
type Parser struct {
	cfg     statement.ParserConfig
	scanner *wordScanner
	punct   map[rune]bool
}

// NewParser builds a parser from cfg. A nil Terminators slice selects
// the default terminator set; an explicitly empty one disables
// terminator recognition.
func NewParser(cfg statement.ParserConfig) ports.StatementParser {
	p := &Parser{}
	p.Reconfigure(cfg)
	return p
}

// Reconfigure replaces the configuration snapshot and rebuilds the
// derived word scanner and punctuation table.
func (p *Parser) Reconfigure(cfg statement.ParserConfig) {
	snapshot := statement.ParserConfig{
		AllowRedirection:  cfg.AllowRedirection,
		MultilineCommands: append([]string(nil), cfg.MultilineCommands...),
		Shortcuts:         append([]statement.Shortcut(nil), cfg.Shortcuts...),
		Aliases:           make(map[string]string, len(cfg.Aliases)),
	}
	if cfg.Terminators == nil {
		snapshot.Terminators = []string{statement.DefaultTerminator}
	} else {
		snapshot.Terminators = append([]string(nil), cfg.Terminators...)
	}
	for name, expansion := range cfg.Aliases {
		snapshot.Aliases[name] = expansion
	}

	p.cfg = snapshot
	p.scanner = newWordScanner(snapshot.Terminators)
	p.punct = punctuationSet(snapshot.Terminators, snapshot.AllowRedirection)
}

// Tokenize lexes line into tokens: comments are stripped, aliases and
// shortcuts expanded, then the text is split on whitespace and re-split
// at punctuation boundaries. It fails only on an unclosed quote.
func (p *Parser) Tokenize(line string) ([]string, error) {
	line = stripComments(line)
	line = p.expand(line)

	tokens, err := splitWhitespace(line)
	if err != nil {
		return nil, err
	}
	return splitOnPunctuation(tokens, p.punct), nil
}

// Parse splits one full input line into a Statement.
func (p *Parser) Parse(line string) (statement.Statement, error) {
	// A trailing line feed is the implicit terminator. It has to be
	// noticed before tokenizing, which discards unquoted whitespace, and
	// it outranks any terminator token found later in the line.
	terminator := ""
	if strings.HasSuffix(line, statement.LineFeed) {
		terminator = statement.LineFeed
	}

	tokens, err := p.Tokenize(line)
	if err != nil {
		return statement.Statement{}, err
	}

	command := ""
	args := ""
	var argList []string

	if terminator == statement.LineFeed {
		command, args = commandAndArgs(tokens)
		if len(tokens) > 1 {
			argList = tokens[1:]
		}
		tokens = nil
	} else if pos, term, ok := p.findTerminator(tokens); ok {
		terminator = term
		command, args = commandAndArgs(tokens[:pos])
		if pos > 1 {
			argList = tokens[1:pos]
		}
		tokens = tokens[pos+1:]
		// Anything past a second terminator belongs to the next
		// statement, not to this one.
		if next, _, ok := p.findTerminator(tokens); ok {
			tokens = tokens[:next]
		}
	} else {
		testCommand, testArgs := commandAndArgs(tokens)
		if p.isMultilineCommand(testCommand) {
			// Multiline commands swallow the whole line: redirection is
			// only recognized after a terminator, so any operator-shaped
			// text stays part of the args.
			command = testCommand
			args = testArgs
			if len(tokens) > 1 {
				argList = tokens[1:]
			}
			tokens = nil
		}
	}

	// The pipe is found before redirection on purpose: everything after
	// the pipe belongs to the receiving process, redirection included,
	// so "say hi | wc > count.txt" redirects wc, not say.
	var pipeTo []string
	for pos, tok := range tokens {
		if tok == statement.RedirectPipe {
			for _, t := range tokens[pos+1:] {
				pipeTo = append(pipeTo, expandUser(statement.StripOuterQuotes(t)))
			}
			tokens = tokens[:pos]
			break
		}
	}

	// First redirection operator by position wins; its target is the
	// token that follows, when there is one.
	output := ""
	outputTo := ""
	for pos, tok := range tokens {
		if tok == statement.RedirectOutput || tok == statement.RedirectAppend {
			output = tok
			if pos+1 < len(tokens) {
				outputTo = expandUser(statement.StripOuterQuotes(tokens[pos+1]))
			}
			tokens = tokens[:pos]
			break
		}
	}

	suffix := ""
	if terminator != "" {
		suffix = strings.Join(tokens, " ")
	} else if command == "" {
		command, args = commandAndArgs(tokens)
		if len(tokens) > 1 {
			argList = tokens[1:]
		}
	}

	multilineCommand := ""
	if p.isMultilineCommand(command) {
		multilineCommand = command
	}

	return statement.Statement{
		Raw:              line,
		Command:          command,
		Args:             args,
		ArgList:          argList,
		MultilineCommand: multilineCommand,
		Terminator:       terminator,
		Suffix:           suffix,
		PipeTo:           pipeTo,
		Output:           output,
		OutputTo:         outputTo,
	}, nil
}

// ParseCommandOnly extracts the command word and the raw remainder of
// the line, after alias and shortcut expansion. Unlike Parse it performs
// no tokenization, so it cannot fail on unbalanced quotes, and args keeps
// its interior whitespace verbatim (only trailing whitespace is
// trimmed).
func (p *Parser) ParseCommandOnly(rawInput string) statement.Statement {
	line := p.expand(rawInput)

	m := p.scanner.scan(line)
	command := m.word
	args := strings.TrimRightFunc(line[m.sepEnd:], unicode.IsSpace)
	if command == "" || args == "" {
		args = ""
	}

	multilineCommand := ""
	if p.isMultilineCommand(command) {
		multilineCommand = command
	}

	return statement.Statement{
		Raw:              rawInput,
		Command:          command,
		Args:             args,
		MultilineCommand: multilineCommand,
	}
}

// IsValidCommand reports whether word can serve as a command or alias
// name: it must be non-empty and contain no whitespace, quote character,
// redirection character, or terminator. The message accompanying a
// rejection lists those classes for use in diagnostics.
func (p *Parser) IsValidCommand(word string) (bool, string) {
	if word != "" && p.scanner.scan(word).word == word {
		return true, ""
	}

	forbidden := make([]string, 0, len(p.cfg.Terminators)+2)
	for _, r := range statement.RedirectionRunes {
		forbidden = append(forbidden, "'"+string(r)+"'")
	}
	for _, t := range p.cfg.Terminators {
		forbidden = append(forbidden, "'"+t+"'")
	}
	return false, "whitespace, quotes, " + strings.Join(forbidden, ", ")
}

// findTerminator locates the first token that starts with a configured
// terminator. Configuration order breaks ties when several terminators
// could match the same token.
func (p *Parser) findTerminator(tokens []string) (int, string, bool) {
	for pos, tok := range tokens {
		for _, t := range p.cfg.Terminators {
			if t != "" && strings.HasPrefix(tok, t) {
				return pos, t, true
			}
		}
	}
	return 0, "", false
}

func (p *Parser) isMultilineCommand(word string) bool {
	if word == "" {
		return false
	}
	for _, name := range p.cfg.MultilineCommands {
		if name == word {
			return true
		}
	}
	return false
}

// commandAndArgs splits a token list into the first token and the rest
// joined by single spaces.
func commandAndArgs(tokens []string) (string, string) {
	command := ""
	args := ""
	if len(tokens) > 0 {
		command = tokens[0]
	}
	if len(tokens) > 1 {
		args = strings.Join(tokens[1:], " ")
	}
	return command, args
}

// expandUser rewrites a leading ~ to the current user's home directory.
// The path comes back unchanged when the home directory cannot be
// determined.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return home + path[1:]
}
