/*
Package statement defines the core domain value produced by parsing one
line of shell input, along with the configuration that governs how lines
are split.
*/
package statement

import "strings"

// LineFeed is the reserved terminator value recorded when a statement is
// completed by the end of its input line rather than by a configured
// terminator token.
const LineFeed = "\n"

// Quotes are the characters that can open and close a quoted span.
const Quotes = `"'`

// RedirectionRunes are the characters that participate in punctuation
// splitting when redirection is enabled.
const RedirectionRunes = ">|"

// Redirection operator tokens recognized by the parser.
const (
	RedirectOutput = ">"
	RedirectAppend = ">>"
	RedirectPipe   = "|"
)

/*
Statement is the parsed form of one raw input line. It is a plain value:
construct it, pass it around, never mutate it. The zero value represents
"nothing parsed".
*/
type Statement struct {
	Raw              string   // original input, untouched
	Command          string   // first word after alias and shortcut expansion
	Args             string   // everything after the command, tokens joined by single spaces
	ArgList          []string // the args as individual tokens, quotes preserved
	MultilineCommand string   // equals Command when it is a registered multiline command
	Terminator       string   // what ended the statement, empty if nothing did
	Suffix           string   // text between the terminator and any redirection clause
	PipeTo           []string // tokens of the external process the output pipes to
	Output           string   // ">" or ">>" when output is redirected
	OutputTo         string   // redirection target, unquoted and home-expanded
}

// CommandAndArgs returns the command and the args joined by a single
// space, or just the command when there are no args.
func (s Statement) CommandAndArgs() string {
	switch {
	case s.Command != "" && s.Args != "":
		return s.Command + " " + s.Args
	case s.Command != "":
		return s.Command
	default:
		return ""
	}
}

// Argv returns the statement as an argument vector: the command followed
// by each argument token with its outer quotes removed. It is empty when
// there is no command.
func (s Statement) Argv() []string {
	if s.Command == "" {
		return nil
	}
	argv := make([]string, 0, len(s.ArgList)+1)
	argv = append(argv, StripOuterQuotes(s.Command))
	for _, arg := range s.ArgList {
		argv = append(argv, StripOuterQuotes(arg))
	}
	return argv
}

// PostCommand reassembles everything that followed the command and args:
// the terminator, the suffix, and any pipe or redirection clause.
func (s Statement) PostCommand() string {
	var b strings.Builder
	if s.Terminator != "" {
		b.WriteString(s.Terminator)
	}
	if s.Suffix != "" {
		b.WriteString(" " + s.Suffix)
	}
	if len(s.PipeTo) > 0 {
		b.WriteString(" " + RedirectPipe + " " + strings.Join(s.PipeTo, " "))
	}
	if s.Output != "" {
		b.WriteString(" " + s.Output)
		if s.OutputTo != "" {
			b.WriteString(" " + s.OutputTo)
		}
	}
	return b.String()
}

// ExpandedCommandLine is the full statement as a single line of text,
// with aliases and shortcuts already expanded.
func (s Statement) ExpandedCommandLine() string {
	return s.CommandAndArgs() + s.PostCommand()
}

// IsQuoted reports whether arg begins and ends with the same quote
// character.
func IsQuoted(arg string) bool {
	return len(arg) > 1 && arg[0] == arg[len(arg)-1] && strings.ContainsRune(Quotes, rune(arg[0]))
}

// StripOuterQuotes removes the outermost quote characters from arg when
// it is quoted, leaving interior text untouched.
func StripOuterQuotes(arg string) string {
	if IsQuoted(arg) {
		return arg[1 : len(arg)-1]
	}
	return arg
}
