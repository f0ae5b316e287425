package ports

// ReadLineFunc supplies continuation lines while a multiline statement
// is being assembled. It receives the continuation prompt and returns
// the next raw input line. Returning an error (usually io.EOF) ends the
// statement the same way a blank line does.
type ReadLineFunc func(prompt string) (string, error)

// ShellSession executes raw input lines against the configured command
// set, routing command output to the terminal, a pipe, or a file.
type ShellSession interface {
	// Execute parses line, reading continuation lines through readLine
	// until the statement is complete, then runs it. The returned stop
	// flag is true when the command asked the shell to exit. A nil
	// readLine ends multiline statements at the first line.
	Execute(line string, readLine ReadLineFunc) (stop bool, err error)

	// ApplyParserConfig pushes the current settings, plus the multiline
	// command names known to the dispatcher, into the parser. Call it
	// after registering commands or changing aliases.
	ApplyParserConfig()

	// Prompt returns the primary prompt text. The continuation prompt
	// is the session's own business: it reaches readLine as the prompt
	// argument.
	Prompt() string

	// CompletionNames returns every name completion may offer at the
	// start of a line: command names plus alias names.
	CompletionNames() []string
}
