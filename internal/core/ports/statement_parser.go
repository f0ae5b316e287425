package ports

import "github.com/AntonioJCosta/replsh/internal/core/domain/statement"

/*
StatementParser defines the contract for turning raw input lines into
statement values. This is a driven port, implemented by the statement
parsing adapter.
*/
type StatementParser interface {
	// Parse splits a full input line into a Statement, stripping
	// comments, expanding aliases and shortcuts, and extracting the
	// terminator, suffix, pipe, and redirection clauses. It fails only
	// on unclosed quotes.
	Parse(line string) (statement.Statement, error)

	// ParseCommandOnly extracts just the command word and the raw
	// remainder of the line. It never fails, which makes it safe for
	// tab completion paths where quotes may be unbalanced.
	ParseCommandOnly(line string) statement.Statement

	// Tokenize lexes a line into tokens with comments removed and
	// aliases and shortcuts expanded.
	Tokenize(line string) ([]string, error)

	// IsValidCommand reports whether word can serve as a command or
	// alias name. When it cannot, the returned message lists the
	// character classes such a name may not contain.
	IsValidCommand(word string) (bool, string)

	// Reconfigure replaces the parser's configuration snapshot. It must
	// not run concurrently with a parse.
	Reconfigure(cfg statement.ParserConfig)
}
