package ports

// LineCompleter defines the contract for tab completion over a partial
// input line.
type LineCompleter interface {
	// Complete returns candidate completions for the line with the
	// cursor at byte offset pos. It must tolerate unbalanced quotes.
	Complete(line string, pos int) []string
}
