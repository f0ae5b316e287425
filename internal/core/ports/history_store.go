package ports

import "github.com/AntonioJCosta/replsh/internal/core/domain/history"

/*
HistoryStore defines the contract for persisting executed input lines
across sessions. Sequence numbers are assigned by the store, start at 1,
and grow monotonically.
*/
type HistoryStore interface {
	// Add appends text as the newest entry and returns its sequence
	// number.
	Add(text string) (int, error)

	// NextSeq returns the sequence number the next Add will use.
	NextSeq() (int, error)

	// Entries returns entries with from <= seq < upto, oldest first.
	// A negative upto means "through the end".
	Entries(from, upto int) ([]history.Entry, error)

	// Prev returns the newest entry with seq < upto whose text begins
	// with prefix. It returns history.ErrNoEntry when nothing matches.
	Prev(upto int, prefix string) (history.Entry, error)

	// Close releases the underlying storage.
	Close() error
}
