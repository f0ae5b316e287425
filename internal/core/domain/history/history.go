/*
Package history defines core domain entities related to command history.
*/
package history

import "errors"

// ErrNoEntry is returned by store lookups that match nothing.
var ErrNoEntry = errors.New("history: no matching entry")

/*
Entry represents one executed input line and its position in the
session-spanning history sequence. Sequence numbers start at 1 and never
repeat, even across sessions. This is a core domain entity.
*/
type Entry struct {
	Seq  int
	Text string
}
