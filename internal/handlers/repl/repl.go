/*
Package repl drives the interactive loop: prompts, line editing, tab
completion, and feeding each input line to the shell session. When stdin
is not a terminal it falls back to a plain line reader, so scripts can be
piped in.
*/
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"

	"github.com/AntonioJCosta/replsh/internal/core/ports"
	"github.com/AntonioJCosta/replsh/internal/handlers/ui"
)

// REPL owns the terminal side of the shell: it reads lines and hands
// them to the session, which does everything else.
type REPL struct {
	session   ports.ShellSession
	completer ports.LineCompleter
	history   ports.HistoryStore
	in        *os.File
	out       io.Writer
	errOut    io.Writer
}

// NewREPL creates a REPL reading from stdin. The completer may be nil,
// which disables tab completion; history may be nil, which limits line
// recall to the current run. It panics if session is nil.
func NewREPL(session ports.ShellSession, completer ports.LineCompleter, history ports.HistoryStore) *REPL {
	if session == nil {
		panic("session cannot be nil")
	}
	return &REPL{
		session:   session,
		completer: completer,
		history:   history,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

// Run reads and executes input until a command stops the shell or the
// input ends.
func (r *REPL) Run() error {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return r.runPlain(r.in)
	}
	return r.runInteractive(fd)
}

// runInteractive reads through a raw-mode terminal with line editing,
// history recall, and tab completion. Raw mode is held only while
// reading, so command output prints through the ordinary cooked tty.
func (r *REPL) runInteractive(fd int) error {
	screen := struct {
		io.Reader
		io.Writer
	}{r.in, r.out}
	t := term.NewTerminal(screen, "")
	if r.history != nil {
		t.History = storeHistory{store: r.history}
	}
	if r.completer != nil {
		t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
			if key != '\t' {
				return "", 0, false
			}
			return completeLine(r.completer, line, pos)
		}
	}

	readLine := func(prompt string) (string, error) {
		t.SetPrompt(prompt)
		raw, err := term.MakeRaw(fd)
		if err != nil {
			return "", fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(fd, raw)
		return t.ReadLine()
	}

	err := r.loop(readLine)
	fmt.Fprintln(r.out)
	return err
}

// runPlain reads with a buffered scanner and echoes prompts, which keeps
// piped scripts readable when their output is watched.
func (r *REPL) runPlain(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, error) {
		fmt.Fprint(r.out, ui.PromptColor(prompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
	return r.loop(readLine)
}

func (r *REPL) loop(readLine ports.ReadLineFunc) error {
	for {
		line, err := readLine(r.session.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		stop, execErr := r.session.Execute(line, readLine)
		if execErr != nil {
			fmt.Fprintln(r.errOut, ui.ErrorColor("Error: "+execErr.Error()))
		}
		if stop {
			return nil
		}
	}
}

// completeLine rewrites the command word under the cursor: a unique
// candidate replaces it and gains a trailing space, several candidates
// extend it to their longest common prefix.
func completeLine(completer ports.LineCompleter, line string, pos int) (string, int, bool) {
	candidates := completer.Complete(line, pos)
	if len(candidates) == 0 {
		return "", 0, false
	}

	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	start := len(line) - len(trimmed)
	if pos < start {
		return "", 0, false
	}

	completed := candidates[0]
	if len(candidates) > 1 {
		completed = commonPrefix(candidates)
	} else {
		completed += " "
	}
	// Alias expansion can make a candidate shorter than the typed text;
	// there is nothing sensible to rewrite then.
	if len(completed) < pos-start {
		return "", 0, false
	}

	newLine := line[:start] + completed + line[pos:]
	newPos := start + len(completed)
	if newLine == line && newPos == pos {
		return "", 0, false
	}
	return newLine, newPos, true
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// storeHistory feeds the terminal's line recall from the persistent
// history store, so recall spans previous runs as well. The session
// records executed statements itself; Add is therefore a no-op.
type storeHistory struct {
	store ports.HistoryStore
}

func (h storeHistory) Add(entry string) {}

// Len returns the number of recallable entries.
func (h storeHistory) Len() int {
	next, err := h.store.NextSeq()
	if err != nil {
		return 0
	}
	return next - 1
}

// At returns the idx-th entry counting back from the most recent one.
func (h storeHistory) At(idx int) string {
	entry, err := h.store.Prev(h.Len()-idx+1, "")
	if err != nil {
		return ""
	}
	return entry.Text
}
